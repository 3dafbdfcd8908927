// Package httpapi is the HTTP boundary: it binds and validates JudgeInput,
// translates it into internal/judge's pure core, and serializes the result
// back to the wire shape described by the external-interfaces spec.
package httpapi

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/judge"
	"github.com/TodFrog/product-judge/internal/logging"
	"github.com/TodFrog/product-judge/internal/metrics"
)

// Handler wires the decision engine and catalog into HTTP routes.
type Handler struct {
	engine  *judge.Engine
	catalog catalog.Reader
}

// NewRouter builds the gin engine exposing the judge service's routes.
func NewRouter(engine *judge.Engine, cat catalog.Reader) *gin.Engine {
	h := &Handler{engine: engine, catalog: cat}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())
	r.Use(correlationID())

	r.GET("/healthz", h.handleHealthz)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api/v1")
	{
		api.POST("/judge", h.handleJudge)
	}

	return r
}

// correlationID assigns each request a correlation id, stashing it in the
// request context so downstream logging can attach it.
func correlationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Correlation-ID")
		if id == "" {
			id = logging.NewCorrelationID()
		}
		ctx := logging.ContextWithCorrelationID(c.Request.Context(), id)
		c.Request = c.Request.WithContext(ctx)
		c.Header("X-Correlation-ID", id)
		c.Next()
	}
}

// requestLogger emits one structured log line per request and records the
// route's metrics.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.FullPath()
		c.Next()
		elapsed := time.Since(start).Seconds()
		if path == "" {
			path = c.Request.URL.Path
		}

		status := c.Writer.Status()
		metrics.RecordHTTPRequest(path, strconv.Itoa(status), elapsed)

		logging.Ctx(c.Request.Context()).Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Int("status", status).
			Float64("elapsedSeconds", elapsed).
			Msg("http request")
	}
}

// handleHealthz reports liveness and the loaded catalog size.
func (h *Handler) handleHealthz(c *gin.Context) {
	c.JSON(http.StatusOK, newHealthResponse(h.catalog))
}

// handleJudge binds and validates a JudgeInput, runs one decision, and
// returns the serialized DecisionResult. A validation failure never reaches
// internal/judge (§7's boundary translation of schema violations).
func (h *Handler) handleJudge(c *gin.Context) {
	var req judgeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logging.Ctx(c.Request.Context()).Warn().Err(err).Msg("judge request failed validation")
		c.JSON(http.StatusBadRequest, gin.H{"error": formatValidationError(err)})
		return
	}

	input, ok := req.toInput()
	if !ok {
		logging.Ctx(c.Request.Context()).Warn().Msg("judge request had malformed detection data")
		c.JSON(http.StatusBadRequest, gin.H{"error": "detections contain a malformed bbox or non-finite value"})
		return
	}

	start := time.Now()
	result := h.engine.Decide(input)
	elapsed := time.Since(start).Seconds()

	metrics.RecordDecision(string(result.Status), elapsed, result.ProductCount)
	logging.Ctx(c.Request.Context()).Info().
		Str("status", string(result.Status)).
		Float64("confidence", result.Confidence).
		Int("productCount", result.ProductCount).
		Int("totalPrice", result.TotalPrice).
		Msg("decision")

	c.JSON(http.StatusOK, newJudgeResponse(result))
}

// formatValidationError renders a validator error as a single human-readable
// string, falling back to the raw error for non-validation failures (e.g.
// malformed JSON).
func formatValidationError(err error) string {
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return "invalid request body: " + err.Error()
	}

	msg := "invalid request body:"
	for _, fe := range verrs {
		msg += " " + fe.Field() + " failed " + fe.Tag() + ";"
	}
	return msg
}
