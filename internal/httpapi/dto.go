package httpapi

import (
	"math"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/judge"
)

// detectionDTO is one wire-level detection, matching §6's `Detection` shape:
// xyxy, conf, cls, name, optional camera.
type detectionDTO struct {
	XYXY   [4]float64 `json:"xyxy" binding:"len=4"`
	Conf   float64    `json:"conf" binding:"gte=0,lte=1"`
	Cls    int        `json:"cls" binding:"gte=0"`
	Name   string     `json:"name"`
	Camera string     `json:"camera"`
}

// judgeRequest is the wire-level JudgeInput from §6.
type judgeRequest struct {
	Detections    []detectionDTO `json:"detections" binding:"dive"`
	DeltaWeight   float64        `json:"delta_weight"`
	UseHandFilter *bool          `json:"use_hand_filter"`
}

// useHandFilter returns the request's hand-filter flag, defaulting to true
// per §6's `use_hand_filter: bool=true`.
func (r judgeRequest) useHandFilter() bool {
	if r.UseHandFilter == nil {
		return true
	}
	return *r.UseHandFilter
}

// toInput translates the wire request into the core's Input, rejecting any
// detection with a non-finite field or a malformed bbox (§7a: input-invalid
// kinds are caught at the boundary, never reach the core).
func (r judgeRequest) toInput() (judge.Input, bool) {
	if math.IsNaN(r.DeltaWeight) || math.IsInf(r.DeltaWeight, 0) {
		return judge.Input{}, false
	}

	dets := make([]judge.Detection, 0, len(r.Detections))
	for _, d := range r.Detections {
		for _, v := range d.XYXY {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return judge.Input{}, false
			}
		}
		x1, y1, x2, y2 := d.XYXY[0], d.XYXY[1], d.XYXY[2], d.XYXY[3]
		if x1 > x2 || y1 > y2 {
			return judge.Input{}, false
		}
		if math.IsNaN(d.Conf) || math.IsInf(d.Conf, 0) {
			return judge.Input{}, false
		}

		dets = append(dets, judge.Detection{
			BBox:       judge.BBox{X1: x1, Y1: y1, X2: x2, Y2: y2},
			Confidence: d.Conf,
			ClassID:    d.Cls,
			ClassName:  d.Name,
			CameraID:   d.Camera,
		})
	}

	return judge.Input{
		Detections:    dets,
		DeltaWeight:   r.DeltaWeight,
		UseHandFilter: r.useHandFilter(),
	}, true
}

// productLineDTO is one entry of the response's `products` array.
type productLineDTO struct {
	ProductID  int     `json:"productId"`
	Name       string  `json:"name"`
	Count      int     `json:"count"`
	UnitPrice  int     `json:"unitPrice"`
	TotalPrice int     `json:"totalPrice"`
	Confidence float64 `json:"confidence"`
}

// weightInfoDTO mirrors judge.WeightInfo's wire shape.
type weightInfoDTO struct {
	Delta     float64 `json:"delta"`
	Explained float64 `json:"explained"`
	Residual  float64 `json:"residual"`
}

// judgeResponse is the full wire-level response described by §6.
type judgeResponse struct {
	Success      bool             `json:"success"`
	Products     []productLineDTO `json:"products"`
	TotalPrice   int              `json:"totalPrice"`
	Status       string           `json:"status"`
	Confidence   float64          `json:"confidence"`
	WeightInfo   weightInfoDTO    `json:"weightInfo"`
	ProductCount int              `json:"productCount"`
	IsRemoval    bool             `json:"isRemoval"`
	Timestamp    float64          `json:"timestamp"`
}

func newJudgeResponse(r judge.DecisionResult) judgeResponse {
	products := make([]productLineDTO, len(r.Products))
	for i, p := range r.Products {
		products[i] = productLineDTO{
			ProductID:  p.ProductID,
			Name:       p.Name,
			Count:      p.Count,
			UnitPrice:  p.UnitPrice,
			TotalPrice: p.LinePrice,
			Confidence: p.Confidence,
		}
	}
	if products == nil {
		products = []productLineDTO{}
	}

	return judgeResponse{
		Success:    r.Success(),
		Products:   products,
		TotalPrice: r.TotalPrice,
		Status:     string(r.Status),
		Confidence: r.Confidence,
		WeightInfo: weightInfoDTO{
			Delta:     r.WeightInfo.Delta,
			Explained: r.WeightInfo.Explained,
			Residual:  r.WeightInfo.Residual,
		},
		ProductCount: r.ProductCount,
		IsRemoval:    r.IsRemoval,
		Timestamp:    r.Timestamp,
	}
}

// healthResponse is the body of GET /healthz.
type healthResponse struct {
	Status      string `json:"status"`
	CatalogSize int    `json:"catalogSize"`
}

func newHealthResponse(cat catalog.Reader) healthResponse {
	return healthResponse{Status: "ok", CatalogSize: len(cat.All())}
}
