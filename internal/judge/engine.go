package judge

import (
	"math"
	"time"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/config"
)

// Input is one decision request: detections from one or more cameras and
// the signed weight change observed on the tray.
type Input struct {
	Detections    []Detection
	DeltaWeight   float64
	UseHandFilter bool
}

// Engine orchestrates the filter → extract → ensemble → match → classify
// pipeline (§4.6). It holds only a read-only catalog.Reader and is safe for
// concurrent use by many goroutines, per §5.
type Engine struct {
	Catalog           catalog.Reader
	HandMaxDistancePx float64
	Now               func() time.Time
}

// NewEngine builds an Engine with the decision core's default constants.
func NewEngine(cat catalog.Reader) *Engine {
	return &Engine{
		Catalog:           cat,
		HandMaxDistancePx: config.HandMaxDistancePx,
		Now:               time.Now,
	}
}

// Decide runs one full decision (§4.6, steps 1-7).
func (e *Engine) Decide(in Input) DecisionResult {
	now := e.now()
	absDelta := math.Abs(in.DeltaWeight)

	byCamera := partitionByCamera(in.Detections)

	perCameraTopK := make([][]Detection, 0, len(byCamera))
	for _, camDetections := range byCamera {
		filtered := camDetections
		if in.UseHandFilter {
			filtered = FilterByHandProximity(camDetections, e.HandMaxDistancePx)
		} else {
			filtered = withoutHands(camDetections)
		}
		perCameraTopK = append(perCameraTopK, TopK(filtered))
	}

	candidates := Ensemble(perCameraTopK, e.Catalog)

	if absDelta < config.MinDeltaWeightG || len(candidates) == 0 {
		return DecisionResult{
			Status:     StatusNoDetection,
			Products:   nil,
			TotalPrice: 0,
			Confidence: 0,
			WeightInfo: WeightInfo{
				Delta:     in.DeltaWeight,
				Explained: 0,
				Residual:  absDelta,
			},
			IsRemoval: in.DeltaWeight < 0,
			Timestamp: toWallSeconds(now),
		}
	}

	topScore := topFusedScore(candidates)
	combo := MatchCombination(candidates, absDelta, e.Catalog)

	if !combo.Found {
		return e.uncertainFallback(candidates, in, absDelta, now)
	}

	status := classifyStatus(combo, topScore, absDelta)

	products := buildProductLines(combo.Items)
	totalPrice := 0
	productCount := 0
	for _, p := range products {
		totalPrice += p.LinePrice
		productCount += p.Count
	}

	avgFused := avgFusedScore(combo.Items)
	weightFit := math.Max(0, 1-combo.ErrorG/math.Max(absDelta, 1.0))
	confidence := clip01(config.VisionConfidenceWeight*avgFused + config.WeightFitWeight*weightFit)

	return DecisionResult{
		Status:     status,
		Products:   products,
		TotalPrice: totalPrice,
		Confidence: confidence,
		WeightInfo: WeightInfo{
			Delta:     in.DeltaWeight,
			Explained: combo.Expected,
			Residual:  math.Max(0, absDelta-combo.Expected),
		},
		IsRemoval:    in.DeltaWeight < 0,
		Timestamp:    toWallSeconds(now),
		ProductCount: productCount,
	}
}

// uncertainFallback handles §4.5's "no candidate has positive unit weight"
// special case: the matcher found nothing to search over, but there are
// real candidates and a meaningful weight change, so the engine reports its
// single best-ranked candidate as an uncertain, unweighed guess rather than
// silently discarding non-trivial evidence. This keeps invariant I4 intact
// (status=no_detection iff products empty) without inventing a fifth status.
func (e *Engine) uncertainFallback(candidates []Candidate, in Input, absDelta float64, now time.Time) DecisionResult {
	top := candidates[0]
	for _, c := range candidates {
		if c.FusedScore > top.FusedScore {
			top = c
		}
	}

	product, ok := e.Catalog.LookupByID(top.ProductID)
	if !ok {
		return DecisionResult{
			Status:    StatusNoDetection,
			IsRemoval: in.DeltaWeight < 0,
			Timestamp: toWallSeconds(now),
			WeightInfo: WeightInfo{
				Delta:     in.DeltaWeight,
				Explained: 0,
				Residual:  absDelta,
			},
		}
	}

	confidence := clip01(top.FusedScore)
	line := ProductLine{
		ProductID:  product.ID,
		Name:       product.Name,
		Count:      1,
		UnitPrice:  product.UnitPrice,
		LinePrice:  product.UnitPrice,
		Confidence: confidence,
	}

	return DecisionResult{
		Status:     StatusUncertain,
		Products:   []ProductLine{line},
		TotalPrice: line.LinePrice,
		Confidence: confidence,
		WeightInfo: WeightInfo{
			Delta:     in.DeltaWeight,
			Explained: 0,
			Residual:  absDelta,
		},
		IsRemoval:    in.DeltaWeight < 0,
		Timestamp:    toWallSeconds(now),
		ProductCount: 1,
	}
}

// classifyStatus implements the status rule of §4.6.1. The partial branch
// treats the "within 2x tolerance" and "explains half the weight" criteria
// as alternatives rather than a strict conjunction: a large single-item
// mismatch that clears half the observed weight should still read as
// partial even when its error exceeds 2x its own combined tolerance.
func classifyStatus(combo ComboResult, topScore, w float64) Status {
	if combo.Within && topScore >= config.CompleteMinScore {
		return StatusComplete
	}

	withinTwiceTolerance := combo.ErrorG <= 2*combo.CombinedToleranceG
	explainsAtLeastHalf := combo.Expected >= 0.5*w
	if withinTwiceTolerance || explainsAtLeastHalf {
		return StatusPartial
	}

	return StatusUncertain
}

func buildProductLines(items []ComboItem) []ProductLine {
	lines := make([]ProductLine, len(items))
	for i, it := range items {
		lines[i] = ProductLine{
			ProductID:  it.ProductID,
			Name:       it.Name,
			Count:      it.Count,
			UnitPrice:  it.UnitPrice,
			LinePrice:  it.Count * it.UnitPrice,
			Confidence: clip01(it.FusedScore),
		}
	}

	// Order by descending confidence (fused score), matching step 7 of
	// §4.6's orchestration ("ordered by descending fused_score").
	for i := 1; i < len(lines); i++ {
		for j := i; j > 0 && lines[j].Confidence > lines[j-1].Confidence; j-- {
			lines[j], lines[j-1] = lines[j-1], lines[j]
		}
	}
	return lines
}

func avgFusedScore(items []ComboItem) float64 {
	if len(items) == 0 {
		return 0
	}
	var sum float64
	for _, it := range items {
		sum += it.FusedScore
	}
	return sum / float64(len(items))
}

func topFusedScore(candidates []Candidate) float64 {
	top := 0.0
	for _, c := range candidates {
		if c.FusedScore > top {
			top = c.FusedScore
		}
	}
	return top
}

func partitionByCamera(detections []Detection) map[string][]Detection {
	byCamera := make(map[string][]Detection)
	for _, d := range detections {
		cam := d.CameraID
		if cam == "" {
			cam = "unknown"
		}
		byCamera[cam] = append(byCamera[cam], d)
	}
	return byCamera
}

func withoutHands(detections []Detection) []Detection {
	out := make([]Detection, 0, len(detections))
	for _, d := range detections {
		if !d.IsHand() {
			out = append(out, d)
		}
	}
	return out
}

func clip01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func toWallSeconds(t time.Time) float64 {
	return float64(t.UnixNano()) / 1e9
}

func (e *Engine) now() time.Time {
	if e.Now != nil {
		return e.Now()
	}
	return time.Now()
}
