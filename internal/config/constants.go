// Package config centralizes the judge service's configuration: the closed
// set of design constants the decision core is built against, plus the
// small amount of deployment configuration (catalog source, HTTP port, log
// level) layered from defaults, an optional file, and the environment.
package config

// Closed-set design constants. These are fixed thresholds for the decision
// core and are not learned, tuned, or exposed as runtime knobs.
const (
	// TopK is the number of detections retained per camera after ranking.
	TopK = 5

	// MaxCount is the largest per-product integer count searched by the
	// combination matcher.
	MaxCount = 5

	// MaxSubsetSize is the largest number of distinct products searched in
	// one combination.
	MaxSubsetSize = 2

	// HandMaxDistancePx is the default pixel radius for the hand proximity
	// filter.
	HandMaxDistancePx = 150.0

	// MinDeltaWeightG is the minimum absolute weight change, in grams,
	// needed before the engine attempts a decision at all.
	MinDeltaWeightG = 5.0

	// CrossViewBonus is the multiplicative bonus applied, per extra camera
	// a class is seen in beyond the first, during ensembling.
	CrossViewBonus = 0.15

	// CompleteMinScore is the minimum fused score a top candidate must
	// reach for a within-tolerance match to be classified "complete".
	CompleteMinScore = 0.40

	// VisionConfidenceWeight and WeightFitWeight are the fixed blend
	// weights for overall decision confidence (§4.6.2). They sum to 1 and
	// are design constants, not runtime-tunable.
	VisionConfidenceWeight = 0.5
	WeightFitWeight        = 0.5
)
