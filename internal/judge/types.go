// Package judge implements the vision-plus-weight fusion pipeline: the
// stateless decision core that turns camera detections and a measured
// weight change into a DecisionResult. Every function here operates only on
// its arguments and a read-only catalog.Reader; nothing in this package
// holds mutable state or blocks on I/O.
package judge

import "github.com/TodFrog/product-judge/internal/catalog"

// HandClassID is the reserved detection class id used only for spatial
// gating; it never matches a catalog entry.
const HandClassID = 0

// BBox is an axis-aligned bounding box in pixel coordinates. The invariant
// X1 <= X2 && Y1 <= Y2 is assumed to already hold by the time a Detection
// reaches this package — malformed boxes are rejected at the HTTP boundary.
type BBox struct {
	X1, Y1, X2, Y2 float64
}

// Center returns the bounding box's center point.
func (b BBox) Center() (x, y float64) {
	return (b.X1 + b.X2) / 2, (b.Y1 + b.Y2) / 2
}

// Area returns the bounding box's pixel area.
func (b BBox) Area() float64 {
	return (b.X2 - b.X1) * (b.Y2 - b.Y1)
}

// Detection is one raw observation from one camera frame.
type Detection struct {
	BBox       BBox
	Confidence float64
	ClassID    int
	ClassName  string
	CameraID   string
}

// IsHand reports whether this detection is the reserved hand class.
func (d Detection) IsHand() bool {
	return d.ClassID == HandClassID
}

// Candidate is an ensembled product hypothesis for one decision, produced by
// the multi-view ensemble from one or more cameras' top-K detections.
type Candidate struct {
	ProductID  int
	Name       string
	Category   catalog.Category
	FusedScore float64
	Cameras    []string
}

// WeightInfo summarizes how a decision's chosen combination accounts for the
// measured weight change.
type WeightInfo struct {
	Delta     float64
	Explained float64
	Residual  float64
}

// Status is one of the four outcome states a decision can be classified
// into.
type Status string

const (
	StatusComplete    Status = "complete"
	StatusPartial     Status = "partial"
	StatusUncertain   Status = "uncertain"
	StatusNoDetection Status = "no_detection"
)

// ProductLine is one line item in a decision's result.
type ProductLine struct {
	ProductID  int
	Name       string
	Count      int
	UnitPrice  int
	LinePrice  int
	Confidence float64
}

// DecisionResult is the full output of one decision.
type DecisionResult struct {
	Status       Status
	Products     []ProductLine
	TotalPrice   int
	Confidence   float64
	WeightInfo   WeightInfo
	IsRemoval    bool
	Timestamp    float64
	ProductCount int
}

// Success reports whether the decision is one the caller should treat as
// having dispensed/returned product, per §6: success iff status is complete
// or partial.
func (r DecisionResult) Success() bool {
	return r.Status == StatusComplete || r.Status == StatusPartial
}
