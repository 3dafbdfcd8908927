package judge

import "math"

// CountResult is the outcome of matching one product against an observed
// weight change.
type CountResult struct {
	Count           int
	WithinTolerance bool
	ErrorG          float64
}

// CalculateCount implements the Count Calculator of §4.4: given a product's
// unit weight, the absolute observed weight w, and the product category's
// fractional tolerance, it returns the most plausible integer count and
// whether that count explains w within tolerance.
//
// A product with UnitWeightG <= 0 is weight-unknown and is always ineligible
// for weight matching (count 0, not within tolerance), per §4.4's edge case.
func CalculateCount(unitWeightG, w, tolerance float64) CountResult {
	if unitWeightG <= 0 {
		return CountResult{Count: 0, WithinTolerance: false, ErrorG: w}
	}

	count := int(math.Round(w / unitWeightG))
	expected := float64(count) * unitWeightG
	errorG := math.Abs(w - expected)

	within := count >= 1 && errorG <= expected*tolerance

	return CountResult{
		Count:           count,
		WithinTolerance: within,
		ErrorG:          errorG,
	}
}
