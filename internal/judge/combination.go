package judge

import (
	"math"

	"github.com/TodFrog/product-judge/internal/catalog"
	"github.com/TodFrog/product-judge/internal/config"
)

// ComboItem is one product's contribution to a matched combination.
type ComboItem struct {
	ProductID   int
	Name        string
	Count       int
	UnitWeightG float64
	UnitPrice   int
	FusedScore  float64
}

// ComboResult is the Combination Matcher's chosen tuple and its scoring.
type ComboResult struct {
	Found              bool
	Items              []ComboItem
	Expected           float64
	ErrorG             float64
	CombinedToleranceG float64
	Within             bool
}

// eligibleItem is a candidate annotated with catalog weight/tolerance data,
// restricted to products with a known, positive unit weight.
type eligibleItem struct {
	productID   int
	name        string
	unitWeightG float64
	unitPrice   int
	tolerance   float64
	fusedScore  float64
}

// MatchCombination implements the Combination Matcher of §4.5: it searches
// subsets of size 1..config.MaxSubsetSize over the candidate list, with each
// product's count ranging over 1..config.MaxCount, for the tuple that best
// explains w (the absolute weight change) within per-item additive
// tolerance, ranked by tuple_score.
//
// If no candidate has a known positive unit weight, Found is false ("no
// weight match" per §4.5's special case).
func MatchCombination(candidates []Candidate, w float64, cat catalog.Reader) ComboResult {
	eligible := make([]eligibleItem, 0, len(candidates))
	for _, c := range candidates {
		p, ok := cat.LookupByID(c.ProductID)
		if !ok || p.UnitWeightG <= 0 {
			continue
		}
		eligible = append(eligible, eligibleItem{
			productID:   p.ID,
			name:        p.Name,
			unitWeightG: p.UnitWeightG,
			unitPrice:   p.UnitPrice,
			tolerance:   cat.ToleranceOf(p.Category),
			fusedScore:  c.FusedScore,
		})
	}

	if len(eligible) == 0 {
		return ComboResult{Found: false}
	}

	var best *ComboResult
	var bestScore float64
	var bestSubsetSize int

	consider := func(items []eligibleItem, counts []int) {
		tuple := evaluateTuple(items, counts, w)
		score := tupleScore(tuple, w)
		subsetSize := len(counts)

		if best == nil ||
			score > bestScore ||
			(score == bestScore && subsetSize < bestSubsetSize) ||
			(score == bestScore && subsetSize == bestSubsetSize && tuple.ErrorG < best.ErrorG) {
			best = &tuple
			bestScore = score
			bestSubsetSize = subsetSize
		}
	}

	// Subset size 1.
	for i := range eligible {
		for c := 1; c <= config.MaxCount; c++ {
			consider([]eligibleItem{eligible[i]}, []int{c})
		}
	}

	// Subset size 2 (only when the configured bound allows it and there are
	// at least two distinct eligible products).
	if config.MaxSubsetSize >= 2 {
		for i := 0; i < len(eligible); i++ {
			for j := i + 1; j < len(eligible); j++ {
				for c1 := 1; c1 <= config.MaxCount; c1++ {
					for c2 := 1; c2 <= config.MaxCount; c2++ {
						consider([]eligibleItem{eligible[i], eligible[j]}, []int{c1, c2})
					}
				}
			}
		}
	}

	if best == nil {
		return ComboResult{Found: false}
	}
	return *best
}

// evaluateTuple computes the expected weight, error, combined tolerance, and
// within-tolerance flag for one (products, counts) tuple.
func evaluateTuple(items []eligibleItem, counts []int, w float64) ComboResult {
	var expected, combinedTolerance float64
	comboItems := make([]ComboItem, len(items))

	for i, it := range items {
		count := counts[i]
		expected += float64(count) * it.unitWeightG
		combinedTolerance += float64(count) * it.unitWeightG * it.tolerance
		comboItems[i] = ComboItem{
			ProductID:   it.productID,
			Name:        it.name,
			Count:       count,
			UnitWeightG: it.unitWeightG,
			UnitPrice:   it.unitPrice,
			FusedScore:  it.fusedScore,
		}
	}

	errorG := math.Abs(w - expected)

	return ComboResult{
		Found:              true,
		Items:              comboItems,
		Expected:           expected,
		ErrorG:             errorG,
		CombinedToleranceG: combinedTolerance,
		Within:             errorG <= combinedTolerance,
	}
}

// tupleScore implements tuple_score from §4.5.
func tupleScore(tuple ComboResult, w float64) float64 {
	var rankScore float64
	for _, it := range tuple.Items {
		rankScore += it.FusedScore
	}

	withinBonus := 0.0
	if tuple.Within {
		withinBonus = 10.0
	}

	denom := math.Max(w, 1.0)
	return withinBonus + rankScore - (tuple.ErrorG / denom)
}
