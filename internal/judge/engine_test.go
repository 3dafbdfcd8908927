package judge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestEngine() *Engine {
	e := NewEngine(testCatalog())
	e.Now = func() time.Time { return time.Unix(1_700_000_000, 0) }
	return e
}

func TestDecide_SingleExactMatch(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections: []Detection{
			hand(260, 60, 300, 100),
			product(26, "chickenmayo_rice", 280, 80, 320, 120, 0.49),
		},
		DeltaWeight:   -365,
		UseHandFilter: true,
	}

	result := e.Decide(in)
	require.Equal(t, StatusComplete, result.Status)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 26, result.Products[0].ProductID)
	assert.Equal(t, 1, result.Products[0].Count)
	assert.Equal(t, 3500, result.TotalPrice)
	assert.True(t, result.IsRemoval)
	assert.InDelta(t, 365, result.WeightInfo.Explained, 1e-9)
	assert.InDelta(t, 0, result.WeightInfo.Residual, 1e-9)
	assert.True(t, result.Success())
}

func TestDecide_MultiCountMatch(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(9, "vita500", 0, 0, 10, 10, 0.85)},
		DeltaWeight: -260,
	}

	result := e.Decide(in)
	require.Equal(t, StatusComplete, result.Status)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 2, result.Products[0].Count)
	assert.Equal(t, 2400, result.TotalPrice)
}

func TestDecide_WithinToleranceButNotExact(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.49)},
		DeltaWeight: -380,
	}

	result := e.Decide(in)
	require.Equal(t, StatusComplete, result.Status)
	assert.Equal(t, 3500, result.TotalPrice)
}

func TestDecide_NoWeightChangeIsNoDetection(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.49)},
		DeltaWeight: -3,
	}

	result := e.Decide(in)
	assert.Equal(t, StatusNoDetection, result.Status)
	assert.Empty(t, result.Products)
	assert.False(t, result.Success())
}

func TestDecide_LargeWeightMismatchIsPartial(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.49)},
		DeltaWeight: -500,
	}

	result := e.Decide(in)
	assert.Equal(t, StatusPartial, result.Status)
	require.Len(t, result.Products, 1)
	assert.InDelta(t, 365, result.WeightInfo.Explained, 1e-9)
	assert.True(t, result.Success())
}

func TestDecide_HandFilterDropsFarProduct(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections: []Detection{
			hand(0, 0, 20, 20),
			product(9, "vita500", 900, 900, 940, 940, 0.9),
		},
		DeltaWeight:   -130,
		UseHandFilter: true,
	}

	result := e.Decide(in)
	assert.Equal(t, StatusNoDetection, result.Status)
	assert.Empty(t, result.Products)
}

func TestDecide_HandFilterDisabledKeepsFarProduct(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections: []Detection{
			hand(0, 0, 20, 20),
			product(9, "vita500", 900, 900, 940, 940, 0.9),
		},
		DeltaWeight:   -130,
		UseHandFilter: false,
	}

	result := e.Decide(in)
	assert.NotEqual(t, StatusNoDetection, result.Status)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 9, result.Products[0].ProductID)
}

func TestDecide_BelowWeightFloorIsNoDetection(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.9)},
		DeltaWeight: -4.99,
	}

	result := e.Decide(in)
	assert.Equal(t, StatusNoDetection, result.Status)
}

func TestDecide_AtWeightFloorIsNotNoDetection(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.9)},
		DeltaWeight: -5.01,
	}

	result := e.Decide(in)
	assert.NotEqual(t, StatusNoDetection, result.Status)
}

func TestDecide_NoDetectionsAtAll(t *testing.T) {
	e := newTestEngine()
	result := e.Decide(Input{DeltaWeight: -300})
	assert.Equal(t, StatusNoDetection, result.Status)
	assert.Empty(t, result.Products)
}

func TestDecide_InvariantProductsEmptyIffNoDetection(t *testing.T) {
	e := newTestEngine()
	cases := []Input{
		{DeltaWeight: -3},
		{Detections: []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.49)}, DeltaWeight: -365},
		{Detections: []Detection{product(26, "chickenmayo_rice", 0, 0, 10, 10, 0.49)}, DeltaWeight: -500},
	}

	for _, in := range cases {
		result := e.Decide(in)
		if result.Status == StatusNoDetection {
			assert.Empty(t, result.Products)
		} else {
			assert.NotEmpty(t, result.Products)
		}
	}
}

func TestDecide_ConfidenceIsClippedToUnitInterval(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections:  []Detection{product(9, "vita500", 0, 0, 10, 10, 0.85)},
		DeltaWeight: -260,
	}

	result := e.Decide(in)
	assert.GreaterOrEqual(t, result.Confidence, 0.0)
	assert.LessOrEqual(t, result.Confidence, 1.0)
}

func TestDecide_IsRemovalReflectsDeltaSign(t *testing.T) {
	e := newTestEngine()
	placed := e.Decide(Input{
		Detections:  []Detection{product(9, "vita500", 0, 0, 10, 10, 0.85)},
		DeltaWeight: 260,
	})
	removed := e.Decide(Input{
		Detections:  []Detection{product(9, "vita500", 0, 0, 10, 10, 0.85)},
		DeltaWeight: -260,
	})

	assert.False(t, placed.IsRemoval)
	assert.True(t, removed.IsRemoval)
}

func TestDecide_UncertainFallbackWhenNoEligibleWeight(t *testing.T) {
	e := newTestEngine()
	// umbrella_compact (id 50) has no known unit weight, so the combination
	// matcher finds nothing to search over even though a real candidate and
	// a meaningful weight delta exist.
	in := Input{
		Detections:  []Detection{product(50, "umbrella_compact", 0, 0, 10, 10, 0.6)},
		DeltaWeight: -200,
	}

	result := e.Decide(in)
	assert.Equal(t, StatusUncertain, result.Status)
	require.Len(t, result.Products, 1)
	assert.Equal(t, 50, result.Products[0].ProductID)
	assert.Equal(t, 1, result.Products[0].Count)
	assert.False(t, result.Success())
}

func TestDecide_ProductLinesOrderedByDescendingConfidence(t *testing.T) {
	e := newTestEngine()
	in := Input{
		Detections: []Detection{
			product(9, "vita500", 0, 0, 10, 10, 0.4),
			product(26, "chickenmayo_rice", 100, 100, 110, 110, 0.95),
		},
		DeltaWeight: -495, // vita500 (130g) + chickenmayo_rice (365g)
	}

	result := e.Decide(in)
	require.True(t, result.Success())
	require.Len(t, result.Products, 2)
	assert.GreaterOrEqual(t, result.Products[0].Confidence, result.Products[1].Confidence)
}
