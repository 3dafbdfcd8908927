package judge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMatchCombination_SingleExact(t *testing.T) {
	cat := testCatalog()
	candidates := []Candidate{{ProductID: 26, Name: "chickenmayo_rice", FusedScore: 0.49}}

	result := MatchCombination(candidates, 365, cat)
	require.True(t, result.Found)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Items[0].Count)
	assert.True(t, result.Within)
	assert.InDelta(t, 0, result.ErrorG, 1e-9)
}

func TestMatchCombination_MultiCountWithinTolerance(t *testing.T) {
	cat := testCatalog()
	candidates := []Candidate{{ProductID: 9, Name: "vita500", FusedScore: 0.85}}

	result := MatchCombination(candidates, 260, cat)
	require.True(t, result.Found)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 2, result.Items[0].Count)
	assert.True(t, result.Within)
}

func TestMatchCombination_NoEligibleCandidatesIsNotFound(t *testing.T) {
	cat := testCatalog()
	// id 50 (umbrella_compact) has unit_weight_g = 0: weight-unknown.
	candidates := []Candidate{{ProductID: 50, Name: "umbrella_compact", FusedScore: 0.9}}

	result := MatchCombination(candidates, 200, cat)
	assert.False(t, result.Found)
	assert.Empty(t, result.Items)
}

func TestMatchCombination_TwoProductSubset(t *testing.T) {
	cat := testCatalog()
	// vita500 (130g) + chickenmayo_rice (365g) = 495g.
	candidates := []Candidate{
		{ProductID: 9, Name: "vita500", FusedScore: 0.7},
		{ProductID: 26, Name: "chickenmayo_rice", FusedScore: 0.6},
	}

	result := MatchCombination(candidates, 495, cat)
	require.True(t, result.Found)
	assert.True(t, result.Within)
	assert.Len(t, result.Items, 2)
}

func TestMatchCombination_ToleranceIsAdditivePerItemNotGlobal(t *testing.T) {
	cat := testCatalog()
	// vita500 (130g, beverage, 5%) + frozen_dumplings (300g, frozen, 15%):
	// additive per-item tolerance = 130*0.05 + 300*0.15 = 6.5 + 45 = 51.5g.
	// A single blended tolerance applied to the combined 430g at the
	// stricter beverage rate would instead allow only 430*0.05 = 21.5g.
	// w=460 (error=30g against the 430g expected total) falls inside the
	// additive per-item bound but outside that stricter single-rate bound,
	// so the two interpretations disagree and this case distinguishes them.
	candidates := []Candidate{
		{ProductID: 9, Name: "vita500", FusedScore: 0.7},
		{ProductID: 48, Name: "frozen_dumplings", FusedScore: 0.6},
	}

	result := MatchCombination(candidates, 460, cat)
	require.True(t, result.Found)
	require.Len(t, result.Items, 2)
	assert.InDelta(t, 430, result.Expected, 1e-9)
	assert.InDelta(t, 30, result.ErrorG, 1e-9)
	assert.InDelta(t, 51.5, result.CombinedToleranceG, 1e-9)
	assert.True(t, result.Within, "30g error must be within the additive per-item bound of 51.5g")
	assert.Greater(t, result.ErrorG, 430*0.05, "30g error exceeds a single blended 5%% bound over the combined weight, so a global-tolerance interpretation would have rejected this match")
}

func TestMatchCombination_LargeMismatchPicksClosestSingleton(t *testing.T) {
	cat := testCatalog()
	candidates := []Candidate{{ProductID: 26, Name: "chickenmayo_rice", FusedScore: 0.49}}

	result := MatchCombination(candidates, 500, cat)
	require.True(t, result.Found)
	require.Len(t, result.Items, 1)
	assert.Equal(t, 1, result.Items[0].Count)
	assert.False(t, result.Within)
	assert.InDelta(t, 135, result.ErrorG, 1e-9)
}
