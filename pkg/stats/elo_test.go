package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEloScoreRoundTrip(t *testing.T) {
	for _, elo := range []float64{35, -35, 0.5, 120, -200} {
		score := Logistic(elo)
		assert.InDelta(t, elo, EloFromScore(score), 1e-6, "elo %v", elo)
	}
}

func TestEloFromEvenScore(t *testing.T) {
	assert.InDelta(t, 0, EloFromScore(0.5), 1e-9)
}

func TestEloFromScoreIsFinite(t *testing.T) {
	assert.False(t, EloFromScore(0) < -10000, "clamped score must stay finite")
	assert.False(t, EloFromScore(1) > +10000, "clamped score must stay finite")
}

func TestConfidenceMarginShrinksWithGames(t *testing.T) {
	elo, margin := EloWithConfidence(0.55, 200, 0.95)
	assert.Greater(t, elo, 0.0)
	assert.Greater(t, margin, 0.0)

	eloMore, marginMore := EloWithConfidence(0.55, 800, 0.95)
	assert.InDelta(t, elo, eloMore, 1e-9, "estimate depends only on the score")
	assert.Less(t, marginMore, margin)
}

func TestConfidenceMarginGrowsWithConfidence(t *testing.T) {
	_, narrow := EloWithConfidence(0.55, 200, 0.90)
	_, wide := EloWithConfidence(0.55, 200, 0.99)
	assert.Less(t, narrow, wide)
}

func TestConfidenceNoGames(t *testing.T) {
	elo, margin := EloWithConfidence(0.55, 0, 0.95)
	assert.Zero(t, elo)
	assert.Zero(t, margin)
}

func TestNormalQuantile(t *testing.T) {
	// The 97.5th percentile of the standard normal distribution.
	assert.InDelta(t, 1.959964, phiInv((1+0.95)/2), 1e-6)
	assert.InDelta(t, 0, phiInv(0.5), 1e-12)
}
