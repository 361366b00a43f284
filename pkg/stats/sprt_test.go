package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultBounds() Bounds {
	return Bounds{Elo0: -2, Elo1: 2, Alpha: 0.05, Beta: 0.05}
}

func TestBoundsValidate(t *testing.T) {
	assert.NoError(t, defaultBounds().Validate())

	for _, bad := range []Bounds{
		{Alpha: 0, Beta: 0.05},
		{Alpha: 1, Beta: 0.05},
		{Alpha: 0.05, Beta: 0},
		{Alpha: 0.05, Beta: 1},
		{Alpha: -0.1, Beta: 0.05},
	} {
		assert.Error(t, bad.Validate(), "%+v", bad)
	}
}

func TestStoppingBounds(t *testing.T) {
	bounds := defaultBounds()

	// ln(0.05/0.95) and ln(0.95/0.05) for alpha = beta = 0.05.
	assert.InDelta(t, -2.944, bounds.Lower(), 1e-3)
	assert.InDelta(t, +2.944, bounds.Upper(), 1e-3)
	assert.InDelta(t, bounds.Lower(), -bounds.Upper(), 1e-12)
}

func TestLikelihoodRatioSign(t *testing.T) {
	bounds := defaultBounds()

	assert.Greater(t, bounds.LikelihoodRatio(1), 0.0, "a win is evidence for H1")
	assert.Less(t, bounds.LikelihoodRatio(0), 0.0, "a loss is evidence for H0")
	assert.InDelta(t, 0, bounds.LikelihoodRatio(0.5), 1e-9, "a draw is neutral for symmetric hypotheses")
}

func TestVerdictAllWins(t *testing.T) {
	bounds := defaultBounds()

	var tracker Tracker
	verdict := InProgress
	for game := 0; game < 1000 && verdict == InProgress; game++ {
		tracker.Record(bounds, 1, 60)
		verdict = tracker.Verdict(bounds, 1000)
	}

	require.Equal(t, AcceptH1, verdict)
	assert.GreaterOrEqual(t, tracker.LLR, bounds.Upper())
	assert.Equal(t, tracker.Wins, tracker.Games)
}

func TestVerdictAllLosses(t *testing.T) {
	bounds := defaultBounds()

	var tracker Tracker
	verdict := InProgress
	for game := 0; game < 1000 && verdict == InProgress; game++ {
		tracker.Record(bounds, 0, 60)
		verdict = tracker.Verdict(bounds, 1000)
	}

	require.Equal(t, AcceptH0, verdict)
	assert.LessOrEqual(t, tracker.LLR, bounds.Lower())
	assert.Equal(t, tracker.Losses, tracker.Games)
}

func TestVerdictMaxGames(t *testing.T) {
	bounds := defaultBounds()

	var tracker Tracker
	for _, score := range []float64{1, 0, 0.5, 0.5, 1, 0} {
		tracker.Record(bounds, score, 60)
		require.Equal(t, InProgress, tracker.Verdict(bounds, 10))
	}

	assert.Greater(t, tracker.LLR, bounds.Lower())
	assert.Less(t, tracker.LLR, bounds.Upper())
	assert.Equal(t, MaxGames, tracker.Verdict(bounds, tracker.Games))
}

func TestTrackerTallies(t *testing.T) {
	bounds := defaultBounds()

	var tracker Tracker
	tracker.Record(bounds, 1, 10)
	tracker.Record(bounds, 0, 45)
	tracker.Record(bounds, 0.5, 85)
	tracker.Record(bounds, 0.5, 300)

	assert.Equal(t, 1, tracker.Wins)
	assert.Equal(t, 1, tracker.Losses)
	assert.Equal(t, 2, tracker.Draws)
	assert.Equal(t, 4, tracker.Games)
	assert.InDelta(t, 0.5, tracker.Score(), 1e-12)

	// 10 → bucket 0, 45 → 2, 85 → 4, 300 → capped at 4.
	assert.Equal(t, [LengthBuckets]int{1, 0, 1, 0, 2}, tracker.Length)
}

func TestTrackerScoreNoGames(t *testing.T) {
	var tracker Tracker
	assert.Equal(t, 0.5, tracker.Score())
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "H0 Accepted", AcceptH0.String())
	assert.Equal(t, "H1 Accepted", AcceptH1.String())
	assert.Equal(t, "Max Games Reached", MaxGames.String())
	assert.Equal(t, "In Progress", InProgress.String())
}

func TestLogistic(t *testing.T) {
	assert.InDelta(t, 0.5, Logistic(0), 1e-12)
	assert.InDelta(t, 1, Logistic(0)+Logistic(0), 1e-12)
	assert.InDelta(t, 1, Logistic(35)+Logistic(-35), 1e-12)
	assert.True(t, math.Abs(Logistic(400)-10.0/11) < 1e-12)
}
