package stats

import (
	"fmt"
	"math"
)

// Bounds holds the hypotheses and error rates of a Wald sequential
// probability ratio test: H0 is "the tested engine is elo0 stronger",
// H1 is "the tested engine is elo1 stronger", with type I and II error
// rates of alpha and beta.
type Bounds struct {
	Elo0  float64 `yaml:"elo0"`
	Elo1  float64 `yaml:"elo1"`
	Alpha float64 `yaml:"alpha"`
	Beta  float64 `yaml:"beta"`
}

func (bounds Bounds) Validate() error {
	if bounds.Alpha <= 0 || bounds.Alpha >= 1 {
		return fmt.Errorf("stats: alpha %v outside (0, 1)", bounds.Alpha)
	}

	if bounds.Beta <= 0 || bounds.Beta >= 1 {
		return fmt.Errorf("stats: beta %v outside (0, 1)", bounds.Beta)
	}

	return nil
}

// Lower is the LLR stopping bound below which H0 is accepted.
func (bounds Bounds) Lower() float64 {
	return math.Log(bounds.Beta / (1 - bounds.Alpha))
}

// Upper is the LLR stopping bound above which H1 is accepted.
func (bounds Bounds) Upper() float64 {
	return math.Log((1 - bounds.Beta) / bounds.Alpha)
}

// LikelihoodRatio returns a single game's contribution to the
// cumulative log-likelihood ratio given its score from the tested
// engine's perspective. The score is clamped away from 0 and 1 to keep
// the logarithms finite.
func (bounds Bounds) LikelihoodRatio(score float64) float64 {
	score = clamp(score, 1e-9)

	p0 := Logistic(bounds.Elo0)
	p1 := Logistic(bounds.Elo1)

	part1 := math.Pow(p1, score) * math.Pow(1-p1, 1-score)
	part0 := math.Pow(p0, score) * math.Pow(1-p0, 1-score)
	return math.Log(part1 / part0)
}

// Logistic converts an elo difference to an expected score.
func Logistic(elo float64) float64 {
	return 1 / (1 + math.Pow(10, -elo/400))
}

func clamp(score, eps float64) float64 {
	return math.Min(math.Max(score, eps), 1-eps)
}
