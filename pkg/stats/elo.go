// Copyright © 2025 Mike Kowalski <mike@flintcore.dev>
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package stats

import "math"

// EloFromScore inverts the logistic relation and returns the elo
// difference corresponding to an observed score. The score is clamped
// away from 0 and 1 to keep the estimate finite.
func EloFromScore(score float64) float64 {
	score = clamp(score, 1e-6)
	return -400 * math.Log10(1/score-1)
}

// EloWithConfidence returns the elo estimate for an observed score over
// the given number of games along with its confidence margin at the
// requested level, propagating the score's binomial standard error
// through the elo curve's derivative. Zero games yield a zero estimate
// and margin.
func EloWithConfidence(score float64, games int, confidence float64) (elo float64, margin float64) {
	if games == 0 {
		return 0, 0
	}

	score = clamp(score, 1e-6)
	elo = EloFromScore(score)

	sigma := math.Sqrt(score * (1 - score) / float64(games))
	derivative := 400 / (math.Ln10 * score * (1 - score))
	margin = phiInv((1+confidence)/2) * derivative * sigma

	return elo, margin
}

// phiInv is the quantile function of the standard normal distribution.
func phiInv(p float64) float64 {
	return math.Sqrt2 * math.Erfinv(2*p-1)
}
