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

// LengthBuckets is the number of game-length histogram buckets, each 20
// plies wide with the last one open-ended.
const LengthBuckets = 5

// Verdict is a sequential test's stopping decision.
type Verdict uint8

const (
	InProgress Verdict = iota
	AcceptH0
	AcceptH1
	MaxGames
)

func (verdict Verdict) String() string {
	switch verdict {
	case AcceptH0:
		return "H0 Accepted"
	case AcceptH1:
		return "H1 Accepted"
	case MaxGames:
		return "Max Games Reached"
	default:
		return "In Progress"
	}
}

// Tracker accumulates a match's running tallies: win/loss/draw counts
// from the tested engine's perspective, the cumulative log-likelihood ratio,
// and a game-length histogram. The histogram is a reporting artifact
// only and plays no part in the stopping rule. The fields are exported
// so a paused match can be archived and resumed.
type Tracker struct {
	Wins   int `yaml:"wins"`
	Losses int `yaml:"losses"`
	Draws  int `yaml:"draws"`
	Games  int `yaml:"games"`

	LLR float64 `yaml:"llr"`

	Length [LengthBuckets]int `yaml:"length"`
}

// Record tallies one finished game given its score from the tested
// engine's perspective and its length in plies.
func (tracker *Tracker) Record(bounds Bounds, score float64, plies int) {
	switch score {
	case 1:
		tracker.Wins++
	case 0:
		tracker.Losses++
	default:
		tracker.Draws++
	}

	tracker.Games++
	tracker.LLR += bounds.LikelihoodRatio(score)

	bucket := plies / 20
	if bucket >= LengthBuckets {
		bucket = LengthBuckets - 1
	}
	tracker.Length[bucket]++
}

// Verdict evaluates the stopping rule: crossing the upper bound accepts
// H1, crossing the lower bound accepts H0, and exhausting the game cap
// without crossing either ends the match undecided.
func (tracker *Tracker) Verdict(bounds Bounds, maxGames int) Verdict {
	switch {
	case tracker.LLR >= bounds.Upper():
		return AcceptH1
	case tracker.LLR <= bounds.Lower():
		return AcceptH0
	case tracker.Games >= maxGames:
		return MaxGames
	default:
		return InProgress
	}
}

// Score returns the contender's aggregate score, 0.5 before any game
// has finished.
func (tracker *Tracker) Score() float64 {
	if tracker.Games == 0 {
		return 0.5
	}

	return (float64(tracker.Wins) + 0.5*float64(tracker.Draws)) / float64(tracker.Games)
}
