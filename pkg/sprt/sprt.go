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

// Package sprt orchestrates a sequential match between two engine
// binaries: it owns both processes for the match's lifetime, rotates
// openings, feeds each game's score to the stopping rule and reports
// the final verdict with an Elo estimate.
package sprt

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/common"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/match"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/match/games"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/stats"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// Config describes a full SPRT match. Engine A is the baseline whose
// perspective the hypotheses are stated against; engine B is the
// contender. The State field carries a paused match's tallies so a run
// can be resumed from its archive.
type Config struct {
	Name string `yaml:"name"`

	// The engines participating in the match: A then B.
	Engines [2]match.EngineConfig `yaml:"engines"`

	// Games is the cap on the number of games played when neither
	// stopping bound is crossed first.
	Games int `yaml:"games"`

	// MoveTime is the advisory per-move time budget.
	MoveTime time.Duration `yaml:"movetime"`

	// BaseMoves is echoed in the summary's time configuration line.
	BaseMoves float64 `yaml:"base-moves"`

	// Options applied to both engines best-effort.
	Threads int `yaml:"threads"`
	HashMB  int `yaml:"hash"`

	Bounds stats.Bounds `yaml:"bounds"`

	Openings []uci.Position `yaml:"openings"`

	// Report is an optional file path the final summary is written to.
	Report string `yaml:"report,omitempty"`

	State stats.Tracker `yaml:"state"`
}

func (config *Config) Validate() error {
	if config.Games <= 0 {
		return fmt.Errorf("sprt: game cap must be positive")
	}

	if config.MoveTime <= 0 {
		return fmt.Errorf("sprt: move time must be positive")
	}

	for i, engine := range config.Engines {
		if engine.Cmd == "" {
			return fmt.Errorf("sprt: engine %d has no command", i)
		}
	}

	return config.Bounds.Validate()
}

// New validates the configuration and creates a match ready to Run. A
// missing name is replaced with a fresh one and an empty opening list
// with the default single starting-position entry.
func New(config Config) (*SPRT, error) {
	if config.Name == "" {
		config.Name = uuid.NewString()
	}

	if len(config.Openings) == 0 {
		config.Openings = match.DefaultOpenings()
	}

	for _, opening := range config.Openings {
		if err := opening.Validate(); err != nil {
			return nil, err
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &SPRT{Config: config}, nil
}

type SPRT struct {
	Config
}

// Result is the final state of a finished match.
type Result struct {
	State   stats.Tracker
	Verdict stats.Verdict
}

// Run plays the match. Both engine processes are spawned up front and
// released on every exit path. Games continue until a stopping bound is
// crossed or the game cap is exhausted; a mid-game engine failure is a
// forfeit outcome, never a run error. After every game the match state
// is archived so an interrupted run can be resumed.
func (sprt *SPRT) Run() (Result, error) {
	engineA, err := match.StartEngine(sprt.Engines[0])
	if err != nil {
		return Result{}, fmt.Errorf("sprt: starting %s: %w", sprt.Engines[0].Name, err)
	}
	defer engineA.Quit()

	engineB, err := match.StartEngine(sprt.Engines[1])
	if err != nil {
		return Result{}, fmt.Errorf("sprt: starting %s: %w", sprt.Engines[1].Name, err)
	}
	defer engineB.Quit()

	if err := engineA.Configure(sprt.options(sprt.Engines[0])); err != nil {
		return Result{}, err
	}

	if err := engineB.Configure(sprt.options(sprt.Engines[1])); err != nil {
		return Result{}, err
	}

	verdict := sprt.State.Verdict(sprt.Bounds, sprt.Games)
	for game := sprt.State.Games; verdict == stats.InProgress; game++ {
		opening := sprt.Openings[game%len(sprt.Openings)]

		// Colors alternate by game index parity: on even indices the
		// baseline plays White.
		white, black := engineA, engineB
		if game%2 != 0 {
			white, black = engineB, engineA
		}

		logrus.Infof(
			"\x1b[33mStarting\x1b[0m Game #%d: %s vs %s (\x1b[33m%s\x1b[0m)\n",
			game+1, white.Name(), black.Name(), opening,
		)

		outcome, err := match.PlayGame(white, black, games.NewChessOracle(), opening, sprt.MoveTime)
		if err != nil {
			return Result{State: sprt.State, Verdict: verdict}, err
		}

		score := outcome.Result.Score()
		if white != engineA {
			score = 1 - score
		}

		sprt.State.Record(sprt.Bounds, score, outcome.Plies)
		sprt.archive()

		logrus.Infof(
			"\x1b[32mFinished\x1b[0m Game #%d: %s vs %s: %s (%s)\n",
			game+1, white.Name(), black.Name(), outcome.Result, outcome.Reason,
		)

		if sprt.State.Games%5 == 0 {
			sprt.Report()
		}

		verdict = sprt.State.Verdict(sprt.Bounds, sprt.Games)
	}

	sprt.Report()
	fmt.Println(verdictBanner(verdict))

	result := Result{State: sprt.State, Verdict: verdict}
	if sprt.Config.Report != "" {
		if err := sprt.WriteReport(sprt.Config.Report, result); err != nil {
			return result, err
		}
	}

	return result, nil
}

// options merges the match-wide thread and hash settings with an
// engine's own option map.
func (sprt *SPRT) options(engine match.EngineConfig) map[string]string {
	options := map[string]string{}
	if sprt.Threads > 0 {
		options["Threads"] = strconv.Itoa(sprt.Threads)
	}

	if sprt.HashMB > 0 {
		options["Hash"] = strconv.Itoa(sprt.HashMB)
	}

	for name, value := range engine.Options {
		options[name] = value
	}

	return options
}

func verdictBanner(verdict stats.Verdict) string {
	switch verdict {
	case stats.AcceptH1:
		return "\x1b[32m" + verdict.String() + "\x1b[0m"
	case stats.AcceptH0:
		return "\x1b[31m" + verdict.String() + "\x1b[0m"
	default:
		return verdict.String()
	}
}

// archive snapshots the configuration and running tallies under the
// harness home so an interrupted match can be resumed by name.
func (sprt *SPRT) archive() {
	data, err := yaml.Marshal(sprt.Config)
	if err != nil {
		return
	}

	_ = os.WriteFile(ArchivePath(sprt.Name), data, common.FilePermissions)
}

// ArchivePath returns the archive file of the run with the given name.
func ArchivePath(name string) string {
	return filepath.Join(common.RunsDirectory, name+".yaml")
}

// Load reads the archived run with the given name.
func Load(name string) (Config, error) {
	file, err := os.ReadFile(ArchivePath(name))
	if err != nil {
		return Config{}, err
	}

	var config Config
	if err := yaml.Unmarshal(file, &config); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Summary returns the human-readable report of the match's current
// state as labeled lines: the headline Elo with its 95% confidence
// margin, the configuration echo, the game tallies, the length
// histogram and the stopping statistic with its verdict.
func (sprt *SPRT) Summary(verdict stats.Verdict) []string {
	state := &sprt.State
	elo, margin := stats.EloWithConfidence(state.Score(), state.Games, 0.95)

	return []string{
		fmt.Sprintf("Engines | %s vs %s", sprt.Engines[0].Name, sprt.Engines[1].Name),
		fmt.Sprintf("Elo     | %.2f +- %.2f (95%%)", elo, margin),
		fmt.Sprintf(
			"Conf    | %.1f+%.2fs Threads=%d Hash=%dMB",
			sprt.BaseMoves, sprt.MoveTime.Seconds(), sprt.Threads, sprt.HashMB,
		),
		fmt.Sprintf(
			"Games   | N: %d W: %d L: %d D: %d",
			state.Games, state.Wins, state.Losses, state.Draws,
		),
		fmt.Sprintf("Length  | %v", state.Length),
		fmt.Sprintf(
			"SPRT    | llr=%.3f (%.3f, %.3f) [%.2f, %.2f] %s",
			state.LLR, sprt.Bounds.Lower(), sprt.Bounds.Upper(),
			sprt.Bounds.Elo0, sprt.Bounds.Elo1, verdict,
		),
	}
}

// WriteReport persists the final summary to the given file.
func (sprt *SPRT) WriteReport(path string, result Result) error {
	if err := os.MkdirAll(filepath.Dir(path), common.DirPermissions); err != nil {
		return err
	}

	summary := strings.Join(sprt.Summary(result.Verdict), "\n") + "\n"
	return os.WriteFile(path, []byte(summary), common.FilePermissions)
}

// Report prints the running state as a box table on standard output.
func (sprt *SPRT) Report() {
	state := &sprt.State
	elo, margin := stats.EloWithConfidence(state.Score(), state.Games, 0.95)

	eloStr := fmt.Sprintf("║ ELO    | %.2f +- %.2f (95%%)", elo, margin)
	llrStr := fmt.Sprintf(
		"║ LLR    | %.2f (%.2f, %.2f) [%.2f, %.2f]",
		state.LLR, sprt.Bounds.Lower(), sprt.Bounds.Upper(),
		sprt.Bounds.Elo0, sprt.Bounds.Elo1,
	)
	gamStr := fmt.Sprintf(
		"║ GAMES  | N: %d W: %d L: %d D: %d",
		state.Games, state.Wins, state.Losses, state.Draws,
	)
	lenStr := fmt.Sprintf("║ LENGTH | %v", state.Length)

	fmt.Println("╔═════════════════════════════════════════════════╗")
	fmt.Printf("%-50s║\n", eloStr)
	fmt.Printf("%-50s║\n", llrStr)
	fmt.Printf("%-50s║\n", gamStr)
	fmt.Printf("%-50s║\n", lenStr)
	fmt.Println("╚═════════════════════════════════════════════════╝")
}
