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

package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/match"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/sprt"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/stats"
)

// flintest sprt
func SPRT() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sprt",
		Short: "Run a Sequential Probability Ratio Test between two engine binaries",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`sprt plays a sequential match between a baseline and a
			contender engine binary and stops as soon as the accumulated
			evidence crosses a Wald boundary, reporting which hypothesis
			was accepted along with an Elo estimate and its confidence
			margin.

			Colors alternate every game and openings rotate through the
			given list. The match state is archived after every game, so
			an interrupted run can be continued with flintest resume.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := configFromFlags(cmd)
			if err != nil {
				return err
			}

			test, err := sprt.New(config)
			if err != nil {
				return err
			}

			result, err := test.Run()
			if err != nil {
				return err
			}

			fmt.Println(strings.Join(test.Summary(result.Verdict), "\n"))
			return nil
		},
	}

	cmd.Flags().String("config", "", "Load the whole match configuration from a yaml file")
	cmd.Flags().String("name", "", "Name of the run, used for its archive")

	cmd.Flags().String("engine-a", "", "Path to the baseline engine binary")
	cmd.Flags().String("engine-b", "", "Path to the contender engine binary")
	cmd.Flags().String("name-a", "Baseline", "Display name for engine A")
	cmd.Flags().String("name-b", "Contender", "Display name for engine B")

	cmd.Flags().Int("games", 200, "Maximum number of games to play")
	cmd.Flags().Duration("movetime", 400*time.Millisecond, "Advisory time budget per move")
	cmd.Flags().Float64("base-moves", 40, "Base moves echoed in the summary")
	cmd.Flags().Int("threads", 1, "UCI Threads option when supported")
	cmd.Flags().Int("hash", 8, "UCI Hash option in MB when supported")
	cmd.Flags().String("openings", "", "Opening list file, one FEN or startpos per line")

	cmd.Flags().Float64("elo0", -2, "Null hypothesis Elo")
	cmd.Flags().Float64("elo1", 2, "Alternative hypothesis Elo")
	cmd.Flags().Float64("alpha", 0.05, "Type I error rate")
	cmd.Flags().Float64("beta", 0.05, "Type II error rate")

	cmd.Flags().String("report", "", "File to write the final summary to")

	return cmd
}

func configFromFlags(cmd *cobra.Command) (sprt.Config, error) {
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return sprt.Config{}, err
		}

		var config sprt.Config
		if err := yaml.Unmarshal(file, &config); err != nil {
			return sprt.Config{}, err
		}

		return config, nil
	}

	engineA, _ := flags.GetString("engine-a")
	engineB, _ := flags.GetString("engine-b")
	if engineA == "" || engineB == "" {
		return sprt.Config{}, fmt.Errorf("both --engine-a and --engine-b are required")
	}

	nameA, _ := flags.GetString("name-a")
	nameB, _ := flags.GetString("name-b")
	name, _ := flags.GetString("name")
	games, _ := flags.GetInt("games")
	movetime, _ := flags.GetDuration("movetime")
	baseMoves, _ := flags.GetFloat64("base-moves")
	threads, _ := flags.GetInt("threads")
	hash, _ := flags.GetInt("hash")
	elo0, _ := flags.GetFloat64("elo0")
	elo1, _ := flags.GetFloat64("elo1")
	alpha, _ := flags.GetFloat64("alpha")
	beta, _ := flags.GetFloat64("beta")
	report, _ := flags.GetString("report")

	config := sprt.Config{
		Name: name,
		Engines: [2]match.EngineConfig{
			{Name: nameA, Cmd: engineA},
			{Name: nameB, Cmd: engineB},
		},
		Games:     games,
		MoveTime:  movetime,
		BaseMoves: baseMoves,
		Threads:   threads,
		HashMB:    hash,
		Bounds:    stats.Bounds{Elo0: elo0, Elo1: elo1, Alpha: alpha, Beta: beta},
		Report:    report,
	}

	if path, _ := flags.GetString("openings"); path != "" {
		openings, err := match.LoadOpenings(path)
		if err != nil {
			return sprt.Config{}, err
		}

		config.Openings = openings
	}

	return config, nil
}
