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
	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/perft"
)

// flintest perft
func Perft() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "perft",
		Short: "Check the engine's move generation against known node counts",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`perft runs the engine's node-count enumeration on a suite
			of positions with known answers and fails on the first
			mismatch. A wrong count pins a defect on the move generator
			without involving search or evaluation.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := discoverClient(cmd, 0)
			if err != nil {
				return err
			}

			both, _ := cmd.Flags().GetBool("both")
			return perft.Run(client, perft.DefaultCases, both)
		},
	}

	cmd.Flags().Bool("both", false, "Also run the go perft command spelling")

	return cmd
}
