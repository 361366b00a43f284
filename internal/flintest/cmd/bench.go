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
	"sort"

	"github.com/spf13/cobra"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// flintest bench
func Bench() *cobra.Command {
	return &cobra.Command{
		Use:   "bench [engine-args...]",
		Short: "Run the engine's self-benchmark and report its summary",

		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := discoverClient(cmd, 0)
			if err != nil {
				return err
			}

			summary, err := client.Bench(args...)
			if err != nil {
				return err
			}

			printBench(summary)
			return nil
		},
	}
}

func printBench(summary uci.BenchSummary) {
	fmt.Printf("nodes     | %d\n", summary.Nodes)
	fmt.Printf("positions | %d\n", summary.Positions)

	var extras []string
	for field := range summary.Fields {
		if field != "nodes" && field != "positions" {
			extras = append(extras, field)
		}
	}

	sort.Strings(extras)
	for _, field := range extras {
		fmt.Printf("%-9s | %d\n", field, summary.Fields[field])
	}
}
