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
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/common"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/sprt"
)

// flintest resume
func Resume() *cobra.Command {
	return &cobra.Command{
		Use:   "resume run-name",
		Short: "Continue an archived Sequential Probability Ratio Test",
		Args:  cobra.ExactArgs(1),

		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := sprt.Load(args[0])
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
}

// flintest runs
func Runs() *cobra.Command {
	return &cobra.Command{
		Use:   "runs",
		Short: "List the archived runs which can be resumed",
		Args:  cobra.NoArgs,

		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := os.ReadDir(common.RunsDirectory)
			if err != nil {
				return err
			}

			var names []string
			for _, entry := range entries {
				if name, found := strings.CutSuffix(entry.Name(), ".yaml"); found {
					names = append(names, name)
				}
			}

			sort.Strings(names)
			for _, name := range names {
				fmt.Println(name)
			}

			return nil
		},
	}
}
