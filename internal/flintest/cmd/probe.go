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
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// flintest probe
func Probe() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe",
		Short: "Sanity-check the engine: handshake plus a shallow search",

		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := discoverClient(cmd, 0)
			if err != nil {
				return err
			}

			result, err := client.Handshake()
			if err != nil {
				return err
			}

			if err := uci.CheckHandshake(result); err != nil {
				return err
			}

			for _, line := range result.StdoutLines() {
				if strings.HasPrefix(line, "id ") {
					logrus.Info(line)
				}
			}

			depth, _ := cmd.Flags().GetInt("depth")
			bestmove, err := client.Search([]string{"e2e4", "e7e5"}, depth)
			if err != nil {
				return err
			}

			logrus.Infof("bestmove \x1b[33m%s\x1b[0m at depth %d\n", bestmove, depth)
			return nil
		},
	}

	cmd.Flags().Int("depth", 2, "Depth of the sanity search")

	return cmd
}
