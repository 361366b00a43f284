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
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/build"
)

// flintest build
func Build() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "build",
		Short: "Configure and build the engine from its CMake source tree",
		Args:  cobra.NoArgs,
		Long: heredoc.Doc(`build runs cmake on the engine's source tree and reports
			where the built executable ended up. The source tree is taken
			from --source or the FLINTCORE_SOURCE_DIR environment
			variable; pass the reported path back through --engine or
			FLINTCORE_ENGINE_PATH so the other commands can find it.`),

		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			where := locations(cmd)

			buildType, _ := flags.GetString("build-type")
			generator, _ := flags.GetString("generator")
			target, _ := flags.GetString("target")
			parallel, _ := flags.GetInt("parallel")

			binary, err := build.Build(build.Config{
				Source:    where.Source,
				BuildDir:  where.Build,
				BuildType: buildType,
				Generator: generator,
				Target:    target,
				Parallel:  parallel,
				Binary:    where.Binary,
			})
			if err != nil {
				return err
			}

			logrus.Infof("Engine binary ready at \x1b[33m%s\x1b[0m\n", binary)
			return nil
		},
	}

	cmd.Flags().String("build-type", "", "CMake build type, Release by default")
	cmd.Flags().String("generator", "", "Optional CMake generator")
	cmd.Flags().String("target", "", "Optional specific target to build")
	cmd.Flags().Int("parallel", 0, "Number of parallel build jobs to request")

	return cmd
}
