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
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

func Root() *cobra.Command {
	root := &cobra.Command{
		Use:  "flintest",
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// If --trace flag is provided, set logging level to Trace.
			if cmd.Flag("trace").Changed {
				logrus.SetLevel(logrus.TraceLevel)
			}
		},
	}

	// global flags
	root.PersistentFlags().BoolP("help", "h", false, "Show Help Information")
	root.PersistentFlags().BoolP("version", "v", false, "Show Flintest's Version")
	root.PersistentFlags().BoolP("trace", "t", false, "Show Trace Information")

	// engine discovery overrides, environment fallbacks resolved here
	root.PersistentFlags().String("engine", "", "Explicit path to the engine executable")
	root.PersistentFlags().String("source", "", "Path to the engine's source tree")
	root.PersistentFlags().String("build-dir", "", "Explicit engine build directory")
	root.PersistentFlags().String("binary", "", "File name of the engine executable")

	versionStr := "v0.1.0\n"
	root.SetVersionTemplate(versionStr)
	root.Version = versionStr

	// Register the various commands.
	root.AddCommand(SPRT())
	root.AddCommand(Resume())
	root.AddCommand(Runs())
	root.AddCommand(Perft())
	root.AddCommand(Bench())
	root.AddCommand(Probe())
	root.AddCommand(Build())

	return root
}

// locations assembles the engine discovery configuration from the
// global flags, falling back to the conventional environment variables.
// This is the only place the process environment is consulted.
func locations(cmd *cobra.Command) uci.Locations {
	flagOr := func(name, env string) string {
		if value, _ := cmd.Flags().GetString(name); value != "" {
			return value
		}

		if env == "" {
			return ""
		}

		return os.Getenv(env)
	}

	return uci.Locations{
		Engine: flagOr("engine", "FLINTCORE_ENGINE_PATH"),
		Source: flagOr("source", "FLINTCORE_SOURCE_DIR"),
		Build:  flagOr("build-dir", "FLINTCORE_BUILD_DIR"),
		Binary: flagOr("binary", ""),
	}
}

// discoverClient locates the engine binary and wraps it in a script
// client.
func discoverClient(cmd *cobra.Command, timeout time.Duration) (*uci.Client, error) {
	path, err := locations(cmd).Discover()
	if err != nil {
		return nil, err
	}

	logrus.Infof("Using engine binary \x1b[33m%s\x1b[0m\n", path)
	return uci.NewClient(path, timeout)
}
