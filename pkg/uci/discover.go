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

package uci

import (
	"fmt"
	"os"
	"path/filepath"
)

// DefaultBinary is the file name of the engine executable looked for in
// build directories when no override is given.
const DefaultBinary = "FlintCore"

// Locations is the explicit discovery configuration for the engine
// binary. Every field is an override resolved by the caller, usually
// from command line flags with environment variable fallbacks; the
// package itself never consults the process environment.
type Locations struct {
	// Engine is an explicit path to the engine executable.
	Engine string

	// Source is the root of the engine's source tree, searched through
	// its conventional build output subdirectories.
	Source string

	// Build is an explicit build output directory.
	Build string

	// Binary is the executable's file name, DefaultBinary when empty.
	Binary string
}

// Candidates returns the ordered, deduplicated list of paths at which
// the engine executable is looked for.
func (locations Locations) Candidates() []string {
	binary := locations.Binary
	if binary == "" {
		binary = DefaultBinary
	}

	var candidates []string
	if locations.Engine != "" {
		candidates = append(candidates, locations.Engine)
	}

	var hints []string
	if locations.Build != "" {
		hints = append(hints, locations.Build)
	}

	if locations.Source != "" {
		hints = append(hints,
			filepath.Join(locations.Source, "build"),
			filepath.Join(locations.Source, "build-ci"),
			filepath.Join(locations.Source, "cmake-build-release"),
			filepath.Join(locations.Source, "build-release"),
		)
	}

	for _, hint := range hints {
		candidates = append(candidates, filepath.Join(hint, binary))
		candidates = append(candidates, filepath.Join(hint, binary+".exe"))
	}

	// Fallback for when the harness is vendored inside the source tree.
	candidates = append(candidates, filepath.Join("build", binary))

	seen := map[string]bool{}
	ordered := make([]string, 0, len(candidates))
	for _, candidate := range candidates {
		resolved, err := filepath.Abs(candidate)
		if err != nil {
			resolved = candidate
		}

		if seen[resolved] {
			continue
		}

		seen[resolved] = true
		ordered = append(ordered, resolved)
	}

	return ordered
}

// Discover returns the first candidate path which is a regular,
// executable file, or an error wrapping ErrEngineNotFound.
func (locations Locations) Discover() (string, error) {
	for _, candidate := range locations.Candidates() {
		if isExecutable(candidate) {
			return candidate, nil
		}
	}

	return "", fmt.Errorf(
		"%w: set an explicit engine path or build the engine first",
		ErrEngineNotFound,
	)
}

func isExecutable(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular() && info.Mode().Perm()&0111 != 0
}
