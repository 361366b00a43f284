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

// Package build configures and builds the engine's CMake source tree.
package build

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/common"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/internal/util"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

type Config struct {
	// Source is the root of the engine's source tree.
	Source string

	// BuildDir is the out-of-tree build directory, <source>/build-ci
	// when empty.
	BuildDir string

	// BuildType is the CMake build type, Release when empty.
	BuildType string

	// Generator is an optional CMake generator override.
	Generator string

	// Target optionally restricts the build to a single target.
	Target string

	// Parallel requests that many parallel build jobs when positive.
	Parallel int

	// Binary is the executable's file name, uci.DefaultBinary when
	// empty.
	Binary string
}

// Build configures and builds the engine and returns the path of the
// built executable.
func Build(config Config) (string, error) {
	if config.Source == "" {
		return "", fmt.Errorf("build: engine source directory not configured")
	}

	if info, err := os.Stat(config.Source); err != nil || !info.IsDir() {
		return "", fmt.Errorf("build: engine source directory not found: %s", config.Source)
	}

	if config.BuildDir == "" {
		config.BuildDir = filepath.Join(config.Source, "build-ci")
	}

	if config.BuildType == "" {
		config.BuildType = "Release"
	}

	if config.Binary == "" {
		config.Binary = uci.DefaultBinary
	}

	if err := os.MkdirAll(config.BuildDir, common.DirPermissions); err != nil {
		return "", err
	}

	configure := []string{
		"-S", config.Source,
		"-B", config.BuildDir,
		"-DCMAKE_BUILD_TYPE=" + config.BuildType,
	}
	if config.Generator != "" {
		configure = append(configure, "-G", config.Generator)
	}

	if err := util.Execute("cmake", configure...); err != nil {
		return "", fmt.Errorf("build: cmake configure failed: %w", err)
	}

	compile := []string{
		"--build", config.BuildDir,
		"--config", config.BuildType,
	}
	if config.Target != "" {
		compile = append(compile, "--target", config.Target)
	}
	if config.Parallel > 0 {
		compile = append(compile, "-j", strconv.Itoa(config.Parallel))
	}

	if err := util.Execute("cmake", compile...); err != nil {
		return "", fmt.Errorf("build: cmake build failed: %w", err)
	}

	for _, candidate := range []string{
		filepath.Join(config.BuildDir, config.Binary),
		filepath.Join(config.BuildDir, config.Binary+".exe"),
	} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", fmt.Errorf(
		"build: %s executable missing from %s after the build",
		config.Binary, config.BuildDir,
	)
}
