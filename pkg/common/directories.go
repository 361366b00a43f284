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

// Package common holds the harness's home directory layout, shared by
// the match runner and the command layer.
package common

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const (
	DirPermissions  = 0755
	FilePermissions = 0644
)

// Directory is the harness's home under the user's home directory.
var Directory = filepath.Join(xdg.Home, "flintest")

// RunsDirectory holds the archived snapshots of running and finished
// matches, one yaml file per run.
var RunsDirectory = filepath.Join(Directory, "runs")

func TryMkdir(dir string) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		_ = os.Mkdir(dir, DirPermissions)
	}
}

func init() {
	TryMkdir(Directory)
	TryMkdir(RunsDirectory)
}
