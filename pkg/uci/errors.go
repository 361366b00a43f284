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
	"errors"
	"fmt"
)

// ErrEngineNotFound is reported when none of the candidate paths resolve
// to a regular, executable engine binary.
var ErrEngineNotFound = errors.New("uci: engine executable not found")

// ErrTimeout is reported when a command script's deadline elapses before
// the engine process exits. A hung engine is a genuine defect, so script
// runs are never retried.
var ErrTimeout = errors.New("uci: engine process deadline exceeded")

// ProcessError is reported when the engine process exits with a non-zero
// status during a script run.
type ProcessError struct {
	ExitCode int
	Stderr   string
}

func (err *ProcessError) Error() string {
	if err.Stderr == "" {
		return fmt.Sprintf("uci: engine exited with status %d", err.ExitCode)
	}

	return fmt.Sprintf("uci: engine exited with status %d: %s", err.ExitCode, err.Stderr)
}

// ParseError is reported when an expected response pattern is absent from
// the engine's captured output.
type ParseError struct {
	Want   string
	Output string
}

func (err *ParseError) Error() string {
	return fmt.Sprintf("uci: unable to parse %s from engine output:\n%s", err.Want, err.Output)
}
