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

package util

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/sirupsen/logrus"
)

// Execute runs a long external command, such as a cmake build, behind
// the ~working~ spinner. The command's output is captured and shown
// only when it fails, unless logging is at Trace level, in which case
// it streams through directly.
func Execute(command string, args ...string) error {
	logrus.Debugf("\x1b[34m%s\x1b[0m %s\n", command, strings.Join(args, " "))

	cmd := exec.Command(command, args...)

	var captured bytes.Buffer
	cmd.Stdout = &captured
	cmd.Stderr = &captured
	if logrus.IsLevelEnabled(logrus.TraceLevel) {
		cmd.Stdout = os.Stdout
		cmd.Stderr = os.Stderr
	}

	fmt.Print("\x1b[33m") // Make the outputs yellow.
	StartSpinner()

	err := cmd.Run()

	PauseSpinner()
	fmt.Print("\x1b[0m") // Reset the terminal's color.

	if err != nil {
		// Dump the captured output so the failure is diagnosable.
		if !logrus.IsLevelEnabled(logrus.TraceLevel) {
			fmt.Print("==== \x1b[31mERROR\x1b[0m ====\n\x1b[31m")
			_, _ = os.Stdout.Write(captured.Bytes())
			fmt.Print("\x1b[0m===============\n")
		}

		return err
	}

	return nil
}
