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
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout is the script deadline used when the caller provides
// none.
const DefaultTimeout = 60 * time.Second

// Client drives a UCI engine binary in batch mode: each script run
// spawns a fresh process, feeds it the whole command script on standard
// input and captures its output until it exits.
type Client struct {
	path    string
	timeout time.Duration
}

// NewClient creates a Client for the engine binary at the given path.
// The path must point at a regular, executable file.
func NewClient(path string, timeout time.Duration) (*Client, error) {
	if !isExecutable(path) {
		return nil, fmt.Errorf("%w: %s is not an executable file", ErrEngineNotFound, path)
	}

	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{path: path, timeout: timeout}, nil
}

// Path returns the path of the engine binary the Client drives.
func (client *Client) Path() string {
	return client.path
}

// CommandResult holds the captured output of a finished engine process.
type CommandResult struct {
	Stdout string
	Stderr string
}

// StdoutLines returns the standard output split into lines, with
// trailing carriage returns and newlines stripped.
func (result CommandResult) StdoutLines() []string {
	return splitLines(result.Stdout)
}

// StderrLines returns the standard error split into lines, with trailing
// carriage returns and newlines stripped.
func (result CommandResult) StderrLines() []string {
	return splitLines(result.Stderr)
}

func splitLines(output string) []string {
	if output == "" {
		return nil
	}

	lines := strings.Split(strings.TrimRight(output, "\n"), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}

	return lines
}

// EnsureQuit appends the session-terminating quit command to the script
// unless its last non-blank line already is one.
func EnsureQuit(commands []string) []string {
	script := make([]string, len(commands))
	copy(script, commands)

	if len(script) == 0 || !strings.EqualFold(strings.TrimSpace(script[len(script)-1]), "quit") {
		script = append(script, "quit")
	}

	return script
}

// RunScript spawns the engine process, writes the given command script
// to its standard input and captures all output until it exits. A zero
// timeout means the client's default. The deadline bounds the whole
// script run; exceeding it kills the process and reports ErrTimeout,
// while a non-zero exit reports a ProcessError. Neither is ever retried.
func (client *Client) RunScript(commands []string, timeout time.Duration) (CommandResult, error) {
	if timeout <= 0 {
		timeout = client.timeout
	}

	script := strings.Join(EnsureQuit(commands), "\n") + "\n"

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return client.run(ctx, nil, script, timeout)
}

// Run spawns the engine process with the given command line arguments
// and no input script, capturing output until exit. Used for argv-mode
// entry points like the engine's self-benchmark.
func (client *Client) Run(args []string, timeout time.Duration) (CommandResult, error) {
	if timeout <= 0 {
		timeout = client.timeout
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	return client.run(ctx, args, "", timeout)
}

func (client *Client) run(ctx context.Context, args []string, stdin string, timeout time.Duration) (CommandResult, error) {
	logrus.Debugf("\x1b[34m%s\x1b[0m %s\n", client.path, strings.Join(args, " "))

	process := exec.CommandContext(ctx, client.path, args...)
	if stdin != "" {
		process.Stdin = strings.NewReader(stdin)
	}

	var stdout, stderr bytes.Buffer
	process.Stdout = &stdout
	process.Stderr = &stderr

	err := process.Run()
	result := CommandResult{Stdout: stdout.String(), Stderr: stderr.String()}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		return result, fmt.Errorf("%w after %s", ErrTimeout, timeout)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return result, &ProcessError{
			ExitCode: exitErr.ExitCode(),
			Stderr:   strings.TrimSpace(result.Stderr),
		}
	}

	if err != nil {
		return result, fmt.Errorf("uci: engine process failed: %w", err)
	}

	return result, nil
}
