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

package match

import (
	"bufio"
	"errors"
	"fmt"
	"os/exec"
	"regexp"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
)

// EngineConfig describes one engine participating in a match.
type EngineConfig struct {
	Name string `yaml:"name"`
	Cmd  string `yaml:"cmd"`
	Dir  string `yaml:"dir"`
	Arg  string `yaml:"arg"`

	Options map[string]string `yaml:"options"`
}

// moveGrace is the allowance past the advisory per-move budget before a
// reply is given up on. A hung engine is not killed mid-game, the wait
// simply expires and the game is forfeited.
const moveGrace = 10 * time.Second

// StartEngine spawns the configured engine process and performs the UCI
// handshake. The returned Engine owns the process for the whole match
// and must be released with Quit on every exit path.
func StartEngine(config EngineConfig) (*Engine, error) {
	var engine Engine
	process := exec.Command(config.Cmd, strings.Fields(config.Arg)...)

	engine.config = config
	engine.options = map[string]bool{}

	process.Dir = config.Dir

	stdin, _ := process.StdinPipe()
	stdout, _ := process.StdoutPipe()

	engine.writer = bufio.NewWriter(stdin)
	engine.reader = bufio.NewReader(stdout)
	engine.lines = make(chan string)

	engine.Cmd = process

	if err := engine.Cmd.Start(); err != nil {
		return nil, err
	}

	go func() {
		for {
			line, err := engine.reader.ReadString('\n')
			if err != nil {
				engine.err = err
				close(engine.lines)
				return
			}

			line = strings.Trim(line, " \n\t\r")

			logrus.Debugf("info: ("+engine.config.Name+")> %s\n", line)
			engine.lines <- line
		}
	}()

	if err := engine.Initialize(); err != nil {
		engine.Quit()
		return nil, err
	}

	return &engine, nil
}

type Engine struct {
	config EngineConfig

	*exec.Cmd

	writer *bufio.Writer
	reader *bufio.Reader

	lines chan string

	// options holds the lower-cased names the engine declared during
	// the handshake, so unsupported options can be skipped.
	options map[string]bool

	err error
}

// Name returns the engine's display name.
func (engine *Engine) Name() string {
	return engine.config.Name
}

// Initialize performs the UCI identification handshake, collecting the
// option declarations the engine reports before uciok.
func (engine *Engine) Initialize() error {
	if err := engine.Write("uci"); err != nil {
		return err
	}

	timer := time.NewTimer(5 * time.Second)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			if engine.err != nil {
				return engine.err
			}

			return ErrReadTimeout

		case line, ok := <-engine.lines:
			if !ok {
				return engine.err
			}

			if line == "uciok" {
				return nil
			}

			if name, found := strings.CutPrefix(line, "option name "); found {
				name, _, _ = strings.Cut(name, " type ")
				engine.options[strings.ToLower(strings.TrimSpace(name))] = true
			}
		}
	}
}

// Synchronize waits for the engine to complete some time consuming task
// and synchronizes the interface with it.
func (engine *Engine) Synchronize() error {
	if err := engine.Write("isready"); err != nil {
		return err
	}

	_, err := engine.Await("readyok", 5*time.Second)
	return err
}

// NewGame prepares the engine for a new game of chess.
func (engine *Engine) NewGame() error {
	if err := engine.Write("ucinewgame"); err != nil {
		return err
	}

	return engine.Synchronize()
}

// Configure applies the given options best-effort: names the engine did
// not declare during the handshake are skipped, not errors.
func (engine *Engine) Configure(options map[string]string) error {
	for name, value := range options {
		if !engine.options[strings.ToLower(name)] {
			logrus.Debugf("info: (%s) skipping unsupported option %q\n", engine.config.Name, name)
			continue
		}

		if err := engine.Write("setoption name %s value %s", name, value); err != nil {
			return err
		}
	}

	return engine.Synchronize()
}

// Quit releases the engine: a graceful quit write followed by a kill so
// the process is gone even when it ignores the command. Safe to call on
// every exit path, including after an engine crash.
func (engine *Engine) Quit() {
	_ = engine.Write("quit")
	if engine.Process != nil {
		_ = engine.Process.Kill()
	}
	_ = engine.Cmd.Wait()
}

// MoveReply is the explicit outcome of a per-move request: either the
// move the engine chose, or a forfeit with the reason play cannot
// continue. A forfeit is a normal match outcome, not a harness failure.
type MoveReply struct {
	Move string

	Forfeit bool
	Reason  string
}

func forfeit(reason string) MoveReply {
	return MoveReply{Forfeit: true, Reason: reason}
}

// PlayMove asks the engine for a move in the position reached from the
// base FEN after the given moves, within the advisory movetime budget.
// Any failure to produce a legal-looking move token, a write error, a
// crash, an expired wait or the null-move sentinel, resolves to a
// forfeit.
func (engine *Engine) PlayMove(baseFEN string, moves []string, movetime time.Duration) MoveReply {
	movesStr := ""
	if len(moves) > 0 {
		movesStr = " moves " + strings.Join(moves, " ")
	}

	if err := engine.Write("position fen %s%s", baseFEN, movesStr); err != nil {
		return forfeit(err.Error())
	}

	if err := engine.Synchronize(); err != nil {
		return forfeit(err.Error())
	}

	if err := engine.Write("go movetime %d", movetime.Milliseconds()); err != nil {
		return forfeit(err.Error())
	}

	line, err := engine.Await("bestmove .*", movetime+moveGrace)
	if err != nil {
		return forfeit(err.Error())
	}

	fields := strings.Fields(line)
	if len(fields) < 2 || fields[1] == "0000" {
		return forfeit("no move returned")
	}

	return MoveReply{Move: fields[1]}
}

var ErrReadTimeout = errors.New("engine: read i/o timeout")

// Await is a utility function which waits for a particular string from
// the engine with a fixed timeout.
func (engine *Engine) Await(pattern string, timeout time.Duration) (string, error) {
	regex := regexp.MustCompile(pattern)
	timer := time.NewTimer(timeout)
	defer timer.Stop()

	for {
		select {
		case <-timer.C:
			// timer ran out: wait timeout

			if engine.err != nil {
				return "", engine.err
			}

			return "", ErrReadTimeout

		case line, ok := <-engine.lines:
			if !ok {
				// the engine's stdout is gone: it crashed or exited
				return "", engine.err
			}

			if regex.MatchString(line) {
				// line is the expected line
				return line, nil
			}
		}
	}
}

func (engine *Engine) Write(format string, a ...any) error {
	logrus.Debugf("info: ("+engine.config.Name+")< "+format+"\n", a...)

	if _, err := fmt.Fprintf(engine.writer, format+"\n", a...); err != nil {
		return err
	}

	return engine.writer.Flush()
}
