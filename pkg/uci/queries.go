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
	"time"
)

// Perft runs can legitimately take longer than an ordinary script, so
// their deadlines are floored at these values regardless of the client's
// default.
const (
	perftTimeoutFloor = 90 * time.Second
	benchTimeoutFloor = 120 * time.Second
)

// Handshake performs the UCI identification handshake and returns the
// captured output. Use CheckHandshake to verify the response.
func (client *Client) Handshake() (CommandResult, error) {
	return client.RunScript([]string{"uci", "isready"}, 0)
}

// Perft runs a node-count enumeration at the given depth using the bare
// "perft" command spelling and returns the reported node count.
func (client *Client) Perft(position Position, depth int) (int64, error) {
	return client.perft(position, fmt.Sprintf("perft %d", depth))
}

// GoPerft runs a node-count enumeration at the given depth using the
// "go perft" command spelling and returns the reported node count.
func (client *Client) GoPerft(position Position, depth int) (int64, error) {
	return client.perft(position, fmt.Sprintf("go perft %d", depth))
}

func (client *Client) perft(position Position, command string) (int64, error) {
	if err := position.Validate(); err != nil {
		return 0, err
	}

	timeout := client.timeout
	if timeout < perftTimeoutFloor {
		timeout = perftTimeoutFloor
	}

	result, err := client.RunScript([]string{
		"uci",
		"isready",
		"ucinewgame",
		position.Command(),
		command,
	}, timeout)
	if err != nil {
		return 0, err
	}

	return ParsePerftNodes(result.Stdout)
}

// Search runs a depth-limited search from the starting position after
// the given seed moves and returns the engine's best move. The null-move
// sentinel is rejected.
func (client *Client) Search(moves []string, depth int) (string, error) {
	position, err := NewPosition(true, "", moves)
	if err != nil {
		return "", err
	}

	result, err := client.RunScript([]string{
		"uci",
		"isready",
		"ucinewgame",
		position.Command(),
		fmt.Sprintf("go depth %d", depth),
	}, 0)
	if err != nil {
		return "", err
	}

	return ParseBestMove(result.Stdout)
}

// Bench invokes the engine's self-benchmark mode through its command
// line arguments, "bench" when none are given, and returns the parsed
// summary fields.
func (client *Client) Bench(args ...string) (BenchSummary, error) {
	if len(args) == 0 {
		args = []string{"bench"}
	}

	timeout := client.timeout
	if timeout < benchTimeoutFloor {
		timeout = benchTimeoutFloor
	}

	result, err := client.Run(args, timeout)
	if err != nil {
		return BenchSummary{}, err
	}

	return ParseBenchSummary(result.Stdout)
}
