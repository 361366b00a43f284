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
	"strconv"
	"strings"
)

// NullMove is the sentinel an engine reports when it has no move to play.
const NullMove = "0000"

// ParsePerftNodes extracts the node count from a perft run's output.
// Lines are scanned last to first for either of the two accepted
// spellings, "total nodes: N" or "nodes N", case-insensitively.
func ParsePerftNodes(output string) (int64, error) {
	lines := splitLines(output)
	for i := len(lines) - 1; i >= 0; i-- {
		stripped := strings.TrimSpace(lines[i])
		lower := strings.ToLower(stripped)

		switch {
		case strings.HasPrefix(lower, "total nodes:"):
			_, count, _ := strings.Cut(stripped, ":")
			nodes, err := strconv.ParseInt(strings.TrimSpace(count), 10, 64)
			if err != nil {
				return 0, &ParseError{Want: "perft node count", Output: output}
			}

			return nodes, nil

		case strings.HasPrefix(lower, "nodes "):
			nodes, err := strconv.ParseInt(strings.Fields(stripped)[1], 10, 64)
			if err != nil {
				return 0, &ParseError{Want: "perft node count", Output: output}
			}

			return nodes, nil
		}
	}

	return 0, &ParseError{Want: "perft node count", Output: output}
}

// ParseBestMove extracts the move token from the first bestmove line of
// a search's output. The null-move sentinel is rejected: an engine which
// reports it has failed to find a legal move.
func ParseBestMove(output string) (string, error) {
	for _, line := range splitLines(output) {
		if !strings.HasPrefix(line, "bestmove ") {
			continue
		}

		fields := strings.Fields(line)
		if len(fields) < 2 || fields[1] == NullMove {
			return "", &ParseError{Want: "a non-null bestmove", Output: output}
		}

		return fields[1], nil
	}

	return "", &ParseError{Want: "a bestmove line", Output: output}
}

// BenchSummary holds the named numeric fields of an engine's benchmark
// summary line.
type BenchSummary struct {
	Nodes     int64
	Positions int64

	// Fields holds every labeled integer found on the summary line,
	// including the two extracted above.
	Fields map[string]int64
}

// ParseBenchSummary locates the last line of the output carrying the
// "bench summary" marker and extracts its labeled integer fields. At
// least the node and position counts must be present.
func ParseBenchSummary(output string) (BenchSummary, error) {
	var summary string
	for _, line := range splitLines(output) {
		if strings.Contains(strings.ToLower(line), "bench summary") {
			summary = line
		}
	}

	if summary == "" {
		return BenchSummary{}, &ParseError{Want: "a bench summary line", Output: output}
	}

	fields := map[string]int64{}
	tokens := strings.Fields(summary)
	for i, token := range tokens[:len(tokens)-1] {
		value, err := strconv.ParseInt(tokens[i+1], 10, 64)
		if err != nil {
			continue
		}

		fields[strings.ToLower(token)] = value
	}

	nodes, okNodes := fields["nodes"]
	positions, okPositions := fields["positions"]
	if !okNodes || !okPositions {
		return BenchSummary{}, &ParseError{Want: "nodes and positions bench fields", Output: output}
	}

	return BenchSummary{Nodes: nodes, Positions: positions, Fields: fields}, nil
}

// CheckHandshake verifies that a handshake's captured output carries the
// engine's identification lines and both ready acknowledgments.
func CheckHandshake(result CommandResult) error {
	var name, author, uciok, readyok bool
	for _, line := range result.StdoutLines() {
		switch {
		case strings.HasPrefix(line, "id name "):
			name = true
		case strings.HasPrefix(line, "id author "):
			author = true
		case line == "uciok":
			uciok = true
		case line == "readyok":
			readyok = true
		}
	}

	switch {
	case !name:
		return &ParseError{Want: "an id name line", Output: result.Stdout}
	case !author:
		return &ParseError{Want: "an id author line", Output: result.Stdout}
	case !uciok:
		return &ParseError{Want: "a uciok acknowledgment", Output: result.Stdout}
	case !readyok:
		return &ParseError{Want: "a readyok acknowledgment", Output: result.Stdout}
	}

	return nil
}
