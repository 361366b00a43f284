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

// Package perft holds node-count enumeration expectations with known
// answers, used as a correctness oracle for the engine's move generator.
package perft

import (
	"fmt"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// Case is a perft expectation: a position, a search depth, and the node
// count a correct move generator reports for them.
type Case struct {
	Name  string
	Depth int
	Nodes int64

	Position uci.Position
}

// NewCase validates and creates a perft expectation. The position must
// satisfy uci.Position's construction invariants and the depth must be
// positive.
func NewCase(name string, depth int, nodes int64, position uci.Position) (Case, error) {
	if name == "" {
		return Case{}, fmt.Errorf("perft: case requires a name")
	}

	if depth <= 0 {
		return Case{}, fmt.Errorf("perft: case %q requires a positive depth", name)
	}

	if nodes < 0 {
		return Case{}, fmt.Errorf("perft: case %q requires a non-negative node count", name)
	}

	if err := position.Validate(); err != nil {
		return Case{}, fmt.Errorf("perft: case %q: %w", name, err)
	}

	return Case{Name: name, Depth: depth, Nodes: nodes, Position: position}, nil
}

const kiwiFEN = "rnbqkb1r/pppp1ppp/5n2/4p3/2BPP3/5N2/PPP2PPP/RNBQK2R b KQkq - 2 3"

// DefaultCases is the expectation suite run by the perft command when no
// custom cases are given.
var DefaultCases = []Case{
	{Name: "startpos_depth2", Depth: 2, Nodes: 400, Position: uci.Position{StartPos: true}},
	{Name: "startpos_depth3", Depth: 3, Nodes: 8902, Position: uci.Position{StartPos: true}},
	{Name: "startpos_depth4", Depth: 4, Nodes: 197281, Position: uci.Position{StartPos: true}},
	{Name: "kiwipete_depth2", Depth: 2, Nodes: 2039, Position: uci.Position{FEN: kiwiFEN}},
	{Name: "kiwipete_depth3", Depth: 3, Nodes: 97862, Position: uci.Position{FEN: kiwiFEN}},
}
