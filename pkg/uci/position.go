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
	"strings"
)

// StartFEN is the FEN string of the standard starting position.
const StartFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// Position describes the position part of a UCI position command: either
// the standard starting position or a FEN string, exactly one of the two,
// plus an optional ordered move list played from it.
type Position struct {
	StartPos bool     `yaml:"startpos,omitempty"`
	FEN      string   `yaml:"fen,omitempty"`
	Moves    []string `yaml:"moves,omitempty"`
}

// NewPosition validates and creates a new Position. It rejects positions
// specifying both or neither of startpos and a FEN string, and move
// tokens too short to be coordinate notation.
func NewPosition(startpos bool, fen string, moves []string) (Position, error) {
	position := Position{StartPos: startpos, FEN: fen, Moves: moves}
	return position, position.Validate()
}

// StartPosition returns the standard starting position.
func StartPosition() Position {
	return Position{StartPos: true}
}

func (position Position) Validate() error {
	switch {
	case position.StartPos && position.FEN != "":
		return fmt.Errorf("uci: position cannot set both startpos and a fen")
	case !position.StartPos && position.FEN == "":
		return fmt.Errorf("uci: position requires either startpos or a fen")
	}

	for _, move := range position.Moves {
		if len(move) < 4 {
			return fmt.Errorf("uci: invalid move token %q", move)
		}
	}

	return nil
}

// BaseFEN returns the FEN string of the position's base, before any of
// its moves are played.
func (position Position) BaseFEN() string {
	if position.StartPos {
		return StartFEN
	}

	return position.FEN
}

// Command renders the position as a UCI position command. The moves
// keyword is emitted only when the move list is non-empty.
func (position Position) Command() string {
	base := "position fen " + position.FEN
	if position.StartPos {
		base = "position startpos"
	}

	if len(position.Moves) > 0 {
		base += " moves " + strings.Join(position.Moves, " ")
	}

	return base
}

// String returns a short human-readable form of the position, suitable
// for log lines.
func (position Position) String() string {
	if position.StartPos {
		return "startpos"
	}

	return position.FEN
}
