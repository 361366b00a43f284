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

package games

import (
	"errors"
	"strings"

	"laptudirm.com/x/mess/pkg/board"
	"laptudirm.com/x/mess/pkg/board/move"
	"laptudirm.com/x/mess/pkg/board/piece"
	"laptudirm.com/x/mess/pkg/formats/fen"
)

// NewChessOracle returns a fresh chess rules oracle.
func NewChessOracle() Oracle {
	return &ChessOracle{}
}

type ChessOracle struct {
	board *board.Board
	moves []move.Move
}

func (oracle *ChessOracle) Initialize(fenstr string) {
	oracle.board = board.New(board.FEN(fen.FromString(fenstr)))
	oracle.moves = oracle.board.GenerateMoves(false)
}

func (oracle *ChessOracle) SideToMove() Color {
	if oracle.board.SideToMove == piece.White {
		return White
	}

	return Black
}

func (oracle *ChessOracle) MakeMove(movStr string) error {
	for _, mov := range oracle.moves {
		if strings.EqualFold(mov.String(), movStr) {
			oracle.board.MakeMove(mov)
			oracle.moves = oracle.board.GenerateMoves(false)
			return nil
		}
	}

	return errors.New("illegal move " + movStr)
}

func (oracle *ChessOracle) FEN() string {
	fen := [6]string(oracle.board.FEN())
	return strings.Join(fen[:], " ")
}

func (oracle *ChessOracle) ZeroMoves() bool {
	return oracle.board.DrawClock == 0
}

func (oracle *ChessOracle) GameResult() (Result, string) {
	switch {
	case len(oracle.moves) == 0:
		if oracle.board.IsInCheck(oracle.board.SideToMove) {
			return XtmWins, "Checkmate"
		}

		return Draw, "Stalemate"

	case oracle.board.DrawClock >= 100:
		return Draw, "50-move Rule"
	case oracle.board.IsThreefoldRepetition():
		return Draw, "Threefold Repetition"
	case oracle.board.IsInsufficientMaterial():
		return Draw, "Insufficient Material"
	}

	return Ongoing, ""
}
