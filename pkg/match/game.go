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
	"fmt"
	"time"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/match/games"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

// Outcome is a finished game's result from White's perspective, the
// reason play ended, and the game's length in plies.
type Outcome struct {
	Result Result
	Reason string
	Plies  int
}

// lostBy maps the losing color to the game's Result.
var lostBy = [2]Result{
	games.White: Loss,
	games.Black: Win,
}

// PlayGame plays one game between two already-running engines from the
// given opening, asking the side to move for a move within the advisory
// movetime budget each ply. An engine which crashes, errors or returns
// no move forfeits immediately; that is a normal outcome for the match,
// not an error. The error return covers setup problems only, such as an
// opening whose seed moves the oracle rejects.
func PlayGame(white, black *Engine, oracle games.Oracle, opening uci.Position, movetime time.Duration) (Outcome, error) {
	if err := opening.Validate(); err != nil {
		return Outcome{}, err
	}

	oracle.Initialize(opening.BaseFEN())
	for _, mov := range opening.Moves {
		if err := oracle.MakeMove(mov); err != nil {
			return Outcome{}, fmt.Errorf("match: opening %s: %w", opening, err)
		}
	}

	if err := white.NewGame(); err != nil {
		return Outcome{Result: lostBy[games.White], Reason: "forfeit: " + err.Error()}, nil
	}

	if err := black.NewGame(); err != nil {
		return Outcome{Result: lostBy[games.Black], Reason: "forfeit: " + err.Error()}, nil
	}

	engines := [2]*Engine{games.White: white, games.Black: black}

	// The position is sent as the last irreversible position plus the
	// moves played from it, so the engine can detect repetitions.
	base := oracle.FEN()
	var moves []string

	plies := 0
	for {
		mover := oracle.SideToMove()

		reply := engines[mover].PlayMove(base, moves, movetime)
		if reply.Forfeit {
			return Outcome{Result: lostBy[mover], Reason: "forfeit: " + reply.Reason, Plies: plies}, nil
		}

		if err := oracle.MakeMove(reply.Move); err != nil {
			return Outcome{Result: lostBy[mover], Reason: "forfeit: " + err.Error(), Plies: plies}, nil
		}

		moves = append(moves, reply.Move)
		plies++

		result, reason := oracle.GameResult()
		switch result {
		case games.StmWins:
			// the side to move after the move wins, so the mover lost
			return Outcome{Result: lostBy[mover], Reason: reason, Plies: plies}, nil
		case games.XtmWins:
			return Outcome{Result: lostBy[mover.Other()], Reason: reason, Plies: plies}, nil
		case games.Draw:
			return Outcome{Result: Draw, Reason: reason, Plies: plies}, nil
		}

		if oracle.ZeroMoves() {
			base = oracle.FEN()
			moves = moves[:0]
		}
	}
}
