// Package games holds the rules-oracle contract the match loop plays
// through. The oracle decides legality and termination; it is consumed,
// never reimplemented.
package games

// Oracle adjudicates a game: it applies moves, reports the resulting
// position and detects terminal states.
type Oracle interface {
	Initialize(fen string)
	SideToMove() Color
	MakeMove(mov string) error
	FEN() string
	GameResult() (Result, string)
	ZeroMoves() bool
}

type Color uint8

const (
	White Color = iota
	Black
)

func (color Color) Other() Color {
	return color ^ 1
}

// Result is a position's terminal status from the perspective of the
// side to move.
type Result uint8

const (
	Ongoing Result = iota
	StmWins
	XtmWins
	Draw
)
