package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPosition(t *testing.T) {
	tests := []struct {
		name     string
		startpos bool
		fen      string
		moves    []string
		wantErr  bool
	}{
		{name: "startpos", startpos: true},
		{name: "fen only", fen: StartFEN},
		{name: "startpos with moves", startpos: true, moves: []string{"e2e4", "e7e5"}},
		{name: "promotion move", startpos: true, moves: []string{"e7e8q"}},
		{name: "both startpos and fen", startpos: true, fen: StartFEN, wantErr: true},
		{name: "neither startpos nor fen", wantErr: true},
		{name: "short move token", startpos: true, moves: []string{"e4"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPosition(tt.startpos, tt.fen, tt.moves)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestPositionCommand(t *testing.T) {
	position, err := NewPosition(true, "", []string{"e2e4", "e7e5"})
	require.NoError(t, err)
	assert.Equal(t, "position startpos moves e2e4 e7e5", position.Command())

	fen := "rnbqkb1r/pppp1ppp/5n2/4p3/2BPP3/5N2/PPP2PPP/RNBQK2R b KQkq - 2 3"
	position, err = NewPosition(false, fen, nil)
	require.NoError(t, err)
	assert.Equal(t, "position fen "+fen, position.Command())
	assert.NotContains(t, position.Command(), "moves")
}

func TestPositionBaseFEN(t *testing.T) {
	assert.Equal(t, StartFEN, StartPosition().BaseFEN())

	fen := "8/8/8/8/8/8/8/K1k5 w - - 0 1"
	position, err := NewPosition(false, fen, nil)
	require.NoError(t, err)
	assert.Equal(t, fen, position.BaseFEN())
}
