package uci

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePerftNodes(t *testing.T) {
	tests := []struct {
		name    string
		output  string
		nodes   int64
		wantErr bool
	}{
		{
			name:   "total nodes spelling",
			output: "a2a3: 20\na2a4: 20\nTotal nodes: 400\n",
			nodes:  400,
		},
		{
			name:   "nodes spelling",
			output: "info depth 3\nnodes 8902\n",
			nodes:  8902,
		},
		{
			name:   "case insensitive",
			output: "TOTAL NODES: 197281\n",
			nodes:  197281,
		},
		{
			name:   "last matching line wins",
			output: "nodes 400\ngarbage\nnodes 8902\n",
			nodes:  8902,
		},
		{
			name:    "absent",
			output:  "info string thinking\nbestmove e2e4\n",
			wantErr: true,
		},
		{
			name:    "malformed count",
			output:  "Total nodes: many\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			nodes, err := ParsePerftNodes(tt.output)
			if tt.wantErr {
				var parseErr *ParseError
				require.ErrorAs(t, err, &parseErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.nodes, nodes)
		})
	}
}

func TestParseBestMove(t *testing.T) {
	move, err := ParseBestMove("info depth 2 score cp 30\nbestmove e2e4 ponder e7e5\n")
	require.NoError(t, err)
	assert.Equal(t, "e2e4", move)

	_, err = ParseBestMove("info depth 2\n")
	assert.Error(t, err)

	_, err = ParseBestMove("bestmove 0000\n")
	assert.Error(t, err)

	_, err = ParseBestMove("bestmove\n")
	assert.Error(t, err)
}

func TestParseBenchSummary(t *testing.T) {
	output := "position 1/8 done\nbench summary: nodes 123456 positions 8 nps 2000000\n"
	summary, err := ParseBenchSummary(output)
	require.NoError(t, err)
	assert.Equal(t, int64(123456), summary.Nodes)
	assert.Equal(t, int64(8), summary.Positions)
	assert.Equal(t, int64(2000000), summary.Fields["nps"])

	_, err = ParseBenchSummary("no summary here\n")
	assert.Error(t, err)

	_, err = ParseBenchSummary("bench summary: nodes 5\n")
	assert.Error(t, err, "positions field is required")
}

func TestCheckHandshake(t *testing.T) {
	ok := CommandResult{Stdout: "id name FlintCore 1.2\nid author Flint Team\nuciok\nreadyok\n"}
	assert.NoError(t, CheckHandshake(ok))

	missing := CommandResult{Stdout: "id name FlintCore 1.2\nuciok\nreadyok\n"}
	assert.Error(t, CheckHandshake(missing))

	noAck := CommandResult{Stdout: "id name FlintCore 1.2\nid author Flint Team\nuciok\n"}
	assert.Error(t, CheckHandshake(noAck))
}

func TestEnsureQuit(t *testing.T) {
	assert.Equal(t, []string{"uci", "isready", "quit"}, EnsureQuit([]string{"uci", "isready"}))
	assert.Equal(t, []string{"uci", "quit"}, EnsureQuit([]string{"uci", "quit"}))
	assert.Equal(t, []string{"uci", "QUIT"}, EnsureQuit([]string{"uci", "QUIT"}))
	assert.Equal(t, []string{"quit"}, EnsureQuit(nil))
}

func TestCommandResultLines(t *testing.T) {
	result := CommandResult{Stdout: "one\r\ntwo\nthree\n", Stderr: ""}
	assert.Equal(t, []string{"one", "two", "three"}, result.StdoutLines())
	assert.Nil(t, result.StderrLines())
}
