package uci

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubEngine writes a shell script which echoes every line it reads back
// on stdout, prefixed so tests can tell input from the banner.
func stubEngine(t *testing.T, body string) *Client {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("stub engines are shell scripts")
	}

	path := filepath.Join(t.TempDir(), "stub")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"+body), 0755))

	client, err := NewClient(path, 5*time.Second)
	require.NoError(t, err)
	return client
}

func TestNewClientRejectsBadPath(t *testing.T) {
	_, err := NewClient(filepath.Join(t.TempDir(), "missing"), 0)
	assert.ErrorIs(t, err, ErrEngineNotFound)

	dir := t.TempDir()
	_, err = NewClient(dir, 0)
	assert.ErrorIs(t, err, ErrEngineNotFound)
}

func TestRunScriptCapturesOutput(t *testing.T) {
	client := stubEngine(t, `
while read -r line; do
    echo "got $line"
    echo "err $line" >&2
    [ "$line" = "quit" ] && exit 0
done
`)

	result, err := client.RunScript([]string{"uci", "isready"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"got uci", "got isready", "got quit"}, result.StdoutLines())
	assert.Equal(t, []string{"err uci", "err isready", "err quit"}, result.StderrLines())
}

func TestRunScriptProcessError(t *testing.T) {
	client := stubEngine(t, "echo broken >&2\nexit 3\n")

	_, err := client.RunScript([]string{"uci"}, 0)
	var processErr *ProcessError
	require.ErrorAs(t, err, &processErr)
	assert.Equal(t, 3, processErr.ExitCode)
	assert.Contains(t, processErr.Stderr, "broken")
}

func TestRunScriptTimeout(t *testing.T) {
	client := stubEngine(t, "exec sleep 30\n")

	start := time.Now()
	_, err := client.RunScript([]string{"uci"}, 200*time.Millisecond)
	assert.ErrorIs(t, err, ErrTimeout)
	assert.Less(t, time.Since(start), 5*time.Second, "process must be killed at the deadline")
}

func TestRunArgvMode(t *testing.T) {
	client := stubEngine(t, `echo "bench summary: nodes 42 positions 2"`)

	summary, err := client.Bench()
	require.NoError(t, err)
	assert.Equal(t, int64(42), summary.Nodes)
	assert.Equal(t, int64(2), summary.Positions)
}

func TestPerftQueryAgainstStub(t *testing.T) {
	client := stubEngine(t, `
while read -r line; do
    case "$line" in
    "perft "*) echo "Total nodes: 400" ;;
    "go perft "*) echo "nodes 400" ;;
    quit) exit 0 ;;
    esac
done
`)

	nodes, err := client.Perft(StartPosition(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(400), nodes)

	nodes, err = client.GoPerft(StartPosition(), 2)
	require.NoError(t, err)
	assert.Equal(t, int64(400), nodes)
}
