package sprt

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mike-koala-bear/FlintCoreTesting/pkg/match"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/stats"
	"github.com/mike-koala-bear/FlintCoreTesting/pkg/uci"
)

func validConfig() Config {
	return Config{
		Engines: [2]match.EngineConfig{
			{Name: "Baseline", Cmd: "./engines/flintcore-old"},
			{Name: "Contender", Cmd: "./engines/flintcore-new"},
		},
		Games:     200,
		MoveTime:  400 * time.Millisecond,
		BaseMoves: 40,
		Threads:   1,
		HashMB:    8,
		Bounds:    stats.Bounds{Elo0: -2, Elo1: 2, Alpha: 0.05, Beta: 0.05},
	}
}

func TestNewValidation(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		sprt, err := New(validConfig())
		require.NoError(t, err)
		assert.NotEmpty(t, sprt.Name, "a fresh name is generated")
		assert.Equal(t, match.DefaultOpenings(), sprt.Openings, "empty opening list defaults")
	})

	t.Run("zero games", func(t *testing.T) {
		config := validConfig()
		config.Games = 0
		_, err := New(config)
		assert.Error(t, err)
	})

	t.Run("zero movetime", func(t *testing.T) {
		config := validConfig()
		config.MoveTime = 0
		_, err := New(config)
		assert.Error(t, err)
	})

	t.Run("missing engine command", func(t *testing.T) {
		config := validConfig()
		config.Engines[1].Cmd = ""
		_, err := New(config)
		assert.Error(t, err)
	})

	t.Run("bad bounds", func(t *testing.T) {
		config := validConfig()
		config.Bounds.Alpha = 0
		_, err := New(config)
		assert.Error(t, err)
	})

	t.Run("bad opening", func(t *testing.T) {
		config := validConfig()
		config.Openings = []uci.Position{{}}
		_, err := New(config)
		assert.Error(t, err)
	})
}

func TestSummary(t *testing.T) {
	sprt, err := New(validConfig())
	require.NoError(t, err)

	bounds := sprt.Bounds
	for _, score := range []float64{1, 1, 0.5, 0, 1} {
		sprt.State.Record(bounds, score, 60)
	}

	lines := sprt.Summary(stats.InProgress)
	require.Len(t, lines, 6)

	assert.Equal(t, "Engines | Baseline vs Contender", lines[0])
	assert.Contains(t, lines[1], "Elo     | ")
	assert.Contains(t, lines[1], "(95%)")
	assert.Equal(t, "Conf    | 40.0+0.40s Threads=1 Hash=8MB", lines[2])
	assert.Equal(t, "Games   | N: 5 W: 3 L: 1 D: 1", lines[3])
	assert.Equal(t, "Length  | [0 0 0 5 0]", lines[4])
	assert.Contains(t, lines[5], "SPRT    | llr=")
	assert.Contains(t, lines[5], "In Progress")
}

func TestSummaryNoGames(t *testing.T) {
	sprt, err := New(validConfig())
	require.NoError(t, err)

	lines := sprt.Summary(stats.InProgress)
	assert.Contains(t, lines[1], "0.00 +- 0.00", "no games yield a zero estimate and margin")
}

func TestOptionsMerge(t *testing.T) {
	config := validConfig()
	config.Engines[0].Options = map[string]string{"Ponder": "false", "Hash": "64"}
	sprt, err := New(config)
	require.NoError(t, err)

	options := sprt.options(sprt.Engines[0])
	assert.Equal(t, "1", options["Threads"])
	assert.Equal(t, "64", options["Hash"], "per-engine options win over match-wide ones")
	assert.Equal(t, "false", options["Ponder"])
}

func TestArchivePath(t *testing.T) {
	assert.True(t, strings.HasSuffix(ArchivePath("nightly-12"), "nightly-12.yaml"))
}
