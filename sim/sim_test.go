package sim

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ne241099c/minesweeper/game"
)

func easy(t *testing.T) game.Config {
	t.Helper()
	cfg, err := game.PresetByName("easy")
	require.NoError(t, err)
	return cfg
}

func TestRunIsReproducible(t *testing.T) {
	opts := Options{Games: 25, Config: easy(t), Seed: 99}
	logger := log.New(io.Discard)

	var first, second []Result
	sum1, err := Run(context.Background(), opts, logger, func(r Result) error {
		first = append(first, r)
		return nil
	})
	require.NoError(t, err)
	sum2, err := Run(context.Background(), opts, logger, func(r Result) error {
		second = append(second, r)
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, sum1, sum2)
	assert.Equal(t, 25, sum1.Games)
	assert.Equal(t, sum1.Games, sum1.Wins+sum1.Losses)
	for i, r := range first {
		assert.Equal(t, i+1, r.Game)
		assert.True(t, r.State.Terminal())
		assert.Positive(t, r.Moves)
		if r.State == game.Won {
			assert.Equal(t, opts.Config.SafeCells(), r.Revealed)
		}
	}
}

func TestRunStops(t *testing.T) {
	logger := log.New(io.Discard)

	_, err := Run(context.Background(), Options{Games: 0, Config: easy(t)}, logger, nil)
	assert.ErrorIs(t, err, ErrNoGames)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	sum, err := Run(ctx, Options{Games: 5, Config: easy(t), Seed: 1}, logger, nil)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, sum.Games)

	boom := errors.New("boom")
	sum, err = Run(context.Background(), Options{Games: 5, Config: easy(t), Seed: 1}, logger, func(Result) error {
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 1, sum.Games)
}

func TestCSVWriter(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewCSVWriter(&buf)
	require.NoError(t, err)
	require.NoError(t, w.Write(Result{Game: 1, State: game.Won, Moves: 12, Guesses: 1, Revealed: 54}))
	require.NoError(t, w.Write(Result{Game: 2, State: game.Lost, Moves: 3, Guesses: 2, Revealed: 7}))
	require.NoError(t, w.Flush())

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, [][]string{
		{"game", "state", "moves", "guesses", "revealed"},
		{"1", "won", "12", "1", "54"},
		{"2", "lost", "3", "2", "7"},
	}, records)
}

func TestSummaryWinRate(t *testing.T) {
	assert.Zero(t, Summary{}.WinRate())
	assert.InDelta(t, 0.25, Summary{Games: 4, Wins: 1}.WinRate(), 1e-9)
}
