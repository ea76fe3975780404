package console

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ne241099c/minesweeper/game"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		line    string
		want    command
		wantErr bool
	}{
		{line: "1 2", want: command{action: actionReveal, row: 1, col: 2}},
		{line: "  r 0 3 ", want: command{action: actionReveal, row: 0, col: 3}},
		{line: "f 4 5", want: command{action: actionFlag, row: 4, col: 5}},
		{line: "FLAG 4 5", want: command{action: actionFlag, row: 4, col: 5}},
		{line: "-1 9", want: command{action: actionReveal, row: -1, col: 9}},
		{line: "q", want: command{action: actionQuit}},
		{line: "", wantErr: true},
		{line: "1", wantErr: true},
		{line: "a b", wantErr: true},
		{line: "1 b", wantErr: true},
		{line: "f 1", wantErr: true},
		{line: "1 2 3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			got, err := parseCommand(tt.line)
			if tt.wantErr {
				require.ErrorIs(t, err, errUsage)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func newSession(t *testing.T, input string, mines ...game.Pos) (*Session, *bytes.Buffer) {
	t.Helper()
	cfg, err := game.NewConfig(2, 2, len(mines))
	require.NoError(t, err)
	b, err := game.NewBoardWithMines(cfg, mines)
	require.NoError(t, err)

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	var out bytes.Buffer
	return &Session{
		Game:   game.NewFromBoard(b),
		In:     strings.NewReader(input),
		Out:    &out,
		Logger: log.New(io.Discard),
		Now: func() time.Time {
			clock = clock.Add(time.Second)
			return clock
		},
	}, &out
}

func TestRunWin(t *testing.T) {
	s, out := newSession(t, "x y\n5 5\n0 1\nf 0 0\n1 0\n1 1\n", game.Pos{Row: 0, Col: 0})

	require.NoError(t, s.Run())
	assert.Equal(t, game.Won, s.Game.State())

	text := out.String()
	assert.Contains(t, text, "is not a number")
	assert.Contains(t, text, "Nothing to reveal at 5 5.")
	assert.Contains(t, text, "You cleared the board in 3 seconds!")
}

func TestRunLose(t *testing.T) {
	s, out := newSession(t, "0 0\n", game.Pos{Row: 0, Col: 0})

	require.NoError(t, s.Run())
	assert.Equal(t, game.Lost, s.Game.State())
	assert.Contains(t, out.String(), "Boom!")
}

func TestRunQuitAndEOF(t *testing.T) {
	s, _ := newSession(t, "q\n", game.Pos{Row: 1, Col: 1})
	assert.ErrorIs(t, s.Run(), ErrQuit)

	s, _ = newSession(t, "0 0\n", game.Pos{Row: 1, Col: 1})
	assert.ErrorIs(t, s.Run(), io.ErrUnexpectedEOF)
	assert.Equal(t, game.InProgress, s.Game.State())
}
