package viewmodel

import (
	"encoding/json"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ne241099c/minesweeper/game"
)

func newGame(t *testing.T, rows, cols int, mines ...game.Pos) *game.Game {
	t.Helper()
	cfg, err := game.NewConfig(rows, cols, len(mines))
	require.NoError(t, err)
	b, err := game.NewBoardWithMines(cfg, mines)
	require.NoError(t, err)
	return game.NewFromBoard(b)
}

func TestBuildInProgress(t *testing.T) {
	g := newGame(t, 2, 3, game.Pos{Row: 0, Col: 0})
	g.Reveal(0, 2)
	g.ToggleFlag(0, 0)

	got := Build(g)
	want := GameView{
		Rows: 2,
		Cols: 3,
		Cells: [][]CellView{
			{{State: StateFlagged}, {State: StateOpened, Count: 1}, {State: StateOpened}},
			{{State: StateHidden}, {State: StateOpened, Count: 1}, {State: StateOpened}},
		},
		MinesRemaining: 0,
		State:          "in_progress",
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildLostDisclosesMines(t *testing.T) {
	g := newGame(t, 2, 2, game.Pos{Row: 0, Col: 0}, game.Pos{Row: 1, Col: 1})
	g.Reveal(1, 1)

	got := Build(g)
	assert.True(t, got.IsGameOver)
	assert.False(t, got.IsGameClear)
	assert.Equal(t, "lost", got.State)
	assert.Equal(t, CellView{State: StateOpened, IsMine: true}, got.Cells[0][0])
	assert.Equal(t, CellView{State: StateOpened, IsMine: true}, got.Cells[1][1])
	assert.Equal(t, CellView{State: StateHidden}, got.Cells[0][1])
}

func TestBuildWonFlagsMines(t *testing.T) {
	g := newGame(t, 2, 2, game.Pos{Row: 1, Col: 0})
	g.Reveal(0, 0)
	g.Reveal(0, 1)
	g.Reveal(1, 1)

	got := Build(g)
	assert.True(t, got.IsGameClear)
	assert.False(t, got.IsGameOver)
	assert.Equal(t, 0, got.MinesRemaining)
	assert.Equal(t, CellView{State: StateFlagged}, got.Cells[1][0])
}

func TestNewGameViewJSON(t *testing.T) {
	assert.Equal(t, "{}", NewGameView(nil))

	g := newGame(t, 1, 2, game.Pos{Row: 0, Col: 1})
	var decoded map[string]any
	require.NoError(t, json.Unmarshal([]byte(NewGameView(g)), &decoded))
	assert.Equal(t, "ready", decoded["state"])
	assert.EqualValues(t, 1, decoded["mines_remaining"])
	assert.Len(t, decoded["cells"], 1)
}

func TestRenderText(t *testing.T) {
	g := newGame(t, 2, 3, game.Pos{Row: 0, Col: 0})
	g.ToggleFlag(1, 0)
	g.Reveal(0, 2)

	want := "" +
		"   0 1 2\n" +
		"0  ■ 1  \n" +
		"1  ⚑ 1  \n"
	assert.Equal(t, want, RenderText(g))

	g.Reveal(0, 0)
	assert.Equal(t, ""+
		"   0 1 2\n"+
		"0  * 1  \n"+
		"1  ⚑ 1  \n", RenderText(g))
}

func TestRenderTextPadsWideBoards(t *testing.T) {
	g := newGame(t, 1, 12, game.Pos{Row: 0, Col: 11})

	lines := strings.Split(strings.TrimSuffix(RenderText(g), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Equal(t, "    0  1  2  3  4  5  6  7  8  9 10 11", lines[0])
	assert.Equal(t, utf8.RuneCountInString(lines[0]), utf8.RuneCountInString(lines[1]), "header and row align")
}
