package viewmodel

import (
	"encoding/json"

	"github.com/ne241099c/minesweeper/game"
)

// Cell states as sent to JavaScript clients.
const (
	StateHidden  = "hidden"
	StateFlagged = "flagged"
	StateOpened  = "opened"
)

type CellView struct {
	State  string `json:"state"`
	Count  int    `json:"count"`
	IsMine bool   `json:"is_mine"`
}

type GameView struct {
	Rows           int          `json:"rows"`
	Cols           int          `json:"cols"`
	Cells          [][]CellView `json:"cells"`
	MinesRemaining int          `json:"mines_remaining"`
	State          string       `json:"state"`
	IsGameOver     bool         `json:"is_game_over"`
	IsGameClear    bool         `json:"is_game_clear"`
}

// Build converts a session into its serialisable view. Once the game is
// won, the remaining hidden cells are all mines and are shown flagged.
func Build(g *game.Game) GameView {
	rows, cols := g.Rows(), g.Cols()
	state := g.State()
	isClear := state == game.Won

	grid := make([][]CellView, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]CellView, cols)
		for c := 0; c < cols; c++ {
			cv, _ := g.CellView(r, c)
			v := CellView{}

			switch cv.Kind {
			case game.RevealedMine:
				v.State = StateOpened
				v.IsMine = true
			case game.RevealedNumber:
				v.State = StateOpened
				v.Count = cv.Count
			case game.FlaggedCell:
				v.State = StateFlagged
			default:
				v.State = StateHidden
				if isClear {
					v.State = StateFlagged
				}
			}
			grid[r][c] = v
		}
	}

	remaining := g.RemainingMines()
	if isClear {
		remaining = 0
	}

	return GameView{
		Rows:           rows,
		Cols:           cols,
		Cells:          grid,
		MinesRemaining: remaining,
		State:          state.String(),
		IsGameOver:     state == game.Lost,
		IsGameClear:    isClear,
	}
}

// NewGameView returns the session as JSON. A nil game yields "{}".
func NewGameView(g *game.Game) string {
	if g == nil {
		return "{}"
	}

	bytes, err := json.Marshal(Build(g))
	if err != nil {
		return "{}"
	}
	return string(bytes)
}
