//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/solver"
	"github.com/ne241099c/minesweeper/viewmodel"
)

// GameSession holds the single game shown in the page.
type GameSession struct {
	gen   *game.Generator
	board *game.Game
}

var session = &GameSession{gen: game.NewGenerator(0)}

// NewGame starts a game. Invalid sizes fall back to the default difficulty.
func (s *GameSession) NewGame(rows, cols, mineCount int) string {
	cfg, err := game.NewConfig(rows, cols, mineCount)
	if err != nil {
		println("invalid configuration:", err.Error())
		cfg, _ = game.PresetByName(game.DefaultPreset)
	}
	s.board = game.New(cfg, s.gen)
	return viewmodel.NewGameView(s.board)
}

// Open reveals a cell.
func (s *GameSession) Open(row, col int) string {
	if s.board == nil {
		return ""
	}
	s.board.Reveal(row, col)
	return viewmodel.NewGameView(s.board)
}

// ToggleFlag flips a flag.
func (s *GameSession) ToggleFlag(row, col int) string {
	if s.board == nil {
		return ""
	}
	s.board.ToggleFlag(row, col)
	return viewmodel.NewGameView(s.board)
}

// BotStep lets the solver play one move.
func (s *GameSession) BotStep() string {
	if s.board == nil || s.board.State().Terminal() {
		return ""
	}

	move := solver.New(s.board, nil).NextMove()
	if move == nil {
		return viewmodel.NewGameView(s.board)
	}

	switch move.Type {
	case solver.MoveOpen:
		s.board.Reveal(move.Row, move.Col)
	case solver.MoveFlag:
		s.board.ToggleFlag(move.Row, move.Col)
	}

	return viewmodel.NewGameView(s.board)
}

// goNewGame(rows, cols, mines); defaults to the easy preset.
func newGameWrapper(this js.Value, args []js.Value) interface{} {
	cfg, _ := game.PresetByName(game.DefaultPreset)
	r, c, m := cfg.Rows, cfg.Cols, cfg.Mines

	if len(args) >= 3 {
		r = args[0].Int()
		c = args[1].Int()
		m = args[2].Int()
	}

	return session.NewGame(r, c, m)
}

// goOpenCell(row, col)
func openCellWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return session.Open(args[0].Int(), args[1].Int())
}

// goToggleFlag(row, col)
func toggleFlagWrapper(this js.Value, args []js.Value) interface{} {
	if len(args) < 2 {
		return nil
	}
	return session.ToggleFlag(args[0].Int(), args[1].Int())
}

func botStepWrapper(this js.Value, args []js.Value) interface{} {
	return session.BotStep()
}

func main() {
	c := make(chan struct{})

	js.Global().Set("goNewGame", js.FuncOf(newGameWrapper))
	js.Global().Set("goOpenCell", js.FuncOf(openCellWrapper))
	js.Global().Set("goToggleFlag", js.FuncOf(toggleFlagWrapper))
	js.Global().Set("goBotStep", js.FuncOf(botStepWrapper))

	println("Go WebAssembly initialized")
	<-c
}
