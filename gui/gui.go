// Package gui is a desktop front end built on ebiten. Left click reveals,
// right click flags, N starts a new game and H asks the solver for a hint.
package gui

import (
	"fmt"
	"image/color"
	"math/rand"
	"strconv"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/solver"
)

const (
	cellSize       = 24
	outerPadding   = 12
	topPanelHeight = 40
)

var (
	colorBG       = rgb(192, 192, 192)
	colorHidden   = rgb(160, 160, 160)
	colorRevealed = rgb(214, 214, 214)
	colorGrid     = rgb(128, 128, 128)
	colorText     = rgb(15, 15, 15)
	colorMine     = rgb(10, 10, 10)
	colorExploded = rgb(210, 40, 40)
	colorFlag     = rgb(210, 32, 32)
	colorHint     = rgb(32, 128, 255)
)

var numberColors = []color.Color{
	color.RGBA{},
	rgb(25, 25, 220),
	rgb(0, 130, 0),
	rgb(210, 20, 20),
	rgb(0, 0, 135),
	rgb(130, 0, 0),
	rgb(0, 128, 128),
	rgb(0, 0, 0),
	rgb(110, 110, 110),
}

// Game implements ebiten.Game on top of a game session.
type Game struct {
	cfg    game.Config
	gen    *game.Generator
	rng    *rand.Rand
	logger *log.Logger
	face   font.Face

	session  *game.Game
	exploded *game.Pos
	hint     *solver.Move
	started  time.Time
	elapsed  time.Duration
}

func New(cfg game.Config, gen *game.Generator, rng *rand.Rand, logger *log.Logger) *Game {
	g := &Game{
		cfg:    cfg,
		gen:    gen,
		rng:    rng,
		logger: logger,
		face:   basicfont.Face7x13,
	}
	g.reset()
	return g
}

// Run opens the window and blocks until it is closed.
func Run(cfg game.Config, gen *game.Generator, rng *rand.Rand, logger *log.Logger) error {
	g := New(cfg, gen, rng, logger)
	w, h := g.Layout(0, 0)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Minesweeper %s", cfg))
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeDisabled)
	return ebiten.RunGame(g)
}

func (g *Game) reset() {
	g.session = game.New(g.cfg, g.gen)
	g.exploded = nil
	g.hint = nil
	g.started = time.Time{}
	g.elapsed = 0
	g.logger.Debug("new game", "config", g.cfg.String())
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.cfg.Cols*cellSize + outerPadding*2, topPanelHeight + g.cfg.Rows*cellSize + outerPadding*2
}

// cellAt maps a screen position to a board cell.
func (g *Game) cellAt(mx, my int) (game.Pos, bool) {
	x0, y0 := outerPadding, topPanelHeight+outerPadding
	if mx < x0 || my < y0 {
		return game.Pos{}, false
	}
	p := game.Pos{Row: (my - y0) / cellSize, Col: (mx - x0) / cellSize}
	if p.Row >= g.cfg.Rows || p.Col >= g.cfg.Cols {
		return game.Pos{}, false
	}
	return p, true
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		g.reset()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) && !g.session.State().Terminal() {
		g.hint = solver.New(g.session, g.rng).NextMove()
	}

	if g.session.State() == game.InProgress {
		g.elapsed = time.Since(g.started)
	}

	mx, my := ebiten.CursorPosition()
	p, ok := g.cellAt(mx, my)
	if !ok {
		return nil
	}

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		if g.session.State().Terminal() {
			g.reset()
			return nil
		}
		wasReady := g.session.State() == game.Ready
		res := g.session.Reveal(p.Row, p.Col)
		if res.Outcome == game.NoOp {
			return nil
		}
		g.hint = nil
		if wasReady {
			g.started = time.Now()
		}
		switch res.Outcome {
		case game.MineHit:
			g.exploded = &p
			g.elapsed = time.Since(g.started)
			g.logger.Info("game lost", "config", g.cfg.String())
		case game.SafeReveal:
			if g.session.State() == game.Won {
				g.elapsed = time.Since(g.started)
				g.logger.Info("game won", "config", g.cfg.String(), "seconds", int(g.elapsed.Seconds()))
			}
		}
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight):
		if g.session.ToggleFlag(p.Row, p.Col) != game.FlagNoOp {
			g.hint = nil
		}
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	status := fmt.Sprintf("Mines: %d  Time: %ds", g.session.RemainingMines(), int(g.elapsed.Seconds()))
	switch g.session.State() {
	case game.Won:
		status += "  You win! (click for new game)"
	case game.Lost:
		status += "  Boom! (click for new game)"
	}
	text.Draw(screen, status, g.face, outerPadding, outerPadding+14, colorText)

	for r := 0; r < g.cfg.Rows; r++ {
		for c := 0; c < g.cfg.Cols; c++ {
			g.drawCell(screen, r, c)
		}
	}
}

func (g *Game) drawCell(screen *ebiten.Image, r, c int) {
	px := float32(outerPadding + c*cellSize)
	py := float32(topPanelHeight + outerPadding + r*cellSize)
	v, _ := g.session.CellView(r, c)

	switch v.Kind {
	case game.RevealedNumber:
		vector.DrawFilledRect(screen, px, py, cellSize, cellSize, colorRevealed, false)
		if v.Count > 0 {
			text.Draw(screen, strconv.Itoa(v.Count), g.face, int(px)+9, int(py)+17, numberColors[v.Count])
		}
	case game.RevealedMine:
		bg := colorRevealed
		if g.exploded != nil && *g.exploded == (game.Pos{Row: r, Col: c}) {
			bg = colorExploded
		}
		vector.DrawFilledRect(screen, px, py, cellSize, cellSize, bg, false)
		vector.DrawFilledCircle(screen, px+cellSize/2, py+cellSize/2, 6, colorMine, false)
	case game.FlaggedCell:
		vector.DrawFilledRect(screen, px, py, cellSize, cellSize, colorHidden, false)
		vector.DrawFilledRect(screen, px+11, py+6, 2, 12, colorText, false)
		vector.DrawFilledRect(screen, px+6, py+6, 6, 5, colorFlag, false)
		vector.DrawFilledRect(screen, px+7, py+17, 9, 2, colorText, false)
	default:
		vector.DrawFilledRect(screen, px, py, cellSize, cellSize, colorHidden, false)
	}
	vector.StrokeRect(screen, px, py, cellSize, cellSize, 1, colorGrid, false)

	if g.hint != nil && g.hint.Row == r && g.hint.Col == c {
		vector.StrokeRect(screen, px+2, py+2, cellSize-4, cellSize-4, 2, colorHint, false)
	}
}

func rgb(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
