// Package tui is a terminal front end for the game engine built on
// bubbletea. It owns the cursor, the clock and hints; all board state
// lives in game.Game.
package tui

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/solver"
)

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

type Model struct {
	cfg    game.Config
	gen    *game.Generator
	rng    *rand.Rand
	logger *log.Logger
	now    func() time.Time

	game    *game.Game
	keys    KeyMap
	help    help.Model
	cursor  game.Pos
	hint    *solver.Move
	status  string
	started time.Time
	elapsed time.Duration
	ticking bool
}

// NewModel creates a model and starts the first game. rng drives the
// solver's random fallback when a hint is requested.
func NewModel(cfg game.Config, gen *game.Generator, rng *rand.Rand, logger *log.Logger) Model {
	m := Model{
		cfg:    cfg,
		gen:    gen,
		rng:    rng,
		logger: logger,
		now:    time.Now,
		keys:   Keys,
		help:   help.New(),
	}
	m.newGame()
	return m
}

func (m *Model) newGame() {
	m.game = game.New(m.cfg, m.gen)
	m.cursor = game.Pos{Row: m.cfg.Rows / 2, Col: m.cfg.Cols / 2}
	m.hint = nil
	m.status = ""
	m.started = time.Time{}
	m.elapsed = 0
	m.logger.Debug("new game", "config", m.cfg.String())
}

// Game exposes the current session.
func (m Model) Game() *game.Game {
	return m.game
}

// Elapsed is the time since the first reveal, frozen once the game ends.
func (m Model) Elapsed() time.Duration {
	return m.elapsed
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		if m.started.IsZero() || m.game.State().Terminal() {
			m.ticking = false
			return m, nil
		}
		m.elapsed = time.Time(msg).Sub(m.started)
		return m, tick()

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursor(-1, 0)
		case key.Matches(msg, m.keys.Down):
			m.moveCursor(1, 0)
		case key.Matches(msg, m.keys.Left):
			m.moveCursor(0, -1)
		case key.Matches(msg, m.keys.Right):
			m.moveCursor(0, 1)
		case key.Matches(msg, m.keys.New):
			m.newGame()
		case key.Matches(msg, m.keys.Flag):
			m.flag()
		case key.Matches(msg, m.keys.Hint):
			m.suggest()
		case key.Matches(msg, m.keys.Reveal):
			return m, m.reveal()
		}
	}
	return m, nil
}

func (m *Model) moveCursor(dr, dc int) {
	m.cursor.Row = clamp(m.cursor.Row+dr, 0, m.cfg.Rows-1)
	m.cursor.Col = clamp(m.cursor.Col+dc, 0, m.cfg.Cols-1)
}

// reveal opens the cell under the cursor and starts the clock on the first
// successful reveal.
func (m *Model) reveal() tea.Cmd {
	if m.game.State().Terminal() {
		m.newGame()
		return nil
	}

	wasReady := m.game.State() == game.Ready
	res := m.game.Reveal(m.cursor.Row, m.cursor.Col)
	if res.Outcome == game.NoOp {
		return nil
	}
	m.hint = nil
	m.logger.Debug("reveal", "row", m.cursor.Row, "col", m.cursor.Col, "outcome", res.Outcome, "opened", len(res.Cells))

	var cmd tea.Cmd
	if wasReady {
		m.started = m.now()
		if !m.ticking {
			m.ticking = true
			cmd = tick()
		}
	}

	switch m.game.State() {
	case game.Won:
		m.elapsed = m.now().Sub(m.started)
		m.status = fmt.Sprintf("You win! %d seconds", int(m.elapsed.Seconds()))
		m.logger.Info("game won", "config", m.cfg.String(), "seconds", int(m.elapsed.Seconds()))
	case game.Lost:
		m.elapsed = m.now().Sub(m.started)
		m.status = "Boom! You hit a mine"
		m.logger.Info("game lost", "config", m.cfg.String(), "revealed", m.game.RevealedCount())
	}
	return cmd
}

func (m *Model) flag() {
	out := m.game.ToggleFlag(m.cursor.Row, m.cursor.Col)
	if out != game.FlagNoOp {
		m.hint = nil
		m.logger.Debug("flag", "row", m.cursor.Row, "col", m.cursor.Col, "outcome", out)
	}
}

func (m *Model) suggest() {
	if m.game.State().Terminal() {
		return
	}
	move := solver.New(m.game, m.rng).NextMove()
	if move == nil {
		m.status = "No hint available"
		return
	}
	m.hint = move
	m.cursor = game.Pos{Row: move.Row, Col: move.Col}
	m.status = fmt.Sprintf("Hint: %s (%d,%d) via %s, %.0f%% sure", move.Type, move.Row, move.Col, move.Strategy, move.Confidence*100)
}

func (m Model) View() string {
	var sb strings.Builder

	sb.WriteString(titleStyle.Render("Minesweeper"))
	fmt.Fprintf(&sb, "  %s  Mines: %d  Time: %ds\n\n", m.cfg, m.game.RemainingMines(), int(m.elapsed.Seconds()))

	for r := 0; r < m.cfg.Rows; r++ {
		for c := 0; c < m.cfg.Cols; c++ {
			v, _ := m.game.CellView(r, c)
			isCursor := m.cursor == game.Pos{Row: r, Col: c}
			isHint := m.hint != nil && m.hint.Row == r && m.hint.Col == c
			sb.WriteString(renderCell(v, isCursor, isHint))
		}
		sb.WriteByte('\n')
	}

	switch m.game.State() {
	case game.Won:
		sb.WriteString(infoStyle.Render(wonStyle.Render(m.status) + "  press space for a new game"))
	case game.Lost:
		sb.WriteString(infoStyle.Render(lostStyle.Render(m.status) + "  press space for a new game"))
	default:
		sb.WriteString(infoStyle.Render(statusStyle.Render(m.status)))
	}
	sb.WriteString("\n")
	sb.WriteString(m.help.View(m.keys))
	sb.WriteString("\n")
	return sb.String()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
