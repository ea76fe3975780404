// Package sim plays games with the solver and collects results.
package sim

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"

	"github.com/charmbracelet/log"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/solver"
)

var ErrNoGames = errors.New("game count must be positive")

type Options struct {
	Games  int
	Config game.Config
	Seed   int64 // 0 = random
}

// Result describes one finished game.
type Result struct {
	Game     int
	State    game.State
	Moves    int
	Guesses  int
	Revealed int
}

type Summary struct {
	Games   int
	Wins    int
	Losses  int
	Guesses int
}

// WinRate returns the fraction of games won.
func (s Summary) WinRate() float64 {
	if s.Games == 0 {
		return 0
	}
	return float64(s.Wins) / float64(s.Games)
}

// Run plays opts.Games games and calls onResult after each one. It stops
// early when ctx is cancelled or onResult fails.
func Run(ctx context.Context, opts Options, logger *log.Logger, onResult func(Result) error) (Summary, error) {
	if opts.Games <= 0 {
		return Summary{}, ErrNoGames
	}

	gen := game.NewGenerator(opts.Seed)
	// Derived so that a fixed seed also fixes the solver's guesses.
	rng := rand.New(rand.NewSource(opts.Seed ^ 0x5eed))
	if opts.Seed == 0 {
		rng = nil
	}

	var sum Summary
	for i := 0; i < opts.Games; i++ {
		if err := ctx.Err(); err != nil {
			return sum, err
		}

		res := Play(game.New(opts.Config, gen), rng)
		res.Game = i + 1

		sum.Games++
		sum.Guesses += res.Guesses
		if res.State == game.Won {
			sum.Wins++
		} else {
			sum.Losses++
		}
		logger.Debug("game finished", "game", res.Game, "state", res.State, "moves", res.Moves, "guesses", res.Guesses)

		if onResult != nil {
			if err := onResult(res); err != nil {
				return sum, err
			}
		}
	}

	logger.Info("simulation done",
		"config", opts.Config.String(),
		"games", sum.Games,
		"wins", sum.Wins,
		"win_rate", fmt.Sprintf("%.1f%%", sum.WinRate()*100),
	)
	return sum, nil
}

// Play lets the solver drive g until it ends.
func Play(g *game.Game, rng *rand.Rand) Result {
	bot := solver.New(g, rng)
	var res Result

	for !g.State().Terminal() {
		move := bot.NextMove()
		if move == nil {
			break
		}
		res.Moves++
		if move.IsGuess {
			res.Guesses++
		}

		switch move.Type {
		case solver.MoveOpen:
			g.Reveal(move.Row, move.Col)
		case solver.MoveFlag:
			g.ToggleFlag(move.Row, move.Col)
		}
	}

	res.State = g.State()
	res.Revealed = g.RevealedCount()
	return res
}

// CSVWriter writes one row per Result.
type CSVWriter struct {
	w *csv.Writer
}

func NewCSVWriter(w io.Writer) (*CSVWriter, error) {
	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"game", "state", "moves", "guesses", "revealed"}); err != nil {
		return nil, err
	}
	return &CSVWriter{w: cw}, nil
}

func (c *CSVWriter) Write(r Result) error {
	return c.w.Write([]string{
		strconv.Itoa(r.Game),
		r.State.String(),
		strconv.Itoa(r.Moves),
		strconv.Itoa(r.Guesses),
		strconv.Itoa(r.Revealed),
	})
}

// Flush writes buffered rows and reports any write error.
func (c *CSVWriter) Flush() error {
	c.w.Flush()
	return c.w.Error()
}
