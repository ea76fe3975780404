// Package console is a line-oriented front end: it prints the board and
// reads "row col" commands until the game ends.
package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/viewmodel"
)

// ErrQuit is returned when the player leaves before the game ends.
var ErrQuit = errors.New("player quit")

var errUsage = errors.New(`enter "row col" to reveal, "f row col" to flag, or "q" to quit`)

type action int

const (
	actionReveal action = iota
	actionFlag
	actionQuit
)

type command struct {
	action   action
	row, col int
}

// parseCommand turns one input line into a command. Coordinates are only
// checked for being integers; range checks are left to the engine.
func parseCommand(line string) (command, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return command{}, errUsage
	}

	cmd := command{action: actionReveal}
	switch strings.ToLower(fields[0]) {
	case "q", "quit", "exit":
		return command{action: actionQuit}, nil
	case "f", "flag":
		cmd.action = actionFlag
		fields = fields[1:]
	case "r", "reveal":
		fields = fields[1:]
	}

	if len(fields) != 2 {
		return command{}, errUsage
	}
	row, err := strconv.Atoi(fields[0])
	if err != nil {
		return command{}, fmt.Errorf("row %q is not a number: %w", fields[0], errUsage)
	}
	col, err := strconv.Atoi(fields[1])
	if err != nil {
		return command{}, fmt.Errorf("column %q is not a number: %w", fields[1], errUsage)
	}
	cmd.row, cmd.col = row, col
	return cmd, nil
}

// Session plays one game over a reader and writer.
type Session struct {
	Game   *game.Game
	In     io.Reader
	Out    io.Writer
	Logger *log.Logger
	Now    func() time.Time
}

// Run prompts until the game reaches a terminal state. It returns ErrQuit
// if the player quits and io.ErrUnexpectedEOF if input ends first.
func (s *Session) Run() error {
	now := s.Now
	if now == nil {
		now = time.Now
	}
	var started time.Time

	scanner := bufio.NewScanner(s.In)
	for !s.Game.State().Terminal() {
		fmt.Fprint(s.Out, viewmodel.RenderText(s.Game))
		fmt.Fprintf(s.Out, "Mines left: %d\n> ", s.Game.RemainingMines())

		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			return io.ErrUnexpectedEOF
		}

		cmd, err := parseCommand(scanner.Text())
		if err != nil {
			fmt.Fprintln(s.Out, err)
			continue
		}

		switch cmd.action {
		case actionQuit:
			return ErrQuit
		case actionFlag:
			if s.Game.ToggleFlag(cmd.row, cmd.col) == game.FlagNoOp {
				fmt.Fprintln(s.Out, "Cannot flag that cell.")
			}
		case actionReveal:
			at := now()
			res := s.Game.Reveal(cmd.row, cmd.col)
			if res.Outcome == game.NoOp {
				fmt.Fprintf(s.Out, "Nothing to reveal at %d %d.\n", cmd.row, cmd.col)
				continue
			}
			if started.IsZero() {
				started = at
			}
			s.Logger.Debug("reveal", "row", cmd.row, "col", cmd.col, "outcome", res.Outcome, "opened", len(res.Cells))
		}
	}

	elapsed := 0
	if !started.IsZero() {
		elapsed = int(now().Sub(started).Seconds())
	}
	fmt.Fprint(s.Out, viewmodel.RenderText(s.Game))
	if s.Game.State() == game.Won {
		fmt.Fprintf(s.Out, "You cleared the board in %d seconds!\n", elapsed)
	} else {
		fmt.Fprintln(s.Out, "Boom! You stepped on a mine.")
	}
	s.Logger.Info("game over", "state", s.Game.State(), "seconds", elapsed)
	return nil
}
