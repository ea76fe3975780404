package solver

import (
	"math/rand"
	"time"

	"github.com/ne241099c/minesweeper/game"
)

type MoveType int

const (
	MoveOpen MoveType = iota
	MoveFlag
)

func (t MoveType) String() string {
	if t == MoveFlag {
		return "flag"
	}
	return "open"
}

// Strategy names reported on a Move.
const (
	StrategyLogic    = "Logic"
	StrategyTank     = "Tank"
	StrategyTankProb = "Tank(Prob)"
	StrategyRandom   = "Random"
)

type Move struct {
	Row, Col   int
	Type       MoveType
	IsGuess    bool    // no certain move was available
	Strategy   string  // one of the Strategy constants
	Confidence float64 // probability the move is correct, 0.0 ~ 1.0
}

// Solver proposes moves from what a player can see. It never inspects
// hidden mine positions.
type Solver struct {
	Board game.BoardView
	rng   *rand.Rand
}

// New creates a solver. A nil rng falls back to a time-seeded source.
func New(b game.BoardView, rng *rand.Rand) *Solver {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Solver{Board: b, rng: rng}
}

// NextMove returns the best move found, or nil when no hidden cell is left.
func (s *Solver) NextMove() *Move {
	// 1. a cell that is certainly safe
	if move := s.findSafeMove(); move != nil {
		return move
	}

	// 2. a cell that is certainly a mine
	if move := s.findFlagMove(); move != nil {
		return move
	}

	// 3. enumerate frontier segments
	if move := NewTankSolver(s.Board).Solve(); move != nil {
		move.IsGuess = move.Confidence < 1.0
		return move
	}

	move := s.findRandomMove()
	if move != nil {
		move.IsGuess = true
	}
	return move
}

// findSafeMove looks for a number whose mines are all flagged and opens one
// of its remaining hidden neighbours.
func (s *Solver) findSafeMove() *Move {
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			count, ok := s.revealedCount(r, c)
			if !ok || count == 0 {
				continue
			}
			_, flags, hidden := neighborsInfo(s.Board, r, c)
			if flags == count && len(hidden) > 0 {
				target := hidden[0]
				return &Move{Row: target.Row, Col: target.Col, Type: MoveOpen, Strategy: StrategyLogic, Confidence: 1.0}
			}
		}
	}
	return nil
}

// findFlagMove looks for a number whose unrevealed neighbours must all be
// mines and flags one that is not yet flagged.
func (s *Solver) findFlagMove() *Move {
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			count, ok := s.revealedCount(r, c)
			if !ok || count == 0 {
				continue
			}
			unrevealed, _, hidden := neighborsInfo(s.Board, r, c)
			if unrevealed == count && len(hidden) > 0 {
				target := hidden[0]
				return &Move{Row: target.Row, Col: target.Col, Type: MoveFlag, Strategy: StrategyLogic, Confidence: 1.0}
			}
		}
	}
	return nil
}

func (s *Solver) findRandomMove() *Move {
	var candidates []game.Pos
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			if v, _ := s.Board.CellView(r, c); v.Kind == game.Hidden {
				candidates = append(candidates, game.Pos{Row: r, Col: c})
			}
		}
	}

	if len(candidates) == 0 {
		return nil
	}
	choice := candidates[s.rng.Intn(len(candidates))]
	return &Move{
		Row: choice.Row, Col: choice.Col,
		Type:       MoveOpen,
		Strategy:   StrategyRandom,
		Confidence: s.density(len(candidates)),
	}
}

// density estimates the chance a random hidden cell is safe from the
// unflagged mine count.
func (s *Solver) density(hidden int) float64 {
	flags := 0
	for r := 0; r < s.Board.Rows(); r++ {
		for c := 0; c < s.Board.Cols(); c++ {
			if v, _ := s.Board.CellView(r, c); v.Kind == game.FlaggedCell {
				flags++
			}
		}
	}
	mines := s.Board.MineCount() - flags
	if mines < 0 {
		mines = 0
	}
	if mines > hidden {
		mines = hidden
	}
	return 1.0 - float64(mines)/float64(hidden)
}

// revealedCount returns the number shown at (r, c) if it is a revealed
// safe cell.
func (s *Solver) revealedCount(r, c int) (int, bool) {
	v, ok := s.Board.CellView(r, c)
	if !ok || v.Kind != game.RevealedNumber {
		return 0, false
	}
	return v.Count, true
}

// neighborsInfo counts the unrevealed neighbours of (r, c), how many of them
// are flagged, and lists the unflagged ones.
func neighborsInfo(b game.BoardView, r, c int) (unrevealed int, flags int, hidden []game.Pos) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			v, ok := b.CellView(r+dr, c+dc)
			if !ok {
				continue
			}
			switch v.Kind {
			case game.FlaggedCell:
				unrevealed++
				flags++
			case game.Hidden:
				unrevealed++
				hidden = append(hidden, game.Pos{Row: r + dr, Col: c + dc})
			}
		}
	}
	return
}
