package solver

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ne241099c/minesweeper/game"
)

func fixture(t *testing.T, rows, cols int, mines ...game.Pos) (*game.Game, *game.Board) {
	t.Helper()
	cfg, err := game.NewConfig(rows, cols, len(mines))
	require.NoError(t, err)
	b, err := game.NewBoardWithMines(cfg, mines)
	require.NoError(t, err)
	return game.NewFromBoard(b), b
}

func TestSafeMoveAfterFlag(t *testing.T) {
	g, _ := fixture(t, 3, 3, game.Pos{Row: 0, Col: 0})
	g.Reveal(1, 1)
	g.ToggleFlag(0, 0)

	move := New(g, rand.New(rand.NewSource(1))).NextMove()
	require.NotNil(t, move)
	assert.Equal(t, Move{Row: 0, Col: 1, Type: MoveOpen, Strategy: StrategyLogic, Confidence: 1.0}, *move)
}

func TestFlagMove(t *testing.T) {
	g, _ := fixture(t, 1, 2, game.Pos{Row: 0, Col: 1})
	g.Reveal(0, 0)

	move := New(g, nil).NextMove()
	require.NotNil(t, move)
	assert.Equal(t, MoveFlag, move.Type)
	assert.Equal(t, game.Pos{Row: 0, Col: 1}, game.Pos{Row: move.Row, Col: move.Col})
	assert.False(t, move.IsGuess)
}

func TestTankSolvesOneTwoOne(t *testing.T) {
	// * . *
	// 1 2 1
	g, b := fixture(t, 2, 3, game.Pos{Row: 0, Col: 0}, game.Pos{Row: 0, Col: 2})
	for c := 0; c < 3; c++ {
		require.Len(t, g.Reveal(1, c).Cells, 1)
	}

	s := New(g, rand.New(rand.NewSource(1)))
	require.Nil(t, s.findSafeMove())
	require.Nil(t, s.findFlagMove())

	move := s.NextMove()
	require.NotNil(t, move)
	assert.Equal(t, StrategyTank, move.Strategy)
	assert.Equal(t, 1.0, move.Confidence)
	assert.False(t, move.IsGuess)

	isMine := b.Cells[move.Row][move.Col].IsMine
	if move.Type == MoveFlag {
		assert.True(t, isMine)
	} else {
		assert.False(t, isMine)
	}
}

func TestRandomMoveOnUntouchedBoard(t *testing.T) {
	g, _ := fixture(t, 2, 2, game.Pos{Row: 0, Col: 0})

	move := New(g, rand.New(rand.NewSource(3))).NextMove()
	require.NotNil(t, move)
	assert.True(t, move.IsGuess)
	assert.Equal(t, StrategyRandom, move.Strategy)
	assert.Equal(t, MoveOpen, move.Type)
	assert.InDelta(t, 0.75, move.Confidence, 1e-9)
}

func TestCertainMovesAreAlwaysRight(t *testing.T) {
	cfg, err := game.NewConfig(9, 9, 10)
	require.NoError(t, err)

	wins := 0
	for seed := int64(1); seed <= 40; seed++ {
		b := game.Generate(cfg, rand.New(rand.NewSource(seed)))
		g := game.NewFromBoard(b)
		s := New(g, rand.New(rand.NewSource(seed)))

		for steps := 0; !g.State().Terminal(); steps++ {
			require.Less(t, steps, 2*cfg.Cells(), "seed %d did not finish", seed)
			move := s.NextMove()
			require.NotNil(t, move, "seed %d", seed)

			v, _ := g.CellView(move.Row, move.Col)
			require.Equal(t, game.Hidden, v.Kind, "seed %d proposed a visible cell", seed)

			isMine := b.Cells[move.Row][move.Col].IsMine
			if !move.IsGuess {
				if move.Type == MoveFlag {
					assert.True(t, isMine, "seed %d: certain flag on safe cell %+v", seed, move)
				} else {
					assert.False(t, isMine, "seed %d: certain open on mine %+v", seed, move)
				}
			}

			switch move.Type {
			case MoveOpen:
				g.Reveal(move.Row, move.Col)
			case MoveFlag:
				g.ToggleFlag(move.Row, move.Col)
			}
		}
		if g.State() == game.Won {
			wins++
		}
	}
	assert.Positive(t, wins, "solver should win some beginner games")
}
