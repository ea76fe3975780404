package game

import (
	"fmt"
	"math/rand"
	"time"
)

// Generator places mines from its own random source. A fixed seed yields
// the same sequence of boards.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator creates a Generator. A seed of 0 uses the current time.
func NewGenerator(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// Generate returns a fresh board for cfg.
func (g *Generator) Generate(cfg Config) *Board {
	return Generate(cfg, g.rng)
}

// Generate builds a board for cfg, drawing mine positions from rng.
// cfg must come from NewConfig.
func Generate(cfg Config, rng *rand.Rand) *Board {
	b := newEmptyBoard(cfg)
	b.placeMines(rng)
	b.calculateNeighbors()
	return b
}

// NewBoardWithMines builds a board with mines at exactly the given positions.
func NewBoardWithMines(cfg Config, mines []Pos) (*Board, error) {
	if _, err := NewConfig(cfg.Rows, cfg.Cols, cfg.Mines); err != nil {
		return nil, err
	}
	if len(mines) != cfg.Mines {
		return nil, fmt.Errorf("%w: expected %d mines, got %d", ErrInvalidConfiguration, cfg.Mines, len(mines))
	}

	b := newEmptyBoard(cfg)
	for _, p := range mines {
		if !b.InBounds(p.Row, p.Col) {
			return nil, fmt.Errorf("%w: mine at (%d,%d) is off the board", ErrInvalidConfiguration, p.Row, p.Col)
		}
		if b.Cells[p.Row][p.Col].IsMine {
			return nil, fmt.Errorf("%w: duplicate mine at (%d,%d)", ErrInvalidConfiguration, p.Row, p.Col)
		}
		b.Cells[p.Row][p.Col].IsMine = true
	}
	b.calculateNeighbors()
	return b, nil
}

func newEmptyBoard(cfg Config) *Board {
	cells := make([][]Cell, cfg.Rows)
	for r := range cells {
		cells[r] = make([]Cell, cfg.Cols)
	}
	return &Board{
		Rows:      cfg.Rows,
		Cols:      cfg.Cols,
		MineCount: cfg.Mines,
		Cells:     cells,
	}
}

// placeMines draws random coordinates and rejects repeats until MineCount
// distinct cells hold a mine.
func (b *Board) placeMines(rng *rand.Rand) {
	placed := 0
	for placed < b.MineCount {
		r := rng.Intn(b.Rows)
		c := rng.Intn(b.Cols)
		if !b.Cells[r][c].IsMine {
			b.Cells[r][c].IsMine = true
			placed++
		}
	}
}

// calculateNeighbors fills NeighborCount for every non-mine cell.
func (b *Board) calculateNeighbors() {
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			if b.Cells[r][c].IsMine {
				continue
			}
			count := 0
			b.around(r, c, func(nr, nc int) {
				if b.Cells[nr][nc].IsMine {
					count++
				}
			})
			b.Cells[r][c].NeighborCount = count
		}
	}
}

// InBounds reports whether (row, col) lies on the board.
func (b *Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows && col >= 0 && col < b.Cols
}

// around calls fn for each in-bounds neighbour of (row, col).
func (b *Board) around(row, col int, fn func(nr, nc int)) {
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr, nc := row+dr, col+dc
			if b.InBounds(nr, nc) {
				fn(nr, nc)
			}
		}
	}
}

// Config returns the dimensions the board was built with.
func (b *Board) Config() Config {
	return Config{Rows: b.Rows, Cols: b.Cols, Mines: b.MineCount}
}

// RevealedCount returns the number of revealed non-mine cells.
func (b *Board) RevealedCount() int {
	return b.revealedSafe
}

// FlagCount returns the number of flagged cells.
func (b *Board) FlagCount() int {
	return b.flags
}

// RemainingMines is the mine count minus placed flags. It goes negative
// when the player over-flags.
func (b *Board) RemainingMines() int {
	return b.MineCount - b.flags
}

// CheckClear reports whether every non-mine cell is revealed.
func (b *Board) CheckClear() bool {
	return b.revealedSafe == b.Rows*b.Cols-b.MineCount
}

// CellView returns the player-visible state of a cell.
func (b *Board) CellView(row, col int) (CellView, bool) {
	if !b.InBounds(row, col) {
		return CellView{}, false
	}
	cell := b.Cells[row][col]
	switch {
	case cell.IsRevealed && cell.IsMine:
		return CellView{Kind: RevealedMine}, true
	case cell.IsRevealed:
		return CellView{Kind: RevealedNumber, Count: cell.NeighborCount}, true
	case cell.IsFlagged:
		return CellView{Kind: FlaggedCell}, true
	default:
		return CellView{Kind: Hidden}, true
	}
}
