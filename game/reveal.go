package game

// Reveal opens the cell at (row, col).
//
// Out-of-range, flagged and already revealed cells are left untouched and
// report NoOp. A mine is revealed alone and reports MineHit. Any other cell
// is opened together with the region reachable through zero-count cells,
// stopping at the first numbered cell in each direction.
func (b *Board) Reveal(row, col int) RevealResult {
	if !b.InBounds(row, col) {
		return RevealResult{Outcome: NoOp}
	}

	cell := &b.Cells[row][col]
	if cell.IsRevealed || cell.IsFlagged {
		return RevealResult{Outcome: NoOp}
	}

	if cell.IsMine {
		cell.IsRevealed = true
		return RevealResult{Outcome: MineHit, Cells: []Pos{{Row: row, Col: col}}}
	}

	var opened []Pos
	stack := []Pos{{Row: row, Col: col}}
	for len(stack) > 0 {
		p := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		c := &b.Cells[p.Row][p.Col]
		// A cell may be pushed by several zero neighbours before it is popped.
		if c.IsRevealed || c.IsFlagged {
			continue
		}
		c.IsRevealed = true
		b.revealedSafe++
		opened = append(opened, p)

		if c.NeighborCount > 0 {
			continue
		}
		b.around(p.Row, p.Col, func(nr, nc int) {
			n := &b.Cells[nr][nc]
			if !n.IsRevealed && !n.IsFlagged && !n.IsMine {
				stack = append(stack, Pos{Row: nr, Col: nc})
			}
		})
	}

	return RevealResult{Outcome: SafeReveal, Cells: opened}
}

// RevealAllMines discloses every mine for end-of-game display and returns
// the mines that were not yet visible. A flag on a mine is removed so the
// cell can be shown as revealed. Calling it again returns nothing.
func (b *Board) RevealAllMines() []Pos {
	var disclosed []Pos
	for r := 0; r < b.Rows; r++ {
		for c := 0; c < b.Cols; c++ {
			cell := &b.Cells[r][c]
			if !cell.IsMine || cell.IsRevealed {
				continue
			}
			if cell.IsFlagged {
				cell.IsFlagged = false
				b.flags--
			}
			cell.IsRevealed = true
			disclosed = append(disclosed, Pos{Row: r, Col: c})
		}
	}
	return disclosed
}
