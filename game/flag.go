package game

// ToggleFlag flips the flag on a hidden cell. Revealed and out-of-range
// cells report FlagNoOp.
func (b *Board) ToggleFlag(row, col int) FlagOutcome {
	if !b.InBounds(row, col) {
		return FlagNoOp
	}
	cell := &b.Cells[row][col]
	if cell.IsRevealed {
		return FlagNoOp
	}

	cell.IsFlagged = !cell.IsFlagged
	if cell.IsFlagged {
		b.flags++
		return Flagged
	}
	b.flags--
	return Unflagged
}
