package viewmodel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ne241099c/minesweeper/game"
)

// Glyphs used by text front ends.
const (
	GlyphHidden = "■"
	GlyphFlag   = "⚑"
	GlyphEmpty  = " "
	GlyphMine   = "*"
)

const cellSeparator = " "

// Glyph returns the text symbol for a cell.
func Glyph(v game.CellView) string {
	switch v.Kind {
	case game.FlaggedCell:
		return GlyphFlag
	case game.RevealedMine:
		return GlyphMine
	case game.RevealedNumber:
		if v.Count == 0 {
			return GlyphEmpty
		}
		return strconv.Itoa(v.Count)
	default:
		return GlyphHidden
	}
}

// RenderText draws the board with row and column numbers. Each cell is
// padded to the width of the widest column index.
func RenderText(g game.BoardView) string {
	rows, cols := g.Rows(), g.Cols()
	cw := len(strconv.Itoa(cols - 1))
	rw := len(strconv.Itoa(rows - 1))

	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", rw+1))
	for c := 0; c < cols; c++ {
		fmt.Fprintf(&sb, "%s%*d", cellSeparator, cw, c)
	}
	sb.WriteByte('\n')

	for r := 0; r < rows; r++ {
		fmt.Fprintf(&sb, "%*d ", rw, r)
		for c := 0; c < cols; c++ {
			v, _ := g.CellView(r, c)
			sb.WriteString(cellSeparator)
			sb.WriteString(strings.Repeat(" ", cw-1))
			sb.WriteString(Glyph(v))
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
