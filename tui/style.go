package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/viewmodel"
)

var (
	baseCell = lipgloss.NewStyle().PaddingLeft(1).PaddingRight(1)

	hiddenStyle   = baseCell.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("250"))
	revealedStyle = baseCell.Background(lipgloss.Color("236"))
	flagStyle     = baseCell.Background(lipgloss.Color("240")).Foreground(lipgloss.Color("196")).Bold(true)
	mineStyle     = baseCell.Background(lipgloss.Color("160")).Foreground(lipgloss.Color("15")).Bold(true)

	cursorBackground = lipgloss.Color("34")
	hintBackground   = lipgloss.Color("25")

	// numberColors is indexed by neighbour count.
	numberColors = []lipgloss.Color{
		"", "33", "34", "196", "21", "124", "37", "15", "245",
	}

	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	infoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Margin(1, 0, 0, 0)
	wonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	lostStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196"))
	statusStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
)

// renderCell styles one cell. The cursor takes precedence over a hint.
func renderCell(v game.CellView, isCursor, isHint bool) string {
	var s lipgloss.Style
	switch v.Kind {
	case game.FlaggedCell:
		s = flagStyle
	case game.RevealedMine:
		s = mineStyle
	case game.RevealedNumber:
		s = revealedStyle
		if v.Count > 0 && v.Count < len(numberColors) {
			s = s.Foreground(numberColors[v.Count]).Bold(true)
		}
	default:
		s = hiddenStyle
	}

	switch {
	case isCursor:
		s = s.Background(cursorBackground)
	case isHint:
		s = s.Background(hintBackground)
	}
	return s.Render(viewmodel.Glyph(v))
}
