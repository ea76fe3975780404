package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidConfiguration = errors.New("invalid configuration")
	ErrUnknownPreset        = errors.New("unknown difficulty")
)

// Config describes the size and mine density of a board.
type Config struct {
	Rows  int
	Cols  int
	Mines int
}

// NewConfig validates the given dimensions and returns a Config.
func NewConfig(rows, cols, mines int) (Config, error) {
	if rows <= 0 || cols <= 0 {
		return Config{}, fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfiguration, rows, cols)
	}
	if mines <= 0 {
		return Config{}, fmt.Errorf("%w: mine count must be positive, got %d", ErrInvalidConfiguration, mines)
	}
	if mines >= rows*cols {
		return Config{}, fmt.Errorf("%w: %d mines do not fit a %dx%d board", ErrInvalidConfiguration, mines, rows, cols)
	}
	return Config{Rows: rows, Cols: cols, Mines: mines}, nil
}

// Cells returns the total number of cells.
func (c Config) Cells() int {
	return c.Rows * c.Cols
}

// SafeCells returns the number of cells without a mine.
func (c Config) SafeCells() int {
	return c.Rows*c.Cols - c.Mines
}

func (c Config) String() string {
	return fmt.Sprintf("%dx%d/%d", c.Rows, c.Cols, c.Mines)
}

// Preset is a named difficulty level.
type Preset struct {
	Name   string
	Config Config
}

// DefaultPreset is used when no difficulty is chosen.
const DefaultPreset = "easy"

// Presets returns the built-in difficulty levels, easiest first.
func Presets() []Preset {
	return []Preset{
		{Name: "easy", Config: Config{Rows: 8, Cols: 8, Mines: 10}},
		{Name: "normal", Config: Config{Rows: 12, Cols: 12, Mines: 20}},
		{Name: "hard", Config: Config{Rows: 16, Cols: 16, Mines: 40}},
	}
}

// PresetByName looks up a difficulty level, ignoring case.
func PresetByName(name string) (Config, error) {
	for _, p := range Presets() {
		if strings.EqualFold(p.Name, name) {
			return p.Config, nil
		}
	}
	return Config{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
}
