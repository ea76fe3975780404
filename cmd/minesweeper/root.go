package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ne241099c/minesweeper/game"
)

var (
	difficulty string
	rows       int
	cols       int
	mines      int
	seed       int64
	logLevel   string
	logFormat  string
	logFile    string
)

var rootCmd = &cobra.Command{
	Use:   "minesweeper",
	Short: "Play Minesweeper in the terminal",
	Long: `Minesweeper with a terminal UI, a plain text mode, a desktop window,
and a solver-driven simulator.

Examples:
  minesweeper --difficulty hard
  minesweeper text --rows 5 --cols 5 --mines 3
  minesweeper sim -n 500 --difficulty normal --seed 7`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runPlay,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&difficulty, "difficulty", "d", game.DefaultPreset, "Difficulty preset: "+presetNames())
	pf.IntVar(&rows, "rows", 0, "Board rows (overrides the preset)")
	pf.IntVar(&cols, "cols", 0, "Board columns (overrides the preset)")
	pf.IntVar(&mines, "mines", 0, "Mine count (overrides the preset)")
	pf.Int64Var(&seed, "seed", 0, "Random seed for reproducible boards (0 = random)")
	pf.StringVar(&logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	pf.StringVar(&logFormat, "log-format", "text", "Log format: text, json, logfmt")
	pf.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
}

func presetNames() string {
	var names []string
	for _, p := range game.Presets() {
		names = append(names, p.Name)
	}
	return strings.Join(names, ", ")
}

// resolveConfig starts from the named preset and applies any explicit
// size flags on top of it.
func resolveConfig(cmd *cobra.Command) (game.Config, error) {
	cfg, err := game.PresetByName(difficulty)
	if err != nil {
		return game.Config{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("rows") {
		cfg.Rows = rows
	}
	if flags.Changed("cols") {
		cfg.Cols = cols
	}
	if flags.Changed("mines") {
		cfg.Mines = mines
	}
	return game.NewConfig(cfg.Rows, cfg.Cols, cfg.Mines)
}

// newLogger builds a logger writing to out.
func newLogger(levelStr, formatStr string, out io.Writer) (*log.Logger, error) {
	level, err := log.ParseLevel(levelStr)
	if err != nil {
		return nil, fmt.Errorf("invalid log-level %q: %w", levelStr, err)
	}

	var formatter log.Formatter
	switch strings.ToLower(formatStr) {
	case "text":
		formatter = log.TextFormatter
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	default:
		return nil, fmt.Errorf("invalid log-format %q: must be text, json or logfmt", formatStr)
	}

	return log.NewWithOptions(out, log.Options{
		Level:           level,
		Formatter:       formatter,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "minesweeper",
	}), nil
}

// setup resolves flags shared by every subcommand. fallback is where logs
// go when --log-file is not set.
func setup(cmd *cobra.Command, fallback io.Writer) (game.Config, *log.Logger, func(), error) {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return game.Config{}, nil, nil, err
	}

	out, closeFn := fallback, func() {}
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return game.Config{}, nil, nil, fmt.Errorf("failed to open log file: %w", err)
		}
		out, closeFn = f, func() { f.Close() }
	}

	logger, err := newLogger(logLevel, logFormat, out)
	if err != nil {
		closeFn()
		return game.Config{}, nil, nil, err
	}
	logger.Debug("configuration resolved", "config", cfg.String(), "seed", seed)
	return cfg, logger, closeFn, nil
}

// solverRand returns the random source for solver guesses, tied to --seed
// when one is given.
func solverRand() *rand.Rand {
	if seed == 0 {
		return rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return rand.New(rand.NewSource(seed))
}
