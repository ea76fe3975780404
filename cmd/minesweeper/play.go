package main

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the full-screen terminal UI (default)",
	RunE:  runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	// The alternate screen owns the terminal, so logs are dropped unless
	// --log-file is set.
	cfg, logger, closeLog, err := setup(cmd, io.Discard)
	if err != nil {
		return err
	}
	defer closeLog()

	m := tui.NewModel(cfg, game.NewGenerator(seed), solverRand(), logger)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	return nil
}
