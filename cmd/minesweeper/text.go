package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/ne241099c/minesweeper/console"
	"github.com/ne241099c/minesweeper/game"
)

var textCmd = &cobra.Command{
	Use:   "text",
	Short: "Play with typed commands on stdin",
	Long: `Play one game using line commands:

  row col      reveal a cell
  f row col    toggle a flag
  q            quit`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closeLog, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		s := &console.Session{
			Game:   game.New(cfg, game.NewGenerator(seed)),
			In:     cmd.InOrStdin(),
			Out:    cmd.OutOrStdout(),
			Logger: logger,
		}
		if err := s.Run(); err != nil && !errors.Is(err, console.ErrQuit) {
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(textCmd)
}
