package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ne241099c/minesweeper/game"
	"github.com/ne241099c/minesweeper/gui"
)

var guiCmd = &cobra.Command{
	Use:   "gui",
	Short: "Play in a desktop window",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, logger, closeLog, err := setup(cmd, os.Stderr)
		if err != nil {
			return err
		}
		defer closeLog()

		return gui.Run(cfg, game.NewGenerator(seed), solverRand(), logger)
	},
}

func init() {
	rootCmd.AddCommand(guiCmd)
}
