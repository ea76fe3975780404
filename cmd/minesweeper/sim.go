package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ne241099c/minesweeper/sim"
)

var (
	simGames int
	simCSV   string
)

var simCmd = &cobra.Command{
	Use:   "sim",
	Short: "Let the solver play many games and report the win rate",
	RunE:  runSim,
}

func init() {
	simCmd.Flags().IntVarP(&simGames, "games", "n", 100, "Number of games to play")
	simCmd.Flags().StringVar(&simCSV, "csv", "", "Write per-game results to this CSV file")
	rootCmd.AddCommand(simCmd)
}

func runSim(cmd *cobra.Command, args []string) error {
	cfg, logger, closeLog, err := setup(cmd, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	var onResult func(sim.Result) error
	var csvOut *sim.CSVWriter
	if simCSV != "" {
		f, err := os.Create(simCSV)
		if err != nil {
			return fmt.Errorf("failed to create csv file: %w", err)
		}
		defer f.Close()

		csvOut, err = sim.NewCSVWriter(f)
		if err != nil {
			return err
		}
		onResult = csvOut.Write
	}

	opts := sim.Options{Games: simGames, Config: cfg, Seed: seed}
	sum, err := sim.Run(cmd.Context(), opts, logger, onResult)
	if csvOut != nil {
		if ferr := csvOut.Flush(); ferr != nil && err == nil {
			err = ferr
		}
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d/%d won (%.1f%%), %d guesses\n",
		cfg, sum.Wins, sum.Games, sum.WinRate()*100, sum.Guesses)
	return nil
}
