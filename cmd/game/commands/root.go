package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "worldsporta-game",
	Short: "WorldSporta reflex arena in your terminal",
	Long: `The WorldSporta reflex mini-game, played in the terminal.

A target key jumps around the board. Press it before it moves on:
every hit scores 10 points and the clock gives you 15 seconds.`,
	Version: "1.0.0",
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log game events to stderr")
}
