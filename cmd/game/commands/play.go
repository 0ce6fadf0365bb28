package commands

import (
	"io"
	"math/rand/v2"
	"time"

	"worldsporta/cmd/game/tui"
	"worldsporta/internal/game"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var seed uint64

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a round of the reflex game",
	RunE: func(cmd *cobra.Command, args []string) error {
		if !verbose {
			logrus.SetOutput(io.Discard) // Keep log lines off the game board
		}
		if seed == 0 {
			seed = uint64(time.Now().UnixNano())
		}
		session := game.NewSession(game.WithManualTicks(), game.WithRand(rand.New(rand.NewPCG(seed, seed>>1))))
		defer session.Close()

		final, err := tea.NewProgram(tui.NewModel(session), tea.WithAltScreen()).Run()
		if err != nil {
			return errors.Wrap(err, "run game")
		}
		if m, ok := final.(tui.Model); ok {
			cmd.Println(m.Summary())
		}
		return nil
	},
}

func init() {
	playCmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for target placement (0 picks one from the clock)")
	rootCmd.AddCommand(playCmd)
}
