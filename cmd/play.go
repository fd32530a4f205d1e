package cmd

import (
	"math/rand"
	"time"

	"github.com/spf13/cobra"

	"github.com/SmauRobert/SmartTest/internal/app"
	"github.com/SmauRobert/SmartTest/internal/controller"
	"github.com/SmauRobert/SmartTest/internal/eval"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

// runApp builds the grading engine and controller and launches the TUI.
func runApp(cmd *cobra.Command) error {
	seed, _ := cmd.Flags().GetInt64("seed")
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	engine := eval.NewEngine(eval.DefaultConfig())
	ctrl := controller.New(engine, rng)
	return app.Run(ctrl)
}
