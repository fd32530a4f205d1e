package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "smarttest",
	Short: "Algorithmic puzzle quizzes in your terminal",
	Long:  "SmartTest — interactive quizzes on classic algorithmic puzzles: N-Queens, Tower of Hanoi, graph coloring, Knight's Tour, and minimax.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().Int64("seed", 0, "Random seed for question generation (0 = time-based)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(versionCmd)
}
