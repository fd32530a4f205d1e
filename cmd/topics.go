package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/SmauRobert/SmartTest/internal/quiz"
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List the available quiz topics",
	Run: func(cmd *cobra.Command, args []string) {
		for _, t := range quiz.AllTopics() {
			fmt.Printf("%-16s %s (%d question templates)\n", t, t.DisplayName(), len(quiz.Templates(t)))
		}
	},
}
