package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show battle statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer s.Close()

		ctx := context.Background()
		repo := s.EventRepo()

		stats, err := repo.BattleStatsByLanguage(ctx)
		if err != nil {
			return fmt.Errorf("query stats: %w", err)
		}

		if len(stats) == 0 {
			fmt.Println("No battles recorded yet.")
		} else {
			fmt.Printf("%-14s  %8s  %8s  %8s  %9s\n",
				"Language", "Rounds", "Correct", "Timeouts", "Accuracy")
			fmt.Println(strings.Repeat("─", 56))

			var totalRounds, totalCorrect, totalTimeouts int
			for _, st := range stats {
				fmt.Printf("%-14s  %8d  %8d  %8d  %8.0f%%\n",
					st.Language, st.Answers, st.Correct, st.Timeouts, st.Accuracy()*100)
				totalRounds += st.Answers
				totalCorrect += st.Correct
				totalTimeouts += st.Timeouts
			}

			fmt.Println(strings.Repeat("─", 56))
			var totalAcc float64
			if totalRounds > 0 {
				totalAcc = float64(totalCorrect) / float64(totalRounds) * 100
			}
			fmt.Printf("%-14s  %8d  %8d  %8d  %8.0f%%\n",
				"TOTAL", totalRounds, totalCorrect, totalTimeouts, totalAcc)
		}

		debate, err := repo.DebateStats(ctx)
		if err != nil {
			return fmt.Errorf("query debate stats: %w", err)
		}
		if debate.Turns > 0 {
			fmt.Printf("\nDebates: %d sessions, %d turns\n", debate.Sessions, debate.Turns)
		}
		return nil
	},
}
