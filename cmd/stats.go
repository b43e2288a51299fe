package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show quiz and reward statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd)
		if err != nil {
			return err
		}
		defer st.Close()

		ctx := cmd.Context()

		byReason, total, err := st.EventRepo().HeartTotals(ctx)
		if err != nil {
			return err
		}
		level, err := st.ProgressRepo().CurrentLevel(ctx)
		if err != nil {
			return err
		}
		summaries, err := st.EventRepo().QueryQuizSummaries(ctx, 0)
		if err != nil {
			return err
		}

		var answered, correct int
		for _, s := range summaries {
			answered += s.QuestionsTotal
			correct += s.Score
		}

		fmt.Printf("Hearts:   %d total\n", total)
		for reason, count := range byReason {
			fmt.Printf("          %s: %d\n", reason, count)
		}
		fmt.Printf("Level:    %d\n", level)
		fmt.Printf("Quizzes:  %d finished\n", len(summaries))
		if answered > 0 {
			fmt.Printf("Answers:  %d/%d correct (%.0f%%)\n",
				correct, answered, float64(correct)/float64(answered)*100)
		}
		return nil
	},
}
