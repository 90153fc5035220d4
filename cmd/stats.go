package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/linxi/wordchamp/internal/quiz"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show a learner's progress and session history",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		if username == "" {
			return fmt.Errorf("--user is required")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		p, err := s.ProfileRepo().GetByUsername(ctx, username)
		if err != nil {
			return fmt.Errorf("look up %q: %w", username, err)
		}

		prog, err := s.ProgressRepo().Load(ctx, p.ID)
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Printf("Learner:   %s (%s)\n", p.Username, p.Role)
		fmt.Printf("Mastered:  %d words\n", prog.MasteredCount())
		fmt.Printf("WrongBook: %d words\n", prog.WrongCount())

		history := prog.History()
		if len(history) == 0 {
			fmt.Println("\nNo sessions recorded yet.")
			return nil
		}

		fmt.Println()
		fmt.Printf("%-19s  %8s  %8s  %9s\n", "Session", "Words", "Wrong", "Accuracy")
		fmt.Println(strings.Repeat("─", 50))
		for _, rec := range history {
			correct := rec.WordsStudied - rec.WrongCount
			fmt.Printf("%-19s  %8d  %8d  %8d%%\n",
				rec.Timestamp.Local().Format("2006-01-02 15:04"),
				rec.WordsStudied, rec.WrongCount,
				quiz.AccuracyPercent(correct, rec.WrongCount))
		}
		return nil
	},
}

func init() {
	statsCmd.Flags().StringP("user", "u", "", "Learner username")
}
