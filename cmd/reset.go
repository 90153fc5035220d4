package cmd

import (
	"context"
	"fmt"

	"github.com/linxi/wordchamp/internal/progress"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Reset a learner's progress",
	Long:  "Reset clears a learner's mastered set and wrong-word book. Session history is kept unless --history is given.",
	RunE: func(cmd *cobra.Command, args []string) error {
		username, _ := cmd.Flags().GetString("user")
		masteredOnly, _ := cmd.Flags().GetBool("mastered-only")
		clearHistory, _ := cmd.Flags().GetBool("history")
		yes, _ := cmd.Flags().GetBool("yes")

		if username == "" {
			return fmt.Errorf("--user is required")
		}
		if !yes {
			return fmt.Errorf("refusing to reset without --yes")
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

		if masteredOnly {
			if err := s.ProgressRepo().ClearMastered(ctx, p.ID, nil); err != nil {
				return fmt.Errorf("clear mastered words: %w", err)
			}
			fmt.Printf("Mastered words for %q have been cleared.\n", username)
			return nil
		}

		if err := s.ProgressRepo().Save(ctx, p.ID, progress.New()); err != nil {
			return fmt.Errorf("clear progress: %w", err)
		}

		if clearHistory {
			if _, err := s.DB().ExecContext(ctx,
				`DELETE FROM history WHERE profile_id = ?`, p.ID); err != nil {
				return fmt.Errorf("clear history: %w", err)
			}
		}

		fmt.Printf("Progress for %q has been reset.\n", username)
		return nil
	},
}

func init() {
	resetCmd.Flags().StringP("user", "u", "", "Learner username")
	resetCmd.Flags().Bool("mastered-only", false, "Only clear the mastered set, keep the wrong-word book")
	resetCmd.Flags().Bool("history", false, "Also delete session history")
	resetCmd.Flags().BoolP("yes", "y", false, "Confirm the reset")
}
