package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var profileCmd = &cobra.Command{
	Use:   "profile",
	Short: "Manage learner accounts",
}

var profileListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all accounts",
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		profiles, err := s.ProfileRepo().List(context.Background())
		if err != nil {
			return fmt.Errorf("list accounts: %w", err)
		}

		if len(profiles) == 0 {
			fmt.Println("No accounts yet. Run wordchamp to create one.")
			return nil
		}

		fmt.Printf("%-24s  %-8s  %s\n", "Username", "Role", "Created")
		fmt.Println(strings.Repeat("─", 52))
		for _, p := range profiles {
			fmt.Printf("%-24s  %-8s  %s\n",
				p.Username, p.Role, p.CreatedAt.Local().Format("2006-01-02"))
		}
		return nil
	},
}

var profileDeleteCmd = &cobra.Command{
	Use:   "delete <username>",
	Short: "Delete an account and all of its progress",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		yes, _ := cmd.Flags().GetBool("yes")
		if !yes {
			return fmt.Errorf("refusing to delete without --yes")
		}

		s, err := openStore(cmd)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer s.Close()

		ctx := context.Background()
		p, err := s.ProfileRepo().GetByUsername(ctx, args[0])
		if err != nil {
			return fmt.Errorf("look up %q: %w", args[0], err)
		}

		if err := s.ProfileRepo().Delete(ctx, p.ID); err != nil {
			return fmt.Errorf("delete account: %w", err)
		}

		fmt.Printf("Account %q deleted.\n", args[0])
		return nil
	},
}

func init() {
	profileDeleteCmd.Flags().BoolP("yes", "y", false, "Confirm the deletion")

	profileCmd.AddCommand(profileListCmd)
	profileCmd.AddCommand(profileDeleteCmd)
}
