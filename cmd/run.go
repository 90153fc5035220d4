package cmd

import (
	"fmt"
	"os"

	"github.com/linxi/wordchamp/internal/app"
	"github.com/linxi/wordchamp/internal/explain"
	"github.com/linxi/wordchamp/internal/llm"
	"github.com/linxi/wordchamp/internal/profile"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	provider, configured, err := llm.NewProviderFromEnv(ctx, st.LLMLogRepo())
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider misconfigured:", err)
		fmt.Fprintln(os.Stderr, "Falling back to built-in word explanations.")
		provider = nil
	} else if !configured {
		fmt.Fprintln(os.Stderr, "No LLM provider configured (set WORDCHAMP_GEMINI_API_KEY or similar).")
		fmt.Fprintln(os.Stderr, "Falling back to built-in word explanations.")
	}

	return app.Run(app.Options{
		Store:     st,
		Profiles:  profile.NewService(st.ProfileRepo()),
		Explainer: explain.NewService(provider, explain.DefaultConfig()),
	})
}
