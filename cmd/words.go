package cmd

import (
	"fmt"
	"strings"

	"github.com/linxi/wordchamp/internal/catalog"
	"github.com/spf13/cobra"
)

var wordsCmd = &cobra.Command{
	Use:   "words",
	Short: "List the word catalog",
	RunE: func(cmd *cobra.Command, args []string) error {
		grade, _ := cmd.Flags().GetInt("grade")
		unit, _ := cmd.Flags().GetInt("unit")

		var words []catalog.WordEntry
		switch {
		case grade > 0 && cmd.Flags().Changed("unit"):
			words = catalog.ByGradeUnit(grade, unit)
		case grade > 0:
			words = catalog.ByGrade(grade)
		default:
			words = catalog.All()
		}

		if len(words) == 0 {
			fmt.Println("No words match.")
			return nil
		}

		fmt.Printf("%-8s  %-6s  %-6s  %-14s  %-14s  %s\n",
			"ID", "Grade", "Unit", "English", "Phonetic", "Meaning")
		fmt.Println(strings.Repeat("─", 72))
		for _, w := range words {
			fmt.Printf("%-8s  %-6d  %-6d  %-14s  %-14s  %s %s\n",
				w.ID, w.Grade, w.Unit, w.English, w.Phonetic, w.VisualCue, w.Translation)
		}
		fmt.Printf("\n%d words.\n", len(words))
		return nil
	},
}

func init() {
	wordsCmd.Flags().IntP("grade", "g", 0, "Filter by grade (1-6)")
	wordsCmd.Flags().IntP("unit", "u", 0, "Filter by unit (requires --grade)")
}
