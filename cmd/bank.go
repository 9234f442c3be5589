package cmd

import (
	"fmt"
	"strings"

	"github.com/abhisek/dojo/internal/bigo"
	"github.com/spf13/cobra"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the snippet bank",
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List bank contents per language and complexity class",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank := bigo.NewBank()

		fmt.Printf("%-14s  %6s\n", "Language", "Count")
		fmt.Println(strings.Repeat("─", 24))
		total := 0
		for _, lang := range bank.Languages() {
			n := bank.Count(lang)
			total += n
			fmt.Printf("%-14s  %6d\n", lang, n)
		}
		fmt.Println(strings.Repeat("─", 24))
		fmt.Printf("%-14s  %6d\n", "TOTAL", total)
		return nil
	},
}

var bankValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check every snippet has a valid canonical complexity",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank := bigo.NewBank()
		if err := bank.Validate(); err != nil {
			return fmt.Errorf("bank validation failed: %w", err)
		}
		fmt.Println("Bank OK.")
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankListCmd)
	bankCmd.AddCommand(bankValidateCmd)
}
