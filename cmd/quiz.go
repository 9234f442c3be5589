package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/abhisek/dojo/internal/bigo"
	"github.com/spf13/cobra"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Run a quick Big O quiz in the terminal (no database)",
	Long: `Answer complexity questions for random snippets from the bank.

This is a stateless quick-fire mode — no database, no timers, no events.
Useful for drilling between full battles.`,
	RunE: runQuiz,
}

func init() {
	quizCmd.Flags().String("language", bigo.DefaultLanguage, "Snippet language (python, javascript, go, java)")
	quizCmd.Flags().Int("count", 5, "Number of questions")
}

func runQuiz(cmd *cobra.Command, args []string) error {
	language, _ := cmd.Flags().GetString("language")
	count, _ := cmd.Flags().GetInt("count")

	bank := bigo.NewBank()
	if bank.Count(language) == 0 {
		return fmt.Errorf("no snippets for language %q (available: %s)",
			language, strings.Join(bank.Languages(), ", "))
	}

	scanner := bufio.NewScanner(os.Stdin)
	var correct int

	for i := 1; i <= count; i++ {
		ex := bank.PickRandom(language)
		opts := bank.Options(ex)

		fmt.Printf("── Question %d/%d ──\n", i, count)
		fmt.Println(ex.Code)
		fmt.Println()
		for j, o := range opts {
			fmt.Printf("  %d) %s\n", j+1, o)
		}

		fmt.Print("\nYour answer (1-4): ")
		if !scanner.Scan() {
			fmt.Println("\n(input closed)")
			break
		}
		answer := strings.TrimSpace(scanner.Text())
		if answer == "" {
			fmt.Println("(skipped)")
			fmt.Println()
			continue
		}

		idx, err := strconv.Atoi(answer)
		if err != nil || idx < 1 || idx > len(opts) {
			fmt.Println("Invalid choice.")
			fmt.Println()
			continue
		}

		if bigo.Evaluate(opts[idx-1], ex.Complexity.Display()) {
			correct++
			fmt.Println("\033[32m✓ Correct!\033[0m")
		} else {
			fmt.Printf("\033[31m✗ Wrong.\033[0m Answer: %s\n", ex.Complexity.Display())
		}

		if ex.Explanation != "" {
			fmt.Printf("Explanation: %s\n", ex.Explanation)
		}
		fmt.Println()
	}

	fmt.Printf("── Summary: %d/%d correct ──\n", correct, count)
	return nil
}
