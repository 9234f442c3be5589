package cmd

import (
	"fmt"
	"os"

	"github.com/abhisek/dojo/internal/app"
	"github.com/abhisek/dojo/internal/bigo"
	"github.com/abhisek/dojo/internal/llm"
	"github.com/abhisek/dojo/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo := st.EventRepo()
	opts := app.Options{
		Bank:      bigo.NewBank(),
		EventRepo: eventRepo,
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Debate modes will be unavailable.")
	} else {
		opts.LLMProvider = provider
	}

	return app.Run(opts)
}
