package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/adityab/healthpredict/internal/app"
	"github.com/adityab/healthpredict/internal/auth"
	"github.com/adityab/healthpredict/internal/history"
	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	session := auth.NewStore(newAuthProvider())
	defer session.Close()

	workflow, err := newWorkflow(st)
	if err != nil {
		return err
	}

	return app.Run(session, workflow, history.NewService(st.HistoryRepo()))
}

// newAuthProvider builds the auth provider from the environment, or
// returns nil when authentication is not configured. The app then runs
// signed out; assessments still work, history does not.
func newAuthProvider() auth.Provider {
	cfg, err := auth.ConfigFromEnv()
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "Auth provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Sign-in and history will be unavailable.")
		return nil
	}

	provider, err := auth.NewGoTrueProvider(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Auth provider not configured:", err)
		return nil
	}
	return provider
}

// newWorkflow wires the prediction client and repositories.
func newWorkflow(st *store.Store) (*predict.Workflow, error) {
	cfg, err := predict.ConfigFromEnv()
	if err != nil {
		return nil, err
	}
	client, err := predict.NewHTTPClient(cfg)
	if err != nil {
		return nil, fmt.Errorf("build prediction client: %w", err)
	}
	return predict.NewWorkflow(client, st.HistoryRepo(), st.EventRepo()), nil
}
