package cmd

import (
	"github.com/spf13/cobra"

	"github.com/adityab/healthpredict/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "healthpredict",
	Short: "Terminal health risk assessment",
	Long:  "HealthPredict — terminal client for questionnaire-based health risk assessment with saved history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides HEALTHPREDICT_DB env var)")

	rootCmd.AddCommand(predictCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then HEALTHPREDICT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
