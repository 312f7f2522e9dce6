package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adityab/healthpredict/internal/history"
	"github.com/adityab/healthpredict/internal/store"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List saved assessments for a user",
	RunE: func(cmd *cobra.Command, args []string) error {
		userID, _ := cmd.Flags().GetString("user")
		if userID == "" {
			return fmt.Errorf("--user is required")
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		svc := history.NewService(st.HistoryRepo())
		records, err := svc.Load(cmd.Context(), userID)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(records) == 0 {
			fmt.Fprintln(out, "No assessments recorded.")
			return nil
		}

		fmt.Fprintf(out, "Trend: %s\n\n", svc.Trend(records))
		for _, rec := range records {
			fmt.Fprintf(out, "%s  %-6s  score %5.1f",
				rec.CreatedAt.Format("2006-01-02 15:04"), rec.PredictionLevel, rec.RiskScore)
			if len(rec.Metadata.Symptoms) > 0 {
				fmt.Fprintf(out, "  [%s]", strings.Join(rec.Metadata.Symptoms, ", "))
			}
			fmt.Fprintln(out)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().String("user", "", "Identity id to list history for")
}
