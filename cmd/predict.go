package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/adityab/healthpredict/internal/predict"
	"github.com/adityab/healthpredict/internal/store"
)

var predictCmd = &cobra.Command{
	Use:   "predict",
	Short: "Run a one-shot assessment without the TUI",
	Long:  "Submit a questionnaire from flags and print the prediction. Runs anonymously; nothing is added to history.",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		workflow, err := newWorkflow(st)
		if err != nil {
			return err
		}

		q, err := questionnaireFromFlags(cmd)
		if err != nil {
			return err
		}

		result := workflow.Submit(cmd.Context(), q, nil)
		printResult(cmd, result)
		return nil
	},
}

func init() {
	predictCmd.Flags().String("age", "", "Age in years")
	predictCmd.Flags().String("gender", "male", "Gender: male, female or other")
	predictCmd.Flags().String("symptoms", "", "Comma-separated symptoms, e.g. fever,cough")
	predictCmd.Flags().Bool("smoking", false, "Regular smoker")
	predictCmd.Flags().Bool("exercise", false, "Regular exercise")
	predictCmd.Flags().String("bp", "", "Blood pressure, e.g. 120/80")
	predictCmd.Flags().String("sugar", "", "Sugar level, e.g. 95 mg/dL")
}

func questionnaireFromFlags(cmd *cobra.Command) (predict.Questionnaire, error) {
	ageStr, _ := cmd.Flags().GetString("age")
	genderStr, _ := cmd.Flags().GetString("gender")
	symptomsStr, _ := cmd.Flags().GetString("symptoms")
	smoking, _ := cmd.Flags().GetBool("smoking")
	exercise, _ := cmd.Flags().GetBool("exercise")
	bp, _ := cmd.Flags().GetString("bp")
	sugar, _ := cmd.Flags().GetString("sugar")

	known := make(map[string]bool, len(predict.Symptoms))
	for _, s := range predict.Symptoms {
		known[s] = true
	}

	var symptoms []string
	for _, s := range strings.Split(symptomsStr, ",") {
		s = strings.TrimSpace(strings.ToLower(s))
		if s == "" {
			continue
		}
		if !known[s] {
			return predict.Questionnaire{}, fmt.Errorf(
				"unknown symptom %q (known: %s)", s, strings.Join(predict.Symptoms, ", "))
		}
		symptoms = append(symptoms, s)
	}

	return predict.Questionnaire{
		Age:           predict.ParseAge(ageStr),
		Gender:        predict.Gender(genderStr),
		Symptoms:      symptoms,
		Smoking:       smoking,
		Exercise:      exercise,
		BloodPressure: bp,
		SugarLevel:    sugar,
	}, nil
}

func printResult(cmd *cobra.Command, r *predict.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Prediction: %s\n", r.Prediction)
	fmt.Fprintf(out, "Risk score: %.1f\n", r.RiskScore)
	for _, level := range predict.RiskLevels {
		fmt.Fprintf(out, "  %-8s %.2f\n", level, r.Probabilities[string(level)])
	}
	if len(r.SuggestedSteps) > 0 {
		fmt.Fprintln(out, "Suggested steps:")
		for _, step := range r.SuggestedSteps {
			fmt.Fprintf(out, "  - %s\n", step)
		}
	}
	if r.DoctorConsult != "" {
		fmt.Fprintln(out, r.DoctorConsult)
	}
}
