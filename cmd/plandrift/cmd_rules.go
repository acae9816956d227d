package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"plandrift/internal/plan"
	"plandrift/internal/planner"
)

var rulesOutput string

// rulesCmd prints the classification table.
var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Show the goal classification rules",
	Long: `Prints the classification rule table in evaluation order.

Rules match case-insensitively against the request text; the first
matching rule decides the goal. Requests matching no rule fall back to
generic_information_task.

OUTPUT FORMATS:
  text  human-readable table (default)
  json  machine-readable rule list`,
	RunE: runRules,
}

func init() {
	rulesCmd.Flags().StringVarP(&rulesOutput, "output", "o", "text", "Output format: text or json")

	rootCmd.AddCommand(rulesCmd)
}

func runRules(cmd *cobra.Command, args []string) error {
	rules := planner.DefaultRules()
	w := cmd.OutOrStdout()

	switch rulesOutput {
	case "json":
		doc := struct {
			Rules    []planner.Rule `json:"rules"`
			Fallback plan.Goal      `json:"fallback"`
		}{Rules: rules, Fallback: plan.GoalGeneric}

		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode rules: %w", err)
		}
		fmt.Fprintln(w, string(data))
	case "text":
		fmt.Fprintln(w, "Classification rules (first match wins):")
		fmt.Fprintln(w)
		for i, r := range rules {
			fmt.Fprintf(w, "  %d. %-19s -> %s\n", i+1, r.Name, r.Goal)
			if len(r.AnyOf) > 0 {
				fmt.Fprintf(w, "     any of: %s\n", strings.Join(r.AnyOf, ", "))
			}
			if len(r.AllOf) > 0 {
				fmt.Fprintf(w, "     all of: %s\n", strings.Join(r.AllOf, ", "))
			}
		}
		fmt.Fprintln(w)
		fmt.Fprintf(w, "Fallback: %s\n", plan.GoalGeneric)
	default:
		return fmt.Errorf("unknown output format: %s (valid: text, json)", rulesOutput)
	}

	return nil
}
