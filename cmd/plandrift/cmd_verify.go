package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plandrift/internal/drift"
	"plandrift/internal/planner"
	"plandrift/internal/verify"
)

var (
	verifyGoal     string
	verifyTrials   int
	verifySeed     int64
	verifyParallel int
)

// verifyCmd measures reproducibility of both planning paths.
var verifyCmd = &cobra.Command{
	Use:   "verify",
	Short: "Measure plan reproducibility over repeated trials",
	Long: `Runs the deterministic planner and the drifting baseline for the same
request, N trials each, canonicalizes every plan, and reports how many
distinct plans came back per path.

The deterministic path passes when it collapses to exactly one plan.
The baseline is expected to drift to more than one; that check is
probabilistic, a small sample can collapse by luck.

Flags left unset fall back to the config file.

Example:
  plandrift verify --goal "Compare Rust vs Go for CLI tools" --trials 20`,
	RunE: runVerify,
}

func init() {
	verifyCmd.Flags().StringVar(&verifyGoal, "goal", "", "Request to plan repeatedly (required)")
	verifyCmd.Flags().IntVar(&verifyTrials, "trials", 10, "Trials per path")
	verifyCmd.Flags().Int64Var(&verifySeed, "seed", 0, "Baseline seed; 0 seeds from the clock")
	verifyCmd.Flags().IntVar(&verifyParallel, "parallel", 1, "Trials in flight at once")
	verifyCmd.MarkFlagRequired("goal")

	rootCmd.AddCommand(verifyCmd)
}

func runVerify(cmd *cobra.Command, args []string) error {
	trials := verifyTrials
	if !cmd.Flags().Changed("trials") {
		trials = cfg.Verify.Trials
	}
	parallelism := verifyParallel
	if !cmd.Flags().Changed("parallel") {
		parallelism = cfg.Verify.Parallelism
	}
	seed := verifySeed
	if !cmd.Flags().Changed("seed") {
		seed = cfg.Baseline.Seed
	}

	h, err := verify.New(trials, parallelism, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	logger.Info("Running reproducibility trials",
		zap.String("request", verifyGoal),
		zap.Int("trials", trials),
		zap.Int("parallelism", parallelism))

	sim := drift.New()
	if seed != 0 {
		sim = drift.New(drift.WithSeed(seed))
	}

	report, err := h.Compare(ctx, planner.New(logger), sim, verifyGoal)
	if err != nil {
		return err
	}
	logger.Info("Verification complete",
		zap.String("run_id", report.RunID),
		zap.Int("deterministic_distinct", report.Deterministic.Distinct()),
		zap.Int("baseline_distinct", report.Baseline.Distinct()))

	fmt.Fprintln(cmd.OutOrStdout(), report.Render())
	return nil
}
