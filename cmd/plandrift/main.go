package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"plandrift/internal/config"
	"plandrift/internal/logging"
	"plandrift/internal/plan"
	"plandrift/internal/planner"
)

var (
	// Global flags
	verbose bool
	cfgPath string

	// Root command flags
	goal   string
	pretty bool

	// Shared state built in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd plans a request deterministically and prints the plan as JSON.
var rootCmd = &cobra.Command{
	Use:   "plandrift",
	Short: "plandrift - deterministic task planner with drift verification",
	Long: `plandrift turns a natural language request into a normalized execution plan.

The pipeline is rule-driven and fully deterministic: the same request
always yields byte-identical JSON. No model is called and no step is
executed. The plan is printed to stdout as a single JSON document; logs
go to stderr.

Examples:
  plandrift --goal "Find 3 recent papers on deterministic AI agents and summarize the key patterns."
  plandrift --goal "Today's news" --pretty`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		logger, err = logging.New(cfg.Logging.Level, verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runPlan,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging")
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "plandrift.yaml", "Path to the config file")

	rootCmd.Flags().StringVar(&goal, "goal", "", "User goal / task description in natural language (required)")
	rootCmd.Flags().BoolVar(&pretty, "pretty", false, "Pretty-print JSON output")
	rootCmd.MarkFlagRequired("goal")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runPlan generates the deterministic plan and writes exactly one JSON
// document to stdout.
func runPlan(cmd *cobra.Command, args []string) error {
	p, err := planner.New(logger).Generate(cmd.Context(), goal)
	if err != nil {
		return err
	}

	doc, err := plan.Encode(p, pretty)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), doc)
	return nil
}
