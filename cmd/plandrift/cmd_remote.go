package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"plandrift/internal/remote"
)

var (
	remoteGoal  string
	remoteModel string
)

// remoteCmd exercises the unimplemented remote planning boundary.
var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Plan via a hosted model service (not implemented)",
	Long: `Attempts to plan the request through a hosted planning service.

The integration is intentionally unimplemented: the command prints the
messages a finished integration would send, then fails with a typed
NOT_IMPLEMENTED error before any network call, keeping the project
model-agnostic and credential-free. It exists so the extension point,
its configuration, and its failure mode stay visible.

Example:
  plandrift remote --goal "Today's news"`,
	RunE: runRemote,
}

func init() {
	remoteCmd.Flags().StringVar(&remoteGoal, "goal", "", "Request to send to the remote planner (required)")
	remoteCmd.Flags().StringVar(&remoteModel, "model", "", "Remote model identifier (default from config)")
	remoteCmd.MarkFlagRequired("goal")

	rootCmd.AddCommand(remoteCmd)
}

func runRemote(cmd *cobra.Command, args []string) error {
	model := remoteModel
	if !cmd.Flags().Changed("model") {
		model = cfg.Remote.Model
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "A finished integration would send:")
	fmt.Fprintln(out)
	fmt.Fprint(out, remote.RenderMessages(remote.BuildMessages(remoteGoal)))
	fmt.Fprintln(out)

	rp := remote.New(nil, model, cfg.Remote.Region, logger)
	_, err := rp.Generate(cmd.Context(), remoteGoal)
	return err
}
