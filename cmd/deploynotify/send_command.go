package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"deploynotify/internal/actions"
	"deploynotify/internal/notifications"
)

func newSendCommand(ctx *commandContext) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Deliver a deployment notification",
		Long: "Resolve the deployment status, deliver it over the selected channels in order " +
			"(teams, then email, then slack) and write the step summary. The first failed " +
			"channel aborts the run with a ::error:: workflow command and exit code 1.",
		// Configuration errors must also produce the failure signal, so the
		// config is loaded inside RunE instead of the root pre-run hook.
		Annotations: map[string]string{"skipConfigLoad": "true"},
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := runSend(cmd, ctx)
			if err != nil {
				_ = actions.SetFailed(cmd.OutOrStdout(), err.Error())
				return err
			}
			if jsonOutput {
				return writeJSON(cmd, summary)
			}
			return nil
		},
	}

	bindInputFlags(cmd, ctx.inputs)
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Also print the run summary as JSON")
	return cmd
}

func runSend(cmd *cobra.Command, ctx *commandContext) (notifications.Summary, error) {
	cfg, dispatcher, logger, err := ctx.newDispatcher(cmd)
	if err != nil {
		return notifications.Summary{}, err
	}

	summary, err := dispatcher.Dispatch(cmd.Context(), notifications.NewRequest(cfg.Notification))
	if err != nil {
		return summary, err
	}

	reporter := actions.NewReporter(cfg.Summary.Path, cmd.OutOrStdout(), logger)
	if err := reporter.WriteSummary(cmd.Context(), summary); err != nil {
		return summary, fmt.Errorf("write step summary: %w", err)
	}

	if stderr := cmd.ErrOrStderr(); shouldColorize(stderr) {
		fmt.Fprintln(stderr, renderResults(summary, true))
	}
	return summary, nil
}
