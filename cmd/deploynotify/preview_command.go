package main

import (
	"github.com/spf13/cobra"

	"deploynotify/internal/notifications"
)

func newPreviewCommand(ctx *commandContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview",
		Short: "Print every notification payload as JSON without sending",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, dispatcher, _, err := ctx.newDispatcher(cmd)
			if err != nil {
				return err
			}
			preview, err := dispatcher.Preview(notifications.NewRequest(cfg.Notification))
			if err != nil {
				return err
			}
			return writeJSON(cmd, preview)
		},
	}
	bindInputFlags(cmd, ctx.inputs)
	return cmd
}
