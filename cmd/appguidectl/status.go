package main

import (
	"context"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/spf13/cobra"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show phase progress and where to resume",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		format, _ := cmd.Flags().GetString("format")
		if watching, _ := cmd.Flags().GetBool("watch"); watching {
			ctx := cli.NewSignalContext(context.Background())
			defer ctx.Cancel()
			err := app.WatchStatus(ctx, format)
			return cli.HandleExecutionError(app.Out, err, ctx.Signal())
		}
		return app.Status(format)
	},
}

func init() {
	rootCmd.AddCommand(statusCmd)
	statusCmd.Flags().String("format", cli.FormatText, "Output format: 'text' or 'mermaid'")
	statusCmd.Flags().BoolP("watch", "w", false, "Print the status again whenever project files change")
}
