package main

import (
	"context"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/spf13/cobra"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start the progress chat menu",
	Long: `Opens the menu to start or resume a phase, view progress, or exit.
With --script the given answers are replayed instead of reading stdin.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		var script []string
		if cmd.Flags().Changed("script") {
			script, _ = cmd.Flags().GetStringArray("script")
			if script == nil {
				script = []string{}
			}
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		err = app.Guide.Chat(ctx, script)
		return cli.HandleExecutionError(app.Out, err, ctx.Signal())
	},
}

func init() {
	rootCmd.AddCommand(chatCmd)
	chatCmd.Flags().StringArray("script", nil, "Scripted answer (repeatable); replaces interactive input")
}
