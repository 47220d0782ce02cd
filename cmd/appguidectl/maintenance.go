package main

import (
	"context"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete generated deliverables",
	Long:  `Removes every file the phase wizards and the report generate. The progress log is kept.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		yes, _ := cmd.Flags().GetBool("yes")
		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		err = app.Reset(ctx, yes)
		return cli.HandleExecutionError(app.Out, err, ctx.Signal())
	},
}

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Write the progress report",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()
		return app.Report()
	},
}

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check markdown links in the project",
	Long:  `Parses every markdown file below the project root and reports relative links whose target does not exist.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()
		return app.Validate()
	},
}

func init() {
	rootCmd.AddCommand(resetCmd, reportCmd, validateCmd)
	resetCmd.Flags().BoolP("yes", "y", false, "Skip the confirmation prompt")
}
