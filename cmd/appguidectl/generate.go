package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/spf13/cobra"
)

var generateCmd = &cobra.Command{
	Use:   "generate <1-5>",
	Short: "Generate the deliverables of a phase",
	Long: `Runs the phase wizard. Phase 1 asks the concept questions; phase 2 derives
screen flows from the phase 1 deliverables; phases 3 to 5 create placeholders.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid phase index %q", args[0])
		}

		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()

		_, err = app.Generate(ctx, index)
		return cli.HandleExecutionError(app.Out, err, ctx.Signal())
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
}
