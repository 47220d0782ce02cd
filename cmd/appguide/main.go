// Command appguide walks the five phase guides of the current project.
//
// Any positional argument (including "initiate") starts the walkthrough.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/aretw0/appguide/internal/presentation/tui"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appguide [initiate]",
	Short: "Guided walkthrough of the app-building workflow",
	Long: `appguide walks through the five workflow phases in order, printing every step
of each phase guide and waiting for Enter before moving on.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runInitiate,
}

func init() {
	rootCmd.Flags().String("dir", ".", "Project root containing the phase folders")
	rootCmd.Flags().String("config", "", "Configuration file (default <dir>/appguide.yaml)")
	rootCmd.Flags().Bool("debug", false, "Enable debug logging to stderr")
}

func runInitiate(cmd *cobra.Command, args []string) error {
	dir, _ := cmd.Flags().GetString("dir")
	cfgPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")

	app, err := cli.Setup(cli.Options{Dir: dir, ConfigPath: cfgPath, Debug: debug})
	if err != nil {
		return err
	}
	defer app.Close()

	ctx := cli.NewSignalContext(context.Background())
	defer ctx.Cancel()

	tui.PrintBanner(app.Out)
	err = app.Guide.Initiate(ctx)
	return cli.HandleExecutionError(app.Out, err, ctx.Signal())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
