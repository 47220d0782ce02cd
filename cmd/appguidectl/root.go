package main

import (
	"fmt"
	"os"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "appguidectl",
	Short: "appguidectl manages an app-building project guided by phase documents",
	Long: `appguidectl chats about progress, previews phase guides, generates phase
deliverables and exposes project progress over HTTP and MCP.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	// Persistent flags (available to all commands)
	rootCmd.PersistentFlags().String("dir", ".", "Project root containing the phase folders")
	rootCmd.PersistentFlags().String("config", "", "Configuration file (default <dir>/appguide.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug logging to stderr")
}

// setupApp builds the project from the persistent flags.
func setupApp(cmd *cobra.Command) (*cli.App, error) {
	dir, _ := cmd.Flags().GetString("dir")
	cfgPath, _ := cmd.Flags().GetString("config")
	debug, _ := cmd.Flags().GetBool("debug")
	return cli.Setup(cli.Options{Dir: dir, ConfigPath: cfgPath, Debug: debug})
}
