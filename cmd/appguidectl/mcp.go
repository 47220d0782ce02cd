package main

import (
	"log"
	"os"

	"github.com/aretw0/appguide/pkg/adapters/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the Model Context Protocol (MCP) server",
	Long: `Serves the phase_progress and phase_guide tools over stdio so that AI agents
can read project progress and guides.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		// Ensure logs don't corrupt JSON-RPC on Stdout
		log.SetOutput(os.Stderr)
		app.Logger.Info("starting MCP server (stdio)")
		return mcp.NewServer(app.Guide).ServeStdio()
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
