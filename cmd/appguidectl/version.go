package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/appguide"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of appguide",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("appguide version %s\n", strings.TrimSpace(appguide.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
