package main

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/aretw0/appguide/internal/cli"
	"github.com/aretw0/appguide/internal/presentation/tui"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var previewCmd = &cobra.Command{
	Use:   "preview [index]",
	Short: "Preview a phase guide",
	Long: `Prints the first lines of a phase guide. Without an index every guide is
previewed in order, pausing for Enter between phases. Output is styled when
stdout is a terminal.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := setupApp(cmd)
		if err != nil {
			return err
		}
		defer app.Close()

		plain, _ := cmd.Flags().GetBool("plain")
		render := chooseRenderer(plain)

		if len(args) == 1 {
			index, err := strconv.Atoi(args[0])
			if err != nil {
				return fmt.Errorf("invalid phase index %q", args[0])
			}
			return app.Preview(index, render)
		}

		ctx := cli.NewSignalContext(context.Background())
		defer ctx.Cancel()
		err = app.PreviewAll(ctx, render)
		return cli.HandleExecutionError(app.Out, err, ctx.Signal())
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
	previewCmd.Flags().Bool("plain", false, "Print raw markdown even on a terminal")
}

func chooseRenderer(plain bool) tui.Renderer {
	fd := int(os.Stdout.Fd())
	if plain || !term.IsTerminal(fd) {
		return tui.Plain
	}
	width, _, err := term.GetSize(fd)
	if err != nil {
		width = 0
	}
	return tui.NewRenderer(width)
}
