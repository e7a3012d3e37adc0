package cli

import (
	"github.com/spf13/cobra"

	"github.com/dreambig/appgen/internal/mcp"
)

func newServeCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the generate_application tool over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd, app)
		},
	}
}

func runServe(cmd *cobra.Command, app *App) error {
	srv := mcp.NewServer(app.Generator, app.Logger.Named("mcp"))
	return srv.Serve(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout())
}
