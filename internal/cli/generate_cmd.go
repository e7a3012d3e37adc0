package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/cli/formatter"
)

func newGenerateCmd(app *App) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:     "generate <json-data-file> <output-file>",
		Short:   "Generate the application document from a data file",
		Example: "  dreambig generate application-data.json output.docx",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return fmt.Errorf("expected <json-data-file> and <output-file>, got %d argument(s)", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			dataPath, outputPath := args[0], args[1]
			out := cmd.OutOrStdout()

			if err := generateOnce(cmd.Context(), app, dataPath, outputPath, out); err != nil {
				if !watch {
					return err
				}
				fmt.Fprintln(out, formatter.Failure(err.Error()))
			}
			if !watch {
				return nil
			}

			return watchFile(cmd.Context(), dataPath, app.Config.Watch.Debounce(), app.Logger, func() {
				if err := generateOnce(cmd.Context(), app, dataPath, outputPath, out); err != nil {
					app.Logger.Warn("regeneration failed", zap.Error(err))
					fmt.Fprintln(out, formatter.Failure(err.Error()))
				}
			})
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "regenerate whenever the data file changes")
	return cmd
}

func generateOnce(ctx context.Context, app *App, dataPath, outputPath string, out io.Writer) error {
	data, err := application.Load(dataPath)
	if err != nil {
		return fmt.Errorf("loading %s: %w", dataPath, err)
	}
	if _, err := app.Generator.Generate(ctx, data, outputPath); err != nil {
		return err
	}
	fmt.Fprintln(out, formatter.Success("申請書已生成："+outputPath))
	return nil
}
