package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/cli/formatter"
	"github.com/dreambig/appgen/internal/document"
	"github.com/dreambig/appgen/internal/mapper"
)

func newPreviewCmd(app *App) *cobra.Command {
	var showTables bool

	cmd := &cobra.Command{
		Use:   "preview <data-file>",
		Short: "Show how a data file maps onto the form without writing a document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := application.Load(args[0])
			if err != nil {
				return fmt.Errorf("loading %s: %w", args[0], err)
			}
			doc := mapper.MapToDocument(data)

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, formatter.FormatOutline(doc))
			if showTables {
				fmt.Fprintln(out, formatter.FormatTables(doc))
				fmt.Fprintln(out)
			}
			fmt.Fprintln(out, formatter.FormatPreviewSummary(previewSummary(data, doc)))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&showTables, "tables", "t", false, "render every table with its cell contents")
	return cmd
}

func previewSummary(data *application.ApplicationData, doc *document.Document) formatter.PreviewSummary {
	app := application.Resolve(data)
	s := formatter.PreviewSummary{
		ProjectName:  string(app.ProjectName),
		Organization: string(app.Organization.FullName),
		BudgetItems:  len(app.Budget),
		BudgetTotal:  application.FormatNumber(mapper.BudgetTotal(app.Budget)),
		SDGs:         len(mapper.SelectedSDGs(app.SDGs)),
	}
	for _, blk := range doc.Body {
		switch blk.(type) {
		case *document.Table:
			s.Tables++
		case document.PageBreak:
			s.PageBreaks++
		}
	}
	return s
}
