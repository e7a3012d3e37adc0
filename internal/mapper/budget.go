package mapper

import (
	"github.com/dreambig/appgen/internal/application"
	"github.com/dreambig/appgen/internal/document"
)

var budgetColumns = []int{2500, 1500, 1200, 1800, 2360}

// BudgetTable builds the budget table: a header row, one row per item and a
// total row whose label spans the first three columns.
func BudgetTable(items []application.BudgetItem) *document.Table {
	rows := make([]document.Row, 0, len(items)+2)

	header := make([]document.Cell, len(budgetHeaders))
	for i, h := range budgetHeaders {
		header[i] = headerCell(h, budgetColumns[i])
	}
	rows = append(rows, document.Row{Cells: header})

	for _, item := range items {
		rows = append(rows, document.Row{Cells: []document.Cell{
			contentCell(string(item.Name), budgetColumns[0]),
			contentCell(item.UnitPrice.String(), budgetColumns[1]),
			contentCell(item.Quantity.String(), budgetColumns[2]),
			contentCell(item.Amount.String(), budgetColumns[3]),
			contentCell(string(item.Note), budgetColumns[4]),
		}})
	}

	label := headerCell(budgetTotalLabel, sum(budgetColumns[:3]...))
	label.Paragraphs[0].Alignment = document.AlignCenter
	rows = append(rows, document.Row{Cells: []document.Cell{
		spanned(label, 3),
		contentCell(application.FormatNumber(BudgetTotal(items)), budgetColumns[3]),
		contentCell("", budgetColumns[4]),
	}})

	return fullWidthTable(budgetColumns, rows)
}

// BudgetTotal sums the amount of every item; missing amounts count as 0.
// Unit price and quantity are not consulted.
func BudgetTotal(items []application.BudgetItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Amount.Float()
	}
	return total
}
