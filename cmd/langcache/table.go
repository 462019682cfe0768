package main

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

type column struct {
	header string
	right  bool
}

// renderTable draws rows under columns. Short rows are padded; an optional
// footer row is drawn below a separator.
func renderTable(columns []column, rows [][]string, footer []string) string {
	if len(columns) == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(toRow(columns, func(i int) string { return columns[i].header }))
	for _, row := range rows {
		tw.AppendRow(toRow(columns, cellAt(row)))
	}
	if len(footer) > 0 {
		tw.AppendFooter(toRow(columns, cellAt(footer)))
	}

	configs := make([]table.ColumnConfig, len(columns))
	for i, col := range columns {
		align := text.AlignLeft
		if col.right {
			align = text.AlignRight
		}
		configs[i] = table.ColumnConfig{Number: i + 1, Align: align, AlignHeader: text.AlignLeft, AlignFooter: align}
	}
	tw.SetColumnConfigs(configs)
	return tw.Render()
}

func toRow(columns []column, cell func(int) string) table.Row {
	row := make(table.Row, len(columns))
	for i := range columns {
		row[i] = cell(i)
	}
	return row
}

func cellAt(values []string) func(int) string {
	return func(i int) string {
		if i < len(values) {
			return values[i]
		}
		return ""
	}
}
