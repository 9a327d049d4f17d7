package shell

import (
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"cdinventory/internal/inventory"
)

// RenderInventory renders records as a table in insertion order. style is
// one of the display.table_style values; unknown values fall back to rounded.
func RenderInventory(records []inventory.Record, style string) string {
	tw := table.NewWriter()
	tw.SetStyle(tableStyle(style))
	tw.AppendHeader(table.Row{"ID", "CD Title", "Artist"})

	for _, record := range records {
		tw.AppendRow(table.Row{strconv.Itoa(record.ID), record.Title, record.Artist})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}

func tableStyle(name string) table.Style {
	switch name {
	case "light":
		return table.StyleLight
	case "ascii":
		return table.StyleDefault
	default:
		return table.StyleRounded
	}
}
