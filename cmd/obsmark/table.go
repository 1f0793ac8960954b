package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"obsmark/internal/timestamps"
)

// renderMarkerTable renders the parsed markers as the preview shown before
// emission.
func renderMarkerTable(markers []timestamps.Marker) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"#", "Time", "Comment", "Name", "Color"})

	for i, marker := range markers {
		seconds := float64(marker.OffsetMS) / 1000.0
		name := marker.Name
		if name == "" {
			name = "-"
		}
		tw.AppendRow(table.Row{
			i + 1,
			fmt.Sprintf("%8.2fs", seconds),
			marker.Comment,
			name,
			marker.Color,
		})
	}

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 5, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})

	return tw.Render()
}
