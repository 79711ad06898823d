package report

import (
	"io"
	"strings"

	"oppstrength/internal/strength"

	"github.com/jedib0t/go-pretty/v6/table"
)

// RenderTable prints the ranking for a terminal, or as a markdown table.
func RenderTable(w io.Writer, rows []strength.Row, markdown bool) {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(table.Row{"#", "Team", "Avg Opponent Market Value (M€)", "Opponents (M€)"})

	separator := "\n"
	if markdown {
		separator = ", "
	}

	averages := strength.Averages(rows)
	for i, row := range rows {
		listing := make([]string, len(row.Opponents))
		for j, o := range row.Opponents {
			listing[j] = o.String()
		}
		t.AppendRow(table.Row{
			i + 1,
			row.Team,
			averages[i],
			strings.Join(listing, separator),
		})
		if !markdown {
			t.AppendSeparator()
		}
	}

	if markdown {
		t.RenderMarkdown()
		return
	}
	t.SetStyle(table.StyleRounded)
	t.Render()
}
