package commands

import (
	"os"

	"oppstrength/internal/transfermarkt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(competitionsCmd)
}

var competitionsCmd = &cobra.Command{
	Use:   "competitions",
	Short: "Lists the competitions that can be ranked.",
	Run: func(cmd *cobra.Command, args []string) {
		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.AppendHeader(table.Row{"#", "Code", "Name", "Fixtures"})
		for i, c := range transfermarkt.Competitions {
			t.AppendRow(table.Row{i + 1, c.Code, c.Name, cfg.BaseUrl + c.FixturesPath(cfg.Season)})
		}
		t.SetStyle(table.StyleRounded)
		t.Render()
	},
}
