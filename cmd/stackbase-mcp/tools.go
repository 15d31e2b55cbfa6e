package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/stackbase-dev/stackbase-mcp/pkg/logger"
	"github.com/stackbase-dev/stackbase-mcp/pkg/tools"
)

var toolsCmd = &cobra.Command{
	Use:   "tools",
	Short: "List the declared tool set and its backend version requirements",
	Run: func(cmd *cobra.Command, args []string) {
		registry := tools.NewRegistry(loadConfig(), logger.Get())

		gated := color.New(color.FgYellow).SprintFunc()

		t := table.NewWriter()
		t.SetOutputMirror(os.Stdout)
		t.SetStyle(table.StyleLight)
		t.AppendHeader(table.Row{"Tool", "Min Version", "Max Version", "Description"})
		for _, info := range registry.ToolNames() {
			name := info.Name
			if info.MinVersion != "" || info.MaxVersion != "" {
				name = gated(name)
			}
			t.AppendRow(table.Row{name, orDash(info.MinVersion), orDash(info.MaxVersion), info.Description})
		}
		t.Render()

		fmt.Println("\nTools with version bounds are only exposed when the connected backend satisfies them.")
	},
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
