package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/stackbase-dev/stackbase-mcp/internal/version"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print build version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Get().String())
	},
}
