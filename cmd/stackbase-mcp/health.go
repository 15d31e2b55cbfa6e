package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stackbase-dev/stackbase-mcp/pkg/client"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Probe the configured backend and print its status and version",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		clients := client.New(cfg.APIBaseURL, client.WithAPIKey(cfg.APIKey))

		health, err := clients.Health.Get(cmd.Context())
		if err != nil {
			color.Red("backend unreachable at %s: %v", cfg.APIBaseURL, err)
			return err
		}

		color.Green("backend %s is %s", cfg.APIBaseURL, health.Status)
		fmt.Printf("service: %s\nversion: %s\ntimestamp: %s\n", health.Service, health.Version, health.Timestamp)
		return nil
	},
}
