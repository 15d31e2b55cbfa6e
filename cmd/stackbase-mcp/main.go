package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	_ "go.uber.org/automaxprocs"

	"github.com/stackbase-dev/stackbase-mcp/internal/httpserver"
	"github.com/stackbase-dev/stackbase-mcp/internal/version"
	"github.com/stackbase-dev/stackbase-mcp/pkg/client"
	"github.com/stackbase-dev/stackbase-mcp/pkg/logger"
	"github.com/stackbase-dev/stackbase-mcp/pkg/tools"
	"github.com/stackbase-dev/stackbase-mcp/pkg/usage"
)

const (
	serverName        = "stackbase-mcp"
	defaultAPIBaseURL = "http://localhost:7130"
	shutdownTimeout   = 5 * time.Second
	usageDrainTimeout = 3 * time.Second
)

var (
	httpMode bool
	port     int
)

var rootCmd = &cobra.Command{
	Use:   serverName,
	Short: "MCP server exposing Stackbase backend tools",
	Long: "Exposes the Stackbase backend (database, storage, auth, edge functions, deployments)\n" +
		"as MCP tools. Serves on stdio by default; pass --http for the streamable HTTP transport.",
	RunE:          run,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("api_key", "", "Stackbase API key (env: API_KEY)")
	rootCmd.PersistentFlags().String("api_base_url", defaultAPIBaseURL, "Stackbase backend base URL (env: API_BASE_URL)")
	rootCmd.Flags().BoolVar(&httpMode, "http", false, "Serve MCP over HTTP instead of stdio")
	rootCmd.Flags().IntVarP(&port, "port", "p", 8084, "Port for the HTTP transport")

	cobra.CheckErr(viper.BindPFlag("api_key", rootCmd.PersistentFlags().Lookup("api_key")))
	cobra.CheckErr(viper.BindPFlag("api_base_url", rootCmd.PersistentFlags().Lookup("api_base_url")))
	cobra.CheckErr(viper.BindEnv("api_key", "API_KEY"))
	cobra.CheckErr(viper.BindEnv("api_base_url", "API_BASE_URL"))

	rootCmd.AddCommand(versionCmd, toolsCmd, healthCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func loadConfig() tools.Config {
	return tools.Config{
		APIKey:     viper.GetString("api_key"),
		APIBaseURL: viper.GetString("api_base_url"),
	}
}

func run(cmd *cobra.Command, args []string) error {
	logger.Init()
	defer logger.Sync()
	log := logger.Get()

	log.Info("starting "+serverName,
		"version", version.Version,
		"git_commit", version.GitCommit,
		"build_date", version.BuildDate)

	cfg := loadConfig()
	if cfg.APIBaseURL == "" {
		return errors.New("api_base_url must not be empty")
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	clients := client.New(cfg.APIBaseURL, client.WithAPIKey(cfg.APIKey))
	tracker := usage.NewTracker(clients.Usage, log)
	registry := tools.NewRegistry(cfg, log,
		tools.WithClients(clients),
		tools.WithTracker(tracker),
	)

	mcpServer := server.NewMCPServer(
		serverName,
		version.Version,
		server.WithToolCapabilities(true),
		server.WithRecovery(),
	)

	summary, err := registry.RegisterAll(ctx, mcpServer)
	if err != nil {
		return fmt.Errorf("tool registration failed: %w", err)
	}
	log.Info("registered tools",
		"count", summary.ToolCount,
		"backend_version", summary.BackendVersion,
		"api_base_url", cfg.APIBaseURL)

	var wg sync.WaitGroup
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, os.Interrupt, syscall.SIGTERM)

	var httpSrv *httpserver.Server

	wg.Add(1)
	if httpMode {
		httpSrv = httpserver.New(mcpServer, fmt.Sprintf(":%d", port), log)
		go func() {
			defer wg.Done()
			if err := httpSrv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error(err, "HTTP transport failed")
				cancel()
			}
		}()
	} else {
		go func() {
			defer wg.Done()
			runStdioServer(ctx, mcpServer)
			cancel()
		}()
	}

	go func() {
		select {
		case <-signalChan:
			log.Info("received termination signal, shutting down")
		case <-ctx.Done():
		}
		cancel()

		if httpSrv != nil {
			shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
			defer shutdownCancel()
			if err := httpSrv.Shutdown(shutdownCtx); err != nil {
				log.Error(err, "failed to shut down HTTP transport gracefully")
			}
		}
	}()

	wg.Wait()

	drainCtx, drainCancel := context.WithTimeout(context.Background(), usageDrainTimeout)
	defer drainCancel()
	if err := tracker.Close(drainCtx); err != nil {
		log.Info("usage tracker drain incomplete", "error", err.Error())
	}

	log.Info("server shutdown complete")
	return nil
}

func runStdioServer(ctx context.Context, mcpServer *server.MCPServer) {
	log := logger.Get()
	log.Info("serving MCP over stdio")
	stdioServer := server.NewStdioServer(mcpServer)
	if err := stdioServer.Listen(ctx, os.Stdin, os.Stdout); err != nil {
		log.Info("stdio server stopped", "error", err.Error())
	}
}
