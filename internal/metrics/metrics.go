package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/stackbase-dev/stackbase-mcp/internal/version"
)

// NewBuildInfoCollector returns a collector that exports metrics about current
// version information.
func NewBuildInfoCollector() prometheus.Collector {
	return prometheus.NewGaugeFunc(
		prometheus.GaugeOpts{
			Name: "stackbase_mcp_build_info",
			Help: "stackbase-mcp build metadata exposed as labels with a constant value of 1.",
			ConstLabels: prometheus.Labels{
				"version":    version.Get().Version,
				"git_commit": version.Get().GitCommit,
				"build_date": version.Get().BuildDate,
				"go_version": version.Get().GoVersion,
				"compiler":   version.Get().Compiler,
				"platform":   version.Get().Platform,
			},
		},
		func() float64 { return 1 },
	)
}

var (
	// ToolCalls counts tool invocations by tool name and outcome.
	ToolCalls = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "stackbase_mcp_tool_calls_total",
		Help: "Total number of MCP tool invocations.",
	}, []string{"tool", "success"})

	// UsageEventsDropped counts usage events discarded because the
	// dispatch queue was full.
	UsageEventsDropped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "stackbase_mcp_usage_events_dropped_total",
		Help: "Total number of usage telemetry events dropped before dispatch.",
	})
)

func init() {
	prometheus.MustRegister(NewBuildInfoCollector())
}
