package logger

import (
	"log"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
)

var globalLogger logr.Logger

// Init initializes the global logger. All output goes to stderr so the
// stdio MCP transport keeps stdout clean for protocol frames.
func Init() {
	stdr.SetVerbosity(verbosityFromEnv())
	globalLogger = stdr.New(log.New(os.Stderr, "", log.LstdFlags))
}

// Get returns the global logger instance
func Get() logr.Logger {
	if globalLogger.GetSink() == nil {
		Init()
	}
	return globalLogger
}

func verbosityFromEnv() int {
	if os.Getenv("STACKBASE_MCP_DEBUG") != "" {
		return 1
	}
	return 0
}

// Sync is a no-op for logr/stdr
func Sync() {}
