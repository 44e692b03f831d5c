package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/ironsheep/unit-converter-mcp/internal/server"
	"github.com/jessevdk/go-flags"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

type options struct {
	Version  bool   `long:"version" short:"v" description:"Print version information"`
	LogLevel string `long:"log-level" env:"UNIT_MCP_LOG_LEVEL" default:"info" description:"Log level (debug, info, warn, error)"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		if flags.WroteHelp(err) {
			return
		}
		os.Exit(1)
	}

	if opts.Version {
		fmt.Printf("unit-converter-mcp %s\n", Version)
		fmt.Printf("  Build time: %s\n", BuildTime)
		fmt.Printf("  Git commit: %s\n", GitCommit)
		return
	}

	// Logging goes to stderr; stdout is reserved for the MCP protocol.
	var level slog.Level
	if err := level.UnmarshalText([]byte(opts.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	logger.Debug("starting unit-converter-mcp",
		"version", Version, "build_time", BuildTime, "commit", GitCommit)

	srv, err := server.New(logger)
	if err != nil {
		logger.Error("failed to initialize server", "error", err)
		os.Exit(1)
	}
	if err := srv.Run(); err != nil {
		logger.Error("server error", "error", err)
		os.Exit(1)
	}
}
