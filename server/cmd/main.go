// Package main runs the md5 HTTP API. Configuration comes from an
// optional TOML file; the server stops gracefully on SIGINT or SIGTERM.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/byte4ever/md5kit/config"
	"github.com/byte4ever/md5kit/server"
)

func run() error {
	const errCtx = "md5 server"

	var (
		configPath string
		listen     string
		debug      bool
	)

	flag.StringVar(
		&configPath, "config", "",
		"path to TOML configuration (defaults when empty)",
	)

	flag.StringVar(
		&listen, "listen", "",
		"override server.listen from the configuration",
	)

	flag.BoolVar(
		&debug, "debug", false,
		"enable debug logging",
	)

	flag.Parse()

	if debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	cfg := config.Default()

	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		cfg = loaded
	}

	if listen != "" {
		cfg.Server.Listen = listen

		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if err := server.New(cfg).Run(ctx); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
