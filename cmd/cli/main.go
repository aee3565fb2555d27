package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/sakshipatil0812/finance-family/internal/buildinfo"
	"github.com/sakshipatil0812/finance-family/internal/cli"
	"github.com/sakshipatil0812/finance-family/internal/config"
	"github.com/sakshipatil0812/finance-family/internal/logging"
)

func main() {
	buildinfo.PrintBuildData(os.Stdout)

	log := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.LoadConfig()

	app, err := cli.NewApp(cfg, log)
	if err != nil {
		log.Error(context.Background(), "failed to start", "error", err)
		os.Exit(1)
	}

	if err := app.Run(context.Background()); err != nil {
		log.Error(context.Background(), "exited with error", "error", err)
		os.Exit(1)
	}
}
