package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/pensup/pensup/internal/cli"
	"github.com/pensup/pensup/internal/config"
	"github.com/pensup/pensup/internal/logging"
)

func main() {

	cfg := config.LoadConfig()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	ctx := context.Background()
	app, err := cli.NewApp(ctx, cfg, logger)

	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
