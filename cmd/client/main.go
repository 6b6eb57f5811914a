package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"

	"github.com/hbv501g/forumapp/internal/client/cli"
	"github.com/hbv501g/forumapp/internal/client/config"
	"github.com/hbv501g/forumapp/internal/logging"
)

func main() {
	cfg := config.LoadConfig()

	level := slog.LevelInfo
	if cfg.Debug {
		level = slog.LevelDebug
	}
	handler := tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})
	logger := logging.NewSlogLogger(slog.New(handler))

	ctx := context.Background()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
