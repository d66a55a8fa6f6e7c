package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/itssocoldhere/glowbio/internal/app"
	"github.com/itssocoldhere/glowbio/internal/config"
	"github.com/itssocoldhere/glowbio/internal/logger"
)

func main() {
	cfg := config.Load()
	cfg.RequireBotToken()

	logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
		Service:     "bot",
	})

	app, err := app.New(cfg)
	if err != nil {
		slog.Error("failed to initialize app", "error", err)
		panic(err)
	}
	defer func() {
		closeErr := app.Close()
		if closeErr != nil {
			slog.Error("failed to close app", "error", closeErr)
		}
	}()

	err = app.StartBot()
	if err != nil {
		slog.Error("failed to start discord bot", "error", err)
		panic(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()
	slog.Info("bot shutting down")
}
