package cmd

import (
	"fmt"
	"os"

	"github.com/itssocoldhere/glowbio/internal/app"
	"github.com/itssocoldhere/glowbio/internal/config"
	"github.com/itssocoldhere/glowbio/internal/logger"
)

// loadApp reads the environment the same way the server does and wires the
// store without connecting to the chat gateway.
func loadApp() (*app.App, error) {
	cfg := config.Load()

	logger.Init(logger.Options{
		Development: cfg.IsDevelopment(),
		SentryDSN:   cfg.SentryDSN,
		Service:     "do",
		Output:      os.Stderr,
	})

	a, err := app.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize app: %w", err)
	}
	return a, nil
}
