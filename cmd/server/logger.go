package main

import (
	"fmt"
	"log/slog"

	"github.com/phrazzld/clients-api/internal/config"
	"github.com/phrazzld/clients-api/internal/platform/logger"
)

// setupAppLogger installs the JSON logger and tags it with the service name.
func setupAppLogger(cfg *config.Config) (*slog.Logger, error) {
	base, err := logger.Setup(cfg.Server)
	if err != nil {
		return nil, fmt.Errorf("logger setup: %w", err)
	}
	return base.With(slog.String("service", "clients-api")), nil
}
