package command

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/stolasapp/yell/internal/blockext"
	"github.com/stolasapp/yell/internal/config"
	"github.com/stolasapp/yell/internal/yell"
)

type configKey struct{}

func version() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown-dev"
	}
	ver := "unknown"
	dirty := false
	for _, setting := range info.Settings {
		switch setting.Key {
		case "vcs.revision":
			ver = setting.Value
		case "vcs.modified":
			dirty = setting.Value == "true"
		}
	}
	if dirty {
		ver += "-dev"
	}
	return ver
}

func loadConfig(ctx context.Context) (*config.Config, *slog.Logger, error) {
	cfg, ok := ctx.Value(configKey{}).(*config.Config)
	if !ok {
		return nil, nil, errors.New("config file resolution failed")
	}
	return cfg, slog.Default(), nil
}

// newRegistry builds the block registry with every built-in block bound.
func newRegistry(cfg *config.Config, logger *slog.Logger) (*blockext.Registry, error) {
	tag, err := cfg.Language()
	if err != nil {
		return nil, err
	}
	registry := blockext.NewRegistry(blockext.WithLogger(logger))
	if err = yell.Register(registry, yell.WithLanguage(tag)); err != nil {
		return nil, fmt.Errorf("failed to register %s block: %w", yell.Name, err)
	}
	return registry, nil
}
