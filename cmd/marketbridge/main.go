// Command marketbridge runs the MarketBridge welcome flow: it creates email
// and SMS notifications, dispatches them to console observers and prints each
// content line once per observer.
//
// Configuration comes from the environment (or a .env file):
//
//	APP_ENV       development | staging | production (default development)
//	SERVICE_NAME  service name attached to logs (default marketbridge)
//	LOG_LEVEL     debug | info | warn | error (default: preset for APP_ENV)
//	LOG_FORMAT    text | json (default: preset for APP_ENV)
//
// Notification content goes to stdout, logs go to stderr.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/marketbridge/notifykit/pkg/config"
	"github.com/marketbridge/notifykit/pkg/environment"
	"github.com/marketbridge/notifykit/pkg/logger"
)

type appConfig struct {
	Env         string `env:"APP_ENV" envDefault:"development"`
	ServiceName string `env:"SERVICE_NAME" envDefault:"marketbridge"`
	// LogLevel and LogFormat are optional; empty keeps the APP_ENV preset.
	LogLevel    string `env:"LOG_LEVEL"`
	LogFormat   string `env:"LOG_FORMAT"`
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log, err := newLogger(cfg, os.Stderr)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger.SetAsDefault(log)

	ctx := context.Background()
	if err := run(ctx, os.Stdout, log); err != nil {
		log.ErrorContext(ctx, "notification dispatch failed", logger.Error(err))
		os.Exit(1)
	}
}

func newLogger(cfg appConfig, w io.Writer) (*slog.Logger, error) {
	opts := []logger.Option{
		logger.WithEnvironment(environment.Parse(cfg.Env), cfg.ServiceName),
		logger.WithOutput(w),
	}

	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return nil, fmt.Errorf("invalid LOG_LEVEL %q: %w", cfg.LogLevel, err)
		}
		opts = append(opts, logger.WithLevel(level))
	}

	format, err := logger.ParseFormat(cfg.LogFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_FORMAT: %w", err)
	}
	if format != "" {
		opts = append(opts, logger.WithFormat(format))
	}

	return logger.New(opts...), nil
}
