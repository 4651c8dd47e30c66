// Package main is the entry point for the lift lobby walkthrough.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/Faultbox/liftlobby/internal/config"
	"github.com/Faultbox/liftlobby/internal/logger"
	"github.com/Faultbox/liftlobby/internal/scene"
	"github.com/Faultbox/liftlobby/internal/viewer"
)

// layoutTimeout bounds the startup wait for the building layout.
const layoutTimeout = 10 * time.Second

func main() {
	// Parse CLI flags first
	config.ParseFlags()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}

	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Logger error: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("=== Lift Lobby Walkthrough ===")
	logger.Sugar.Debugf("Config: %+v", cfg)

	if path := config.WriteConfigPath(); path != "" {
		if err := cfg.SaveTo(path); err != nil {
			logger.Error("failed to write config", zap.String("path", path), zap.Error(err))
			os.Exit(1)
		}
		logger.Info("config written", zap.String("path", path))
		return
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A broken layout is fatal at startup; hot reloads only warn
	loader := scene.Load(ctx, cfg.Data.Layout)
	waitCtx, cancel := context.WithTimeout(ctx, layoutTimeout)
	_, err = loader.Wait(waitCtx)
	cancel()
	if err != nil {
		logger.Error("failed to load layout", zap.String("path", cfg.Data.Layout), zap.Error(err))
		os.Exit(1)
	}

	v, err := viewer.New(cfg, loader)
	if err != nil {
		logger.Error("failed to create viewer", zap.Error(err))
		os.Exit(1)
	}
	defer v.Close()

	if err := v.Run(ctx); err != nil {
		logger.Error("viewer error", zap.Error(err))
		os.Exit(1)
	}

	logger.Info("viewer closed normally")
}
