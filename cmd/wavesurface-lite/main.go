// Package main runs the keyboard-driven viewer on a plain SDL window.
package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/Faultbox/wavesurface/internal/config"
	"github.com/Faultbox/wavesurface/internal/logger"
	"github.com/Faultbox/wavesurface/internal/viewer"
)

func main() {
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

	v, err := viewer.NewLite(cfg)
	if err != nil {
		logger.Fatal("failed to create viewer", zap.Error(err))
	}

	runErr := v.Run()
	v.Close()
	if runErr != nil {
		logger.Fatal("viewer error", zap.Error(runErr))
	}
	logger.Info("viewer closed normally")
}
