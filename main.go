package main

import (
	"log/slog"

	"github.com/soocke/ninepatch-go/app"
	"github.com/soocke/ninepatch-go/config"
)

func main() {
	logger := NewLogger(slog.LevelInfo)

	cfgPath, err := config.DefaultPath()
	if err != nil {
		logger.Warn("config path unavailable, preferences will not be saved", "error", err)
		cfgPath = ""
	}
	cfg := config.DefaultConfig()
	if cfgPath != "" {
		if loaded, err := config.Load(cfgPath); err != nil {
			logger.Error("config load failed, using defaults", "path", cfgPath, "error", err)
		} else {
			cfg = loaded
		}
	}
	if cfg.Debug {
		logger = NewLogger(slog.LevelDebug)
	}

	application := app.NewApp("Nine-Patch Editor", 100, 100, cfg, cfgPath, logger)
	application.Start()
}
