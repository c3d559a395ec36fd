package config

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Log is a no-op until InitLogger runs, so packages and tests can log freely.
var Log = zap.NewNop().Sugar()

func InitLogger() {
	cfg := zap.NewProductionConfig()
	if os.Getenv("APP_ENV") != "production" {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}

	l, err := cfg.Build()
	if err != nil {
		Log.Warnf("failed to build logger: %v", err)
		return
	}
	Log = l.Sugar()
}

func SyncLogger() {
	_ = Log.Sync()
}
