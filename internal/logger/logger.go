package logger

import (
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
)

// New builds a sugared logger: human-readable in dev, JSON in
// production. The mode is selected by the APP_ENV environment variable.
func New() *zap.SugaredLogger {
	var (
		logger *zap.Logger
		err    error
	)

	if strings.ToLower(os.Getenv("APP_ENV")) == "dev" {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		panic(fmt.Errorf("failed to initialize logger: %w", err))
	}

	return logger.Sugar()
}
