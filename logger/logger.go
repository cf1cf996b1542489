// file: logger/logger.go

package logger

import (
	"io"
	"os"

	"github.com/george-593/microsoft-bank-website/config"
	"github.com/sirupsen/logrus"
)

var Log *logrus.Logger

// Init configures the shared logger from the loaded AppConfig.
// The log level, format, and optional file sink are all configuration-driven
// so that deployments only differ in config, never in code.
func Init() {
	Log = logrus.New()

	level, err := logrus.ParseLevel(config.AppConfig.Log.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)

	if config.AppConfig.Log.Format == "json" {
		Log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	if path := config.AppConfig.Log.File; path != "" {
		file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			Log.WithError(err).Warn("Could not open log file, falling back to stdout only")
		} else {
			Log.SetOutput(io.MultiWriter(os.Stdout, file))
		}
	}
}
