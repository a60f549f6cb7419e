// Package applog wraps charmbracelet/log behind the small set of level
// functions the rest of the engine calls, so call sites never import the
// logging library directly.
package applog

import (
	"os"
	"time"

	"github.com/charmbracelet/log"
)

var logger *log.Logger

// Init configures the process-wide logger. appName is used as the log
// prefix; level is one of "debug", "info", "warn", "error" (anything else
// falls back to info).
func Init(appName string, level string) {
	logger = log.New(os.Stderr)
	logger.SetPrefix(appName)
	logger.SetReportTimestamp(true)
	logger.SetTimeFormat(time.DateTime)
	logger.SetLevel(parseLevel(level))
}

func parseLevel(level string) log.Level {
	switch level {
	case "debug":
		return log.DebugLevel
	case "warn":
		return log.WarnLevel
	case "error":
		return log.ErrorLevel
	default:
		return log.InfoLevel
	}
}

func ensure() {
	if logger == nil {
		Init("mahjong", "info")
	}
}

func Fatal(format string, args ...any) {
	ensure()
	if len(args) == 0 {
		logger.Fatal(format)
		return
	}
	logger.Fatal(format, args...)
}

func Info(format string, args ...any) {
	ensure()
	if len(args) == 0 {
		logger.Info(format)
		return
	}
	logger.Info(format, args...)
}

func Warn(format string, args ...any) {
	ensure()
	if len(args) == 0 {
		logger.Warn(format)
		return
	}
	logger.Warn(format, args...)
}

func Error(format string, args ...any) {
	ensure()
	if len(args) == 0 {
		logger.Error(format)
		return
	}
	logger.Error(format, args...)
}

func Debug(format string, args ...any) {
	ensure()
	if len(args) == 0 {
		logger.Debug(format)
		return
	}
	logger.Debug(format, args...)
}
