package core

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

var (
	once      sync.Once
	singleton *log.Logger
)

// Logger returns the process-wide logger, creating it on first use.
func Logger() *log.Logger {
	once.Do(func() {
		singleton = newLogger(os.Stderr)
	})
	return singleton
}

func newLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "viewer",
		Level:           log.InfoLevel,
	})
}

// SetLogLevel parses a level name ("debug", "info", "warn", "error").
func SetLogLevel(level string) error {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}
	Logger().SetLevel(lvl)
	return nil
}

func LogDebug(msg string, keyvals ...interface{}) {
	Logger().Debug(msg, keyvals...)
}

func LogInfo(msg string, keyvals ...interface{}) {
	Logger().Info(msg, keyvals...)
}

func LogWarn(msg string, keyvals ...interface{}) {
	Logger().Warn(msg, keyvals...)
}

func LogError(msg string, keyvals ...interface{}) {
	Logger().Error(msg, keyvals...)
}

func LogFatal(msg string, keyvals ...interface{}) {
	Logger().Fatal(msg, keyvals...)
}
