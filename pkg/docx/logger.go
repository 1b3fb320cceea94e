package docx

import (
	"io"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

// Fields is a set of structured log fields.
type Fields = logrus.Fields

var (
	globalLogger      *logrus.Logger
	globalLoggerMutex sync.RWMutex
	globalLoggerOnce  sync.Once
)

func initGlobalLogger() {
	globalLoggerOnce.Do(func() {
		logger := NewLogger(os.Stderr)
		logger.SetLevel(parseLogLevel(GetGlobalConfig().LogLevel))

		globalLoggerMutex.Lock()
		globalLogger = logger
		globalLoggerMutex.Unlock()
	})
}

// NewLogger returns a text logger writing to w. A nil writer discards
// output.
func NewLogger(w io.Writer) *logrus.Logger {
	if w == nil {
		w = io.Discard
	}
	logger := logrus.New()
	logger.SetOutput(w)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableColors:   true,
		FullTimestamp:   true,
		TimestampFormat: "2006-01-02 15:04:05",
	})
	return logger
}

func parseLogLevel(levelStr string) logrus.Level {
	switch levelStr {
	case "debug":
		return logrus.DebugLevel
	case "info":
		return logrus.InfoLevel
	case "warn":
		return logrus.WarnLevel
	case "error":
		return logrus.ErrorLevel
	case "off":
		return logrus.PanicLevel
	default:
		return logrus.InfoLevel
	}
}

// SetLogger replaces the package logger.
func SetLogger(logger *logrus.Logger) {
	initGlobalLogger()
	globalLoggerMutex.Lock()
	globalLogger = logger
	globalLoggerMutex.Unlock()
}

// GetLogger returns the package logger.
func GetLogger() *logrus.Logger {
	initGlobalLogger()
	globalLoggerMutex.RLock()
	defer globalLoggerMutex.RUnlock()
	return globalLogger
}

func WithField(key string, value interface{}) *logrus.Entry {
	return GetLogger().WithField(key, value)
}

func WithFields(fields Fields) *logrus.Entry {
	return GetLogger().WithFields(fields)
}

// UpdateLoggerFromConfig applies the log level of the global configuration
// to the package logger.
func UpdateLoggerFromConfig() {
	GetLogger().SetLevel(parseLogLevel(GetGlobalConfig().LogLevel))
}
