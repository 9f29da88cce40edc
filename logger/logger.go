package logger

import (
	"log"
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var Logger *zap.Logger

// Init initializes the global logger. Production config when ENV=production,
// development config otherwise.
func Init() {
	env := os.Getenv("ENV")
	var err error
	var logger *zap.Logger
	if env == "production" {
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	Logger = logger
}

// Close flushes the logger buffers.
func Close() {
	if err := Logger.Sync(); err != nil {
		log.Printf("failed to flush log entries: %v", err)
	}
}

// L returns the global logger instance.
func L() *zap.Logger {
	if Logger == nil {
		Init()
	}
	return Logger
}

// Global logging helpers to avoid `logger.Logger` repetition.

func Info(msg string, fields ...zapcore.Field) {
	L().Info(msg, fields...)
}

func Warn(msg string, fields ...zapcore.Field) {
	L().Warn(msg, fields...)
}

func Error(msg string, fields ...zapcore.Field) {
	L().Error(msg, fields...)
}

func Fatal(msg string, fields ...zapcore.Field) {
	L().Fatal(msg, fields...)
}

func Debug(msg string, fields ...zapcore.Field) {
	L().Debug(msg, fields...)
}
