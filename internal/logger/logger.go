package logger

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var sugar *zap.SugaredLogger

// Init configures the global logger. APP_ENV=production selects the JSON
// encoder, anything else the human-readable development encoder.
func Init() {
	level := zapcore.InfoLevel
	switch os.Getenv("LOG_LEVEL") {
	case "debug":
		level = zapcore.DebugLevel
	case "warn":
		level = zapcore.WarnLevel
	case "error":
		level = zapcore.ErrorLevel
	}

	var cfg zap.Config
	if os.Getenv("APP_ENV") == "production" {
		cfg = zap.NewProductionConfig()
		cfg.EncoderConfig.TimeKey = "timestamp"
		cfg.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	} else {
		cfg = zap.NewDevelopmentConfig()
		cfg.EncoderConfig.EncodeLevel = zapcore.CapitalColorLevelEncoder
	}
	cfg.Level = zap.NewAtomicLevelAt(level)

	log, err := cfg.Build(zap.AddCallerSkip(1))
	if err != nil {
		panic(err)
	}

	zap.ReplaceGlobals(log)
	sugar = log.Sugar()
}

func ensure() *zap.SugaredLogger {
	if sugar == nil {
		Init()
	}
	return sugar
}

// Info logs a message with optional key-value pairs.
func Info(msg string, keysAndValues ...interface{}) {
	ensure().Infow(msg, keysAndValues...)
}

func Infof(format string, v ...interface{}) {
	ensure().Infof(format, v...)
}

func Error(msg string, keysAndValues ...interface{}) {
	ensure().Errorw(msg, keysAndValues...)
}

func Errorf(format string, v ...interface{}) {
	ensure().Errorf(format, v...)
}

func Debug(msg string, keysAndValues ...interface{}) {
	ensure().Debugw(msg, keysAndValues...)
}

func Debugf(format string, v ...interface{}) {
	ensure().Debugf(format, v...)
}

func Fatal(msg string) {
	ensure().Fatal(msg)
}

func Fatalf(format string, v ...interface{}) {
	ensure().Fatalf(format, v...)
}

// Sync flushes buffered entries, call before exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
