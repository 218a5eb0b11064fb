package log

import (
	"os"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	level  = zap.NewAtomicLevelAt(zap.InfoLevel)
	logger *zap.Logger
	Logger *zap.SugaredLogger
)

func init() {
	encoderConfig := zap.NewProductionEncoderConfig()
	encoderConfig.MessageKey = "msg"
	encoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	encoderConfig.TimeKey = "@timestamp"
	encoderConfig.CallerKey = "logger_name"

	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encoderConfig),
		zapcore.AddSync(os.Stdout),
		level,
	)

	Use(zap.New(core,
		zap.Fields(zap.String("logName", applicationName())),
		zap.AddCaller(),
		zap.AddCallerSkip(1)))
}

func applicationName() string {
	if name, ok := os.LookupEnv("APPLICATION_NAME"); ok {
		return name
	}
	return "hospital-admin"
}

// Use replaces the package logger. Tests use it to capture output with zaptest/observer.
func Use(l *zap.Logger) {
	logger = l
	Logger = l.Sugar()
}

// SetLevel changes the minimum enabled level at runtime ("debug", "info", "warn", "error").
// Unknown values leave the current level untouched.
func SetLevel(name string) {
	var parsed zapcore.Level
	if err := parsed.UnmarshalText([]byte(name)); err != nil {
		Warnf("Ignoring unknown log level %q", name)
		return
	}
	level.SetLevel(parsed)
}

// Sync flushes any buffered log entries.
func Sync() {
	_ = logger.Sync()
}

// Info logs a message at InfoLevel with the given structured fields.
func Info(message string, fields ...zap.Field) {
	logger.Info(message, fields...)
}

// Infow logs a message with loosely typed key-value pairs.
func Infow(message string, keysAndValues ...interface{}) {
	Logger.Infow(message, keysAndValues...)
}

// Infof formats the message and logs it at InfoLevel.
func Infof(message string, args ...interface{}) {
	Logger.Infof(message, args...)
}

func Debug(message string, fields ...zap.Field) {
	logger.Debug(message, fields...)
}

func Debugw(message string, keysAndValues ...interface{}) {
	Logger.Debugw(message, keysAndValues...)
}

func Debugf(message string, args ...interface{}) {
	Logger.Debugf(message, args...)
}

func Warn(message string, fields ...zap.Field) {
	logger.Warn(message, fields...)
}

func Warnf(message string, args ...interface{}) {
	Logger.Warnf(message, args...)
}

// Error logs a message at ErrorLevel with the given structured fields.
func Error(message string, fields ...zap.Field) {
	logger.Error(message, fields...)
}

func Errorw(message string, keysAndValues ...interface{}) {
	Logger.Errorw(message, keysAndValues...)
}

func Errorf(message string, args ...interface{}) {
	Logger.Errorf(message, args...)
}

// Fatal logs the message and calls os.Exit(1).
func Fatal(message string, fields ...zap.Field) {
	logger.Fatal(message, fields...)
}

func Fatalf(message string, args ...interface{}) {
	Logger.Fatalf(message, args...)
}
