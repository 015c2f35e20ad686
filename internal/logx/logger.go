package logx

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Logger is a no-op until InitLogger runs, so library code and tests can
// log unconditionally.
var Logger = zap.NewNop()

func InitLogger() {
	InitLoggerWithLevel(false)
}

func InitLoggerWithLevel(verbose bool) {
	var err error

	if verbose {
		// Development mode: console encoder, debug level
		Logger, err = zap.NewDevelopment()
	} else {
		// Production mode: JSON on stderr, warnings and errors only
		config := zap.NewProductionConfig()
		config.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		config.OutputPaths = []string{"stderr"}
		Logger, err = config.Build()
	}

	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}

	InitStyledLogger()
}

// Sync flushes buffered entries; the error from syncing a terminal is ignored.
func Sync() {
	_ = Logger.Sync()
}
