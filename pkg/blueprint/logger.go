package blueprint

import "go.uber.org/zap"

// logger traces composition decisions at debug level. Composition is silent
// by default.
var logger = zap.NewNop()

// SetLogger installs a logger for the package. Nil is ignored.
func SetLogger(l *zap.Logger) {
	if l != nil {
		logger = l
	}
}

// Logger returns the current package logger.
func Logger() *zap.Logger {
	return logger
}
