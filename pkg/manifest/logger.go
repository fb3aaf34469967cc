package manifest

import "go.uber.org/zap"

// logger traces manifest parsing at debug level. Parsing is silent by
// default.
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
