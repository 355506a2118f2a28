package logger

import (
	"go.uber.org/zap"
)

// New builds the application logger. Production gets the JSON encoder,
// anything else the human readable development config.
func New(env string) *zap.Logger {
	var (
		l   *zap.Logger
		err error
	)
	if env == "production" {
		l, err = zap.NewProduction()
	} else {
		l, err = zap.NewDevelopment()
	}
	if err != nil {
		panic(err)
	}
	return l
}

// WithRequest tags the logger with the request id assigned by the HTTP layer.
func WithRequest(l *zap.Logger, requestID string) *zap.Logger {
	if requestID == "" {
		return l
	}
	return l.With(zap.String("request_id", requestID))
}

// RequestIDKey is the fiber Locals key the requestid middleware writes to.
const RequestIDKey = "requestid"
