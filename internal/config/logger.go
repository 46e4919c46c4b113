package config

import (
	"context"
	"os"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"
)

var Logger = logrus.New()

func Init() {
	Logger.SetOutput(os.Stdout)
	Logger.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		level = logrus.InfoLevel
	}
	Logger.SetLevel(level)
}

// WithContext returns a logger carrying the request id set by chi's RequestID middleware.
func WithContext(ctx context.Context) logrus.FieldLogger {
	if ctx == nil {
		return Logger
	}
	if reqID := middleware.GetReqID(ctx); reqID != "" {
		return Logger.WithField("request_id", reqID)
	}
	return Logger
}
