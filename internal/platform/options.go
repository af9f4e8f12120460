package platform

import (
	"log/slog"
)

// options holds the internal configuration for a marginalia store.
type options struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring marginalia.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		logger: nil,
	}
}

// WithLogger sets the logger for the stores.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}
