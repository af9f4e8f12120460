package store

import (
	"log/slog"
)

// options holds the configuration of a Store.
type options struct {
	name   string
	logger *slog.Logger
}

// Option defines a functional option for configuring a Store.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		name:   "item",
		logger: nil,
	}
}

// WithName sets the entity name used in errors and log records (e.g. "note").
func WithName(name string) Option {
	return func(o *options) {
		if name != "" {
			o.name = name
		}
	}
}

// WithLogger sets the logger for the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func (o *options) resolveLogger() *slog.Logger {
	if o.logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return o.logger
}
