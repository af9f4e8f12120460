package notes

import (
	"log/slog"
)

// options holds the configuration shared by the note and comment stores.
type options struct {
	logger *slog.Logger
}

// Option defines a functional option for configuring the stores.
type Option func(*options)

func defaultOptions() *options {
	return &options{}
}

// WithLogger sets the logger for the stores.
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
