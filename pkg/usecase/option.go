package usecase

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option is a functional option shared by the use case constructors
type Option func(*options)

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

func buildOptions(opts []Option) *options {
	o := &options{logger: slog.Default()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
