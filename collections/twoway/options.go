package twoway

import "go.uber.org/zap"

// Option configures a Map at construction.
type Option func(*options)

type options struct {
	logger   *zap.Logger
	capacity int
}

// WithLogger sets the logger used for debug traces of rollbacks, aborted
// constructions and clears. Defaults to a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithCapacity pre-sizes both stores.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}

func newOptions(opts []Option) options {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
