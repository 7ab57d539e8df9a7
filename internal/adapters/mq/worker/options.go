package worker

import (
	"github.com/pitchside/careersim/pkg/logger"
)

// Option applies a configuration option to the SeasonWorker.
type Option func(*SeasonWorker)

// WithName sets the worker name for identification and logging.
func WithName(name string) Option {
	return func(w *SeasonWorker) {
		if name != "" {
			w.name = name
		}
	}
}

// WithLogger sets a custom logger for the worker.
func WithLogger(l logger.Logger) Option {
	return func(w *SeasonWorker) {
		if l != nil {
			w.logger = l
		}
	}
}
