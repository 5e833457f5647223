package ignore

import "github.com/bethropolis/termtrack/internal/utils"

// Option functions for configuration
type Option func(*Engine)

// WithLogger sets the logger used for diagnostic output. Logging never
// changes matching behavior.
func WithLogger(logger utils.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithPath overrides the backing pattern file location.
func WithPath(path string) Option {
	return func(e *Engine) {
		if path != "" {
			e.path = path
		}
	}
}
