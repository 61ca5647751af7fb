package pairheap

// Option is a configuration option for a PairingHeap.
type Option func(*config)

type config struct {
	capacity int
	logger   *Logger
}

func defaultConfig() config {
	return config{
		logger: NoopLogger(),
	}
}

// WithCapacity pre-allocates arena storage for at least n elements, avoiding
// segment allocations during the first n inserts.
func WithCapacity(n int) Option {
	return func(c *config) {
		c.capacity = n
	}
}

// WithLogger sets the logger used for debug-level structural tracing.
// Logging is disabled by default.
func WithLogger(logger *Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
