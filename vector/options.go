package vector

// DefaultParallelThreshold is the vector length from which element-wise
// operations are split across goroutines.
const DefaultParallelThreshold = 1 << 16

// config is the execution policy carried by a vector.
type config struct {
	parallelThreshold int // lengths >= this run chunked; <= 0 disables
	maxWorkers        int // concurrent chunks; <= 0 means GOMAXPROCS
}

func defaultConfig() config {
	return config{parallelThreshold: DefaultParallelThreshold}
}

// Option configures a vector at construction. Vectors derived from an
// operation inherit the options of their first operand.
type Option func(*config)

// WithParallelThreshold sets the length from which element-wise operations
// writing into this vector run in parallel. n <= 0 disables parallelism.
func WithParallelThreshold(n int) Option {
	return func(c *config) { c.parallelThreshold = n }
}

// WithMaxWorkers caps the number of concurrently processed chunks.
// n <= 0 uses GOMAXPROCS.
func WithMaxWorkers(n int) Option {
	return func(c *config) { c.maxWorkers = n }
}

func buildConfig(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}
