package ucd

import "github.com/npillmayer/schuko/tracing"

// Option configures a LoadDirectory call. Options follow the functional-
// options idiom.
type Option func(*loadConfig)

type loadConfig struct {
	blockSize int
	logSink   tracing.Trace
}

// WithBlockSize overrides the two-stage table's block size. Most callers
// should leave this at properties.DefaultBlockSize.
func WithBlockSize(blockSize int) Option {
	return func(c *loadConfig) {
		c.blockSize = blockSize
	}
}

// WithLogSink directs LoadDirectory's diagnostics (missing files, and the
// size of the built table) to the given tracer instead of the package's
// default. Malformed lines are returned as errors, not logged.
func WithLogSink(trace tracing.Trace) Option {
	return func(c *loadConfig) {
		c.logSink = trace
	}
}
