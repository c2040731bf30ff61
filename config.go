package ctstream

import (
	"net/http"
	"runtime"
	"time"
)

const (
	defaultTimeout = time.Second
	defaultBatch   = 1000
)

// StreamConfig configures a call to Stream or StreamBlocking. Build one
// with NewStreamConfig and the With* setters; the zero value of each
// optional field means "use the default."
type StreamConfig struct {
	// URL is the base URL of the CT log, e.g. "https://ct.example.com/".
	URL string

	// Timeout is the delay between idle/empty/rate-limited retries.
	// Defaults to one second.
	Timeout time.Duration

	// Workers is the maximum number of batches fetched concurrently.
	// Defaults to runtime.NumCPU(), floored at 1.
	Workers int

	// Batch is the number of entries requested per HTTP call. Defaults
	// to 1000, floored at 1.
	Batch int

	// Index, if set, is the starting log index. If unset, the stream
	// starts at the log's current tree size (tail-follow). If set
	// beyond the current tree size, it is clamped to the tree size.
	Index    uint64
	HasIndex bool

	// HTTPClient is the HTTP client used for all log requests. If nil,
	// a client with an otelhttp-instrumented transport is constructed.
	HTTPClient *http.Client
}

// NewStreamConfig returns a StreamConfig for the given log URL with all
// other fields at their defaults.
func NewStreamConfig(url string) *StreamConfig {
	return &StreamConfig{URL: url}
}

// WithTimeout sets the inter-retry sleep duration.
func (c *StreamConfig) WithTimeout(d time.Duration) *StreamConfig {
	c.Timeout = d
	return c
}

// WithWorkers sets the maximum number of in-flight batches.
func (c *StreamConfig) WithWorkers(n int) *StreamConfig {
	c.Workers = n
	return c
}

// WithBatch sets the number of entries requested per HTTP call.
func (c *StreamConfig) WithBatch(n int) *StreamConfig {
	c.Batch = n
	return c
}

// WithIndex sets the starting log index, overriding tail-follow.
func (c *StreamConfig) WithIndex(index uint64) *StreamConfig {
	c.Index = index
	c.HasIndex = true
	return c
}

// WithHTTPClient overrides the HTTP client used to talk to the log.
func (c *StreamConfig) WithHTTPClient(client *http.Client) *StreamConfig {
	c.HTTPClient = client
	return c
}

// normalized returns a copy of c with defaults applied and invalid
// values floored, per spec.md §3: "batch >= 1, workers >= 1."
func (c *StreamConfig) normalized() StreamConfig {
	out := *c

	if out.Timeout <= 0 {
		out.Timeout = defaultTimeout
	}
	if out.Workers < 1 {
		out.Workers = runtime.NumCPU()
	}
	if out.Workers < 1 {
		out.Workers = 1
	}
	if out.Batch < 1 {
		out.Batch = defaultBatch
	}

	return out
}
