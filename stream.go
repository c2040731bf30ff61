// Package ctstream streams entries from an append-only Certificate
// Transparency log (RFC 6962 §4) and delivers each entry's parsed
// leaf certificate, and its issuer chain when present, to a
// caller-supplied handler. It rides a live log indefinitely: the
// handler's return value is the only thing that stops the stream.
package ctstream

import (
	"context"
	"net/http"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"ctstream.dev/internal/endpoint"
	"ctstream.dev/internal/model"
	"ctstream.dev/internal/pipeline"
)

// Stream discovers the log's current size, partitions the index range
// into config.Batch-sized batches, fetches up to config.Workers
// batches concurrently, and delivers entries to handler in strictly
// ascending index order. handler returning false stops the stream;
// Stream then returns nil. Stream returns a non-nil error only when a
// terminal error (see StreamError) aborts the stream, or ctx is
// cancelled before the handler requests stop — it never returns nil
// of its own accord, since the log has no natural end.
func Stream(ctx context.Context, config *StreamConfig, handler func(Entry) bool) error {
	normalized := config.normalized()

	client, err := endpoint.New(httpClientFor(&normalized), normalized.URL)
	if err != nil {
		return wrapError(err)
	}

	err = pipeline.Run(ctx, pipeline.Config{
		Workers:  normalized.Workers,
		Batch:    normalized.Batch,
		Index:    normalized.Index,
		HasIndex: normalized.HasIndex,
		Timeout:  normalized.Timeout,
	}, client, pipeline.Handler(func(e model.Entry) bool {
		return handler(e)
	}))

	return wrapError(err)
}

// StreamBlocking runs Stream to completion on a background context,
// for callers with no context of their own to thread through. It
// returns only when the handler requests stop or a terminal error
// occurs.
func StreamBlocking(config *StreamConfig, handler func(Entry) bool) error {
	return Stream(context.Background(), config, handler)
}

// httpClientFor returns config.HTTPClient if set, otherwise a client
// whose transport is wrapped with otelhttp so every log request
// produces a span, matching the rest of this module's tracing.
func httpClientFor(config *StreamConfig) *http.Client {
	if config.HTTPClient != nil {
		return config.HTTPClient
	}
	return &http.Client{Transport: otelhttp.NewTransport(http.DefaultTransport)}
}
