package ctstream

import (
	"errors"
	"fmt"

	"ctstream.dev/internal/endpoint"
	"ctstream.dev/internal/pipeline"
	"ctstream.dev/internal/wire"
)

// ErrorKind discriminates the terminal error taxonomy of spec.md §7.
type ErrorKind int

const (
	// KindLog is a wire-format violation: an entry that could not be
	// decoded. Fatal to the stream because skipping it would break
	// the index-ordering contract.
	KindLog ErrorKind = iota
	// KindResponse is a terminal 401–499 or 500–599 HTTP status.
	KindResponse
	// KindEndpoint is a URL construction failure.
	KindEndpoint
	// KindRequest is an HTTP transport failure.
	KindRequest
	// KindTask is a recovered panic from a pipeline worker goroutine.
	KindTask
)

func (k ErrorKind) String() string {
	switch k {
	case KindLog:
		return "log"
	case KindResponse:
		return "response"
	case KindEndpoint:
		return "endpoint"
	case KindRequest:
		return "request"
	case KindTask:
		return "task"
	default:
		return "unknown"
	}
}

// StreamError is the umbrella error type returned by Stream and
// StreamBlocking for every non-success, non-handler-stop outcome.
type StreamError struct {
	Kind ErrorKind
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("ctstream: %s: %v", e.Kind, e.Err)
}

func (e *StreamError) Unwrap() error {
	return e.Err
}

func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var logErr *wire.LogError
	if errors.As(err, &logErr) {
		return &StreamError{Kind: KindLog, Err: err}
	}

	var taskErr *pipeline.TaskError
	if errors.As(err, &taskErr) {
		return &StreamError{Kind: KindTask, Err: err}
	}

	var respErr *endpoint.ResponseError
	if errors.As(err, &respErr) {
		return &StreamError{Kind: KindResponse, Err: err}
	}

	var urlErr *endpoint.URLError
	if errors.As(err, &urlErr) {
		return &StreamError{Kind: KindEndpoint, Err: err}
	}

	var reqErr *endpoint.RequestError
	if errors.As(err, &reqErr) {
		return &StreamError{Kind: KindRequest, Err: err}
	}

	return &StreamError{Kind: KindRequest, Err: err}
}
