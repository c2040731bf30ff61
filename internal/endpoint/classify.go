package endpoint

import (
	"math"
	"net/http"
	"strconv"
	"time"
)

// classify maps an HTTP response's status code to a Response[T],
// reading decode for a 200 and computing a Retry-After delay for a
// 429. decode is only invoked on a 200 status.
func classify[T any](resp *http.Response, decode func() (T, error)) (Response[T], error) {
	switch {
	case resp.StatusCode == http.StatusOK:
		v, err := decode()
		if err != nil {
			return Response[T]{}, err
		}
		return dataResponse(v), nil

	case resp.StatusCode == http.StatusTooManyRequests:
		return limitedResponse[T](parseRetryAfter(resp.Header.Get("Retry-After"))), nil

	case resp.StatusCode == http.StatusBadRequest:
		return unhandledResponse[T](http.StatusBadRequest), nil

	case resp.StatusCode >= 401 && resp.StatusCode <= 499:
		return Response[T]{}, &ResponseError{Server: false, Code: resp.StatusCode}

	case resp.StatusCode >= 500 && resp.StatusCode <= 599:
		return Response[T]{}, &ResponseError{Server: true, Code: resp.StatusCode}

	default:
		return unhandledResponse[T](resp.StatusCode), nil
	}
}

// parseRetryAfter parses a Retry-After header as either decimal
// seconds or an RFC 2822/1123 HTTP-date, returning the delay in
// seconds clamped at 0. Returns nil if the header is absent or
// neither form parses.
func parseRetryAfter(header string) *float64 {
	if header == "" {
		return nil
	}

	if seconds, err := strconv.ParseFloat(header, 64); err == nil {
		d := math.Max(0, seconds)
		return &d
	}

	if when, err := http.ParseTime(header); err == nil {
		d := math.Max(0, time.Until(when).Seconds())
		return &d
	}

	return nil
}
