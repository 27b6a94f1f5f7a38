package repository

import (
	"errors"
	"fmt"
)

// ErrMissingToken means a 2xx login response carried no usable token.
var ErrMissingToken = errors.New("login response has no token")

// Kind classifies the outcome of a backend call.
type Kind int

const (
	KindNone Kind = iota
	KindNetwork
	KindHTTP
	KindParse
	KindOther
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindNetwork:
		return "network"
	case KindHTTP:
		return "http"
	case KindParse:
		return "parse"
	default:
		return "other"
	}
}

// NetworkError is a transport-level failure: the request never produced a
// complete response.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string { return fmt.Sprintf("%s: network error: %v", e.Op, e.Err) }
func (e *NetworkError) Unwrap() error { return e.Err }

// HTTPError is a non-2xx response. Code and Message come from the backend's
// error envelope when it sent one.
type HTTPError struct {
	Op      string
	Status  int
	Code    string
	Message string
	Body    string
}

func (e *HTTPError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: status %d: %s", e.Op, e.Status, e.Message)
	}
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

// ParseError is a 2xx response whose body could not be understood.
type ParseError struct {
	Op   string
	Body string
	Err  error
}

func (e *ParseError) Error() string { return fmt.Sprintf("%s: unexpected response: %v", e.Op, e.Err) }
func (e *ParseError) Unwrap() error { return e.Err }

// Classify reports which category err falls into.
func Classify(err error) Kind {
	if err == nil {
		return KindNone
	}
	var (
		netErr   *NetworkError
		httpErr  *HTTPError
		parseErr *ParseError
	)
	switch {
	case errors.As(err, &httpErr):
		return KindHTTP
	case errors.As(err, &netErr):
		return KindNetwork
	case errors.As(err, &parseErr):
		return KindParse
	default:
		return KindOther
	}
}

// StatusCode returns the HTTP status carried by err, or 0.
func StatusCode(err error) int {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Status
	}
	return 0
}
