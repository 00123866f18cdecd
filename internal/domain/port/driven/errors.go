package driven

import (
	"fmt"
	"net/http"
	"time"
)

// RequestError reports a request that produced no usable response: a non-2xx
// status or a transport failure (StatusCode 0).
type RequestError struct {
	Endpoint   string
	StatusCode int
	// RateLimitReset is when the API's rate limit window resets, taken from
	// the X-RateLimit-Reset header. Zero if the response carried none.
	RateLimitReset time.Time
	Err            error
}

func (e *RequestError) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("requesting %s: %v", e.Endpoint, e.Err)
	}
	return fmt.Sprintf("requesting %s: status %d: %v", e.Endpoint, e.StatusCode, e.Err)
}

func (e *RequestError) Unwrap() error { return e.Err }

// RateLimited reports whether the status is one GitHub uses for rate limiting.
func (e *RequestError) RateLimited() bool {
	return e.StatusCode == http.StatusForbidden || e.StatusCode == http.StatusTooManyRequests
}

// DecodeError reports a successful response whose body could not be decoded
// into the expected shape.
type DecodeError struct {
	Endpoint string
	Err      error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("decoding response from %s: %v", e.Endpoint, e.Err)
}

func (e *DecodeError) Unwrap() error { return e.Err }
