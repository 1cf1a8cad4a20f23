package gateway

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrMissingPayload is returned when the server answered 2xx but the
	// response body could not be decoded into the expected payload.
	ErrMissingPayload = errors.New("missing or undecodable response payload")
)

// HTTPError carries the status code of a non-2xx response so callers can
// classify the failure (transient band, timeout, hard error) with
// [HTTPStatus] and [IsTimeout].
type HTTPError struct {
	Code int
	Body string
}

func (e *HTTPError) Error() string {
	body := e.Body
	if body == "" {
		body = http.StatusText(e.Code)
	}
	return fmt.Sprintf("http %d: %s", e.Code, body)
}

// HTTPStatus extracts the HTTP status code from err. ok is false when err
// does not wrap an [*HTTPError] (i.e. the failure happened below the HTTP
// layer).
func HTTPStatus(err error) (code int, ok bool) {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr.Code, true
	}
	return 0, false
}

// IsTimeout reports whether err is a request-timeout class failure: either
// the server answered 408 or the transport timed out before an answer.
func IsTimeout(err error) bool {
	if code, ok := HTTPStatus(err); ok {
		return code == http.StatusRequestTimeout
	}

	var netErr interface{ Timeout() bool }
	if errors.As(err, &netErr) {
		return netErr.Timeout()
	}
	return false
}
