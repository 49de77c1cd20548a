package fetch

import "errors"

var (
	// ErrNetwork covers transport-level failures: connection refused,
	// DNS, timeouts. The request may never have reached the service.
	ErrNetwork = errors.New("network error")

	// ErrService covers non-2xx responses from the service. Callers must
	// not assume a response body.
	ErrService = errors.New("service error")
)
