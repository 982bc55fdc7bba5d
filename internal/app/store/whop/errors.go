// internal/app/store/whop/errors.go
package whopstore

import "errors"

// APIError is an application-level failure reported by the backend through
// the `error` field of a response body, as opposed to a transport failure.
// Its message is backend-authored and shown to the user verbatim.
type APIError struct {
	Message string
}

func (e *APIError) Error() string { return e.Message }

// IsAPIError reports whether err (or anything it wraps) is a backend
// application error.
func IsAPIError(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr)
}
