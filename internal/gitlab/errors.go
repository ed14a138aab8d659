package gitlab

import "fmt"

// NotFoundError reports a missing resource (HTTP 404)
type NotFoundError struct {
	Resource string
	Name     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s [%s] not found", e.Resource, e.Name)
}

// NotFound lets callers detect the variant without depending on this type
func (e *NotFoundError) NotFound() bool { return true }

// ConnectionError wraps a transport-level failure (DNS, refused connection,
// request timeout)
type ConnectionError struct {
	Err error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("cannot connect to gitlab: %v", e.Err)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// APIError is a non-2xx response from the API; the body is surfaced verbatim
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("gitlab api returned status %d: %s", e.Status, e.Body)
}
