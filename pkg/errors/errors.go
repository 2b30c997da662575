package errors

import "fmt"

// ErrNotFound indicates a resource lookup that matched nothing.
type ErrNotFound struct {
	Resource string
	ID       string
}

func (e *ErrNotFound) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ErrInvalidInput indicates a request that failed client-side validation
// before any upstream call was made.
type ErrInvalidInput struct {
	Message string
}

func (e *ErrInvalidInput) Error() string {
	return e.Message
}

// ErrUpstream indicates a business-rule rejection from the commerce API,
// carrying the HTTP status and the envelope message verbatim so callers can
// surface it to the shopper.
type ErrUpstream struct {
	Status  int
	Message string
}

func (e *ErrUpstream) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream rejected request (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream rejected request (status %d)", e.Status)
}

// ErrConflict indicates an optimistic-concurrency failure: the stored cart
// version moved between read and write.
type ErrConflict struct {
	Resource string
	ID       string
}

func (e *ErrConflict) Error() string {
	return fmt.Sprintf("%s was modified concurrently: %s", e.Resource, e.ID)
}
