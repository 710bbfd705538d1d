package domain

import "errors"

// Every gateway failure falls into exactly one of four classes. Transport
// failures are plain wrapped errors from the HTTP layer; the remaining three
// have explicit discriminants so callers branch with errors.Is / errors.As
// instead of probing response fields.
var (
	// ErrUnauthenticated marks a response that carried the backend's
	// unauthenticated discriminator. It always wins over a plain
	// success:false body and always means "redirect to login".
	ErrUnauthenticated = errors.New("not authenticated")

	// ErrMalformedResponse marks a response missing the fields its operation
	// promises. Handled exactly like a transport failure.
	ErrMalformedResponse = errors.New("malformed response from server")

	// ErrNotFound marks a lookup that matched nothing in the fetched set.
	ErrNotFound = errors.New("not found")
)

// UnauthenticatedError builds an error that matches ErrUnauthenticated under
// errors.Is while preserving the server's own message for display.
func UnauthenticatedError(message string) error {
	return &unauthError{message: message}
}

type unauthError struct {
	message string
}

func (e *unauthError) Error() string {
	if e.message == "" {
		return ErrUnauthenticated.Error()
	}
	return e.message
}

func (e *unauthError) Is(target error) bool {
	return target == ErrUnauthenticated
}

// RemoteError is a well-formed rejection: the server was reachable and
// answered success:false with a message. Distinct from a transport failure,
// which means the server could not be reached at all.
type RemoteError struct {
	Message string
}

func (e *RemoteError) Error() string {
	if e.Message == "" {
		return "request rejected by server"
	}
	return e.Message
}

// AsRemote unwraps err into a RemoteError, or nil if it is not one.
func AsRemote(err error) *RemoteError {
	var re *RemoteError
	if errors.As(err, &re) {
		return re
	}
	return nil
}
