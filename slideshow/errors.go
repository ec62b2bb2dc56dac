package slideshow

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound covers absent search roots and images, folders without
	// images and images missing from their own folder.
	ErrNotFound = errors.New("not found")

	// ErrBadRequest reports a missing required identifier.
	ErrBadRequest = errors.New("bad request")

	// ErrExhausted is returned when a random walk used up its budget. It is a
	// kind of ErrNotFound.
	ErrExhausted = fmt.Errorf("%w: retry budget exhausted", ErrNotFound)

	// ErrOutsideRoot rejects relative paths escaping the collection root. It
	// is a kind of ErrNotFound so callers cannot probe the file system.
	ErrOutsideRoot = fmt.Errorf("%w: path outside root", ErrNotFound)
)

// StatusCode maps an engine error to an HTTP status code.
func StatusCode(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
