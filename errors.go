package pdf

import "errors"

// Error kinds raised by this package.
var (
	// ErrInvalidPassword is returned at document construction when an R2-R4
	// password contains a code point above 0xFF.
	ErrInvalidPassword = errors.New("pdf: password contains a character outside Latin-1")

	// ErrNoPasswordConfigured is returned when the security handler is
	// constructed without either a user or an owner password.
	ErrNoPasswordConfigured = errors.New("pdf: encryption requires a user or owner password")

	// ErrWriteAfterEnd is returned when a producer writes to or mutates an
	// indirect object handle after End has already been called on it.
	ErrWriteAfterEnd = errors.New("pdf: write or mutation after object was ended")

	// ErrEmptyDocument is returned by Document.End when no pages were added.
	ErrEmptyDocument = errors.New("pdf: document has no pages")

	// errDoubleEnd is not surfaced to callers: a second call to a handle's
	// End method is silently ignored. The sentinel only names the
	// condition; nothing in the package returns it.
	errDoubleEnd = errors.New("pdf: object already ended")
)

// SinkError wraps an error returned by the byte sink the document writes
// to. Once a SinkError has been observed the Document is poisoned: no
// further writes should be attempted.
type SinkError struct {
	Err error
}

func (e *SinkError) Error() string { return "pdf: write to output failed: " + e.Err.Error() }

func (e *SinkError) Unwrap() error { return e.Err }
