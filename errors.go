package textbuf

import "github.com/pkg/errors"

// Errors returned by buffer operations. Callers receive them wrapped with the
// path and underlying cause; use errors.Is to test for them.
var (
	// ErrLoad indicates the source file could not be read. There is no recovery
	// path; applications abort startup.
	ErrLoad = errors.New("cannot load source file")

	// ErrSave indicates the source file could not be written.
	ErrSave = errors.New("cannot save source file")

	// ErrInvalidConfig indicates a configuration file could not be decoded.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrNoLexer indicates no chroma lexer matches a file name.
	ErrNoLexer = errors.New("no lexer for file")
)

// wrapError attaches sentinel to cause so that both errors.Is(err, sentinel)
// and the cause's message are preserved.
func wrapError(sentinel, cause error, path string) error {
	return &pathError{sentinel: sentinel, cause: cause, path: path}
}

type pathError struct {
	sentinel error
	cause    error
	path     string
}

func (e *pathError) Error() string {
	if e.cause == nil {
		return e.sentinel.Error() + " " + e.path
	}
	return e.sentinel.Error() + " " + e.path + ": " + e.cause.Error()
}

func (e *pathError) Is(target error) bool {
	return target == e.sentinel
}

func (e *pathError) Unwrap() error {
	return e.cause
}
