package recbridge

import (
	"errors"
	"fmt"
)

var (
	// ErrNotBuilt indicates the module was built without the native
	// bindings (no cgo, or an unsupported platform), so foreign handles
	// cannot be attached.
	ErrNotBuilt = errors.New("recbridge: native bindings not built")

	// ErrNilReference indicates a nil foreign reference was passed where
	// a live object was required.
	ErrNilReference = errors.New("recbridge: nil foreign reference")
)

// Error wraps an underlying error with the operation that failed.
type Error struct {
	Op  string // Operation that failed
	Err error  // Underlying error
}

func (e *Error) Error() string {
	return fmt.Sprintf("recbridge.%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}
