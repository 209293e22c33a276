package bindings

import "errors"

// ErrNotBuilt is returned when the native bindings are unavailable, either
// because the module was built without cgo or on an unsupported platform.
var ErrNotBuilt = errors.New("bindings: native bindings not built")
