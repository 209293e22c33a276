// Package bindings contains all CGO bindings to the foreign record objects.
//
// # Design Principles
//
// 1. Isolation: ALL CGO accessor code lives in this package (plus the
//    //export shims in internal/export). No other package imports "C".
//
// 2. Copy at the boundary: foreign string views (recbridge_str) are valid
//    only for the duration of the accessor call, so every read is copied
//    into a Go string before it is returned. Go code never holds a view
//    into foreign memory.
//
// 3. Sentinels over errors: accessors signal failure with sentinel values
//    (zero primitives, sanitized or empty strings), never with foreign
//    exceptions or panics. No error type crosses the boundary.
//
// 4. No lifetime tracking: a reference passed to an accessor must outlive
//    the call. Calling an accessor with a reference to a destroyed object
//    is undefined behavior; the caller owns reference lifetimes and the
//    bridge provides no safety net.
//
// The package compiles without cgo (and on Windows) via stub twins that
// report ErrNotBuilt through Built().
package bindings
