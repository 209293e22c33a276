// Package internalcheck holds repo-wide policy tests for recbridge-go.
//
// The tests here load the module's source with go/packages and enforce
// invariants that ordinary unit tests cannot see, such as cgo isolation.
// The package is not intended for external use and its API may change
// without notice.
package internalcheck
