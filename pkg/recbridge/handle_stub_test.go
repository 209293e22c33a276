//go:build !cgo || windows

package recbridge

import (
	"errors"
	"testing"
	"unsafe"
)

// Without the native bindings, attaching a live-looking reference must fail
// up front with ErrNotBuilt instead of deferring the failure to a read.
func TestAttachWithoutBindings(t *testing.T) {
	var placeholder int
	ref := unsafe.Pointer(&placeholder)

	if _, err := AttachPerson(ref); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("AttachPerson error = %v, want ErrNotBuilt", err)
	}
	if _, err := AttachContact(ref); !errors.Is(err, ErrNotBuilt) {
		t.Fatalf("AttachContact error = %v, want ErrNotBuilt", err)
	}
}
