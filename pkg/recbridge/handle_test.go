package recbridge

import (
	"errors"
	"testing"
)

func TestAttachPersonNilReference(t *testing.T) {
	h, err := AttachPerson(nil)
	if h != nil {
		t.Fatal("AttachPerson(nil) returned a handle")
	}
	if !errors.Is(err, ErrNilReference) {
		t.Fatalf("AttachPerson(nil) error = %v, want ErrNilReference", err)
	}

	var opErr *Error
	if !errors.As(err, &opErr) || opErr.Op != "AttachPerson" {
		t.Fatalf("error should carry the failing op, got %v", err)
	}
}

func TestAttachContactNilReference(t *testing.T) {
	h, err := AttachContact(nil)
	if h != nil {
		t.Fatal("AttachContact(nil) returned a handle")
	}
	if !errors.Is(err, ErrNilReference) {
		t.Fatalf("AttachContact(nil) error = %v, want ErrNilReference", err)
	}
}
