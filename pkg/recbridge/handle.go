package recbridge

import (
	"unsafe"

	"github.com/recbridge/recbridge-go/internal/bindings"
)

// PersonHandle is a non-owning reference to a foreign Person. Every field
// read crosses the boundary through a declared accessor; string reads are
// copied into Go memory at the boundary.
//
// The foreign object must remain alive for every read made through the
// handle. Reading through a handle whose object has been destroyed is
// undefined behavior; the bridge cannot detect it.
type PersonHandle struct {
	ptr unsafe.Pointer
}

// AttachPerson wraps a foreign Person reference in a handle. It fails with
// ErrNilReference for a nil reference and ErrNotBuilt when the native
// bindings are not compiled in.
func AttachPerson(ref unsafe.Pointer) (*PersonHandle, error) {
	if ref == nil {
		return nil, &Error{Op: "AttachPerson", Err: ErrNilReference}
	}
	if !bindings.Built() {
		return nil, &Error{Op: "AttachPerson", Err: ErrNotBuilt}
	}
	return &PersonHandle{ptr: ref}, nil
}

// Age reads the person's age across the boundary.
func (h *PersonHandle) Age() uint32 { return bindings.PersonAge(h.ptr) }

// Height reads the person's height in meters across the boundary.
func (h *PersonHandle) Height() float64 { return bindings.PersonHeight(h.ptr) }

// Name reads the person's name as a Go copy.
func (h *PersonHandle) Name() string { return bindings.PersonName(h.ptr) }

// Contact returns a handle view of the nested foreign ContactInfo. The
// returned view is only as valid as the Person it came from.
func (h *PersonHandle) Contact() ContactView {
	return &ContactHandle{ptr: bindings.PersonContact(h.ptr)}
}

// ContactHandle is a non-owning reference to a foreign ContactInfo.
type ContactHandle struct {
	ptr unsafe.Pointer
}

// AttachContact wraps a foreign ContactInfo reference in a handle, with
// the same failure modes as AttachPerson.
func AttachContact(ref unsafe.Pointer) (*ContactHandle, error) {
	if ref == nil {
		return nil, &Error{Op: "AttachContact", Err: ErrNilReference}
	}
	if !bindings.Built() {
		return nil, &Error{Op: "AttachContact", Err: ErrNotBuilt}
	}
	return &ContactHandle{ptr: ref}, nil
}

// Email reads the contact's email as a Go copy.
func (h *ContactHandle) Email() string { return bindings.ContactEmail(h.ptr) }

// Phone reads the contact's phone number as a Go copy.
func (h *ContactHandle) Phone() string { return bindings.ContactPhone(h.ptr) }

// Address returns a handle view of the nested foreign Address.
func (h *ContactHandle) Address() AddressView {
	return &AddressHandle{ptr: bindings.ContactAddress(h.ptr)}
}

// AddressHandle is a non-owning reference to a foreign Address.
type AddressHandle struct {
	ptr unsafe.Pointer
}

// Street reads the street as a Go copy.
func (h *AddressHandle) Street() string { return bindings.AddressStreet(h.ptr) }

// City reads the city as a Go copy.
func (h *AddressHandle) City() string { return bindings.AddressCity(h.ptr) }

// PostalCode reads the postal code as a Go copy.
func (h *AddressHandle) PostalCode() string { return bindings.AddressPostalCode(h.ptr) }
