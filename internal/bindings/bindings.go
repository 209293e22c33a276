//go:build cgo && !windows

package bindings

/*
#cgo CFLAGS: -I${SRCDIR}
#include "recbridge.h"
*/
import "C"

import (
	"unsafe"
)

// Built reports whether the native accessor bindings are compiled in.
func Built() bool { return true }

// goText copies a foreign string view into a Go string. The view is only
// valid for the duration of the accessor call, so the copy happens before
// control returns to the caller.
func goText(s C.recbridge_str) string {
	if s.data == nil || s.len == 0 {
		return ""
	}
	return SanitizeText(C.GoStringN(s.data, C.int(s.len)))
}

// PersonAge reads the age field of a foreign Person.
func PersonAge(p unsafe.Pointer) uint32 {
	return uint32(C.recbridge_get_person_age((*C.recbridge_person_ref)(p)))
}

// PersonHeight reads the height field of a foreign Person, in meters.
func PersonHeight(p unsafe.Pointer) float64 {
	return float64(C.recbridge_get_person_height((*C.recbridge_person_ref)(p)))
}

// PersonName reads the name of a foreign Person as a Go copy.
func PersonName(p unsafe.Pointer) string {
	return goText(C.recbridge_get_person_name((*C.recbridge_person_ref)(p)))
}

// PersonContact returns a reference to the nested foreign ContactInfo.
// The reference is only as valid as the Person it came from.
func PersonContact(p unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.recbridge_get_person_contact((*C.recbridge_person_ref)(p)))
}

// ContactEmail reads the email of a foreign ContactInfo as a Go copy.
func ContactEmail(c unsafe.Pointer) string {
	return goText(C.recbridge_get_contact_email((*C.recbridge_contact_ref)(c)))
}

// ContactPhone reads the phone number of a foreign ContactInfo as a Go copy.
func ContactPhone(c unsafe.Pointer) string {
	return goText(C.recbridge_get_contact_phone((*C.recbridge_contact_ref)(c)))
}

// ContactAddress returns a reference to the nested foreign Address.
func ContactAddress(c unsafe.Pointer) unsafe.Pointer {
	return unsafe.Pointer(C.recbridge_get_contact_address((*C.recbridge_contact_ref)(c)))
}

// AddressStreet reads the street of a foreign Address as a Go copy.
func AddressStreet(a unsafe.Pointer) string {
	return goText(C.recbridge_get_address_street((*C.recbridge_address_ref)(a)))
}

// AddressCity reads the city of a foreign Address as a Go copy.
func AddressCity(a unsafe.Pointer) string {
	return goText(C.recbridge_get_address_city((*C.recbridge_address_ref)(a)))
}

// AddressPostalCode reads the postal code of a foreign Address as a Go copy.
func AddressPostalCode(a unsafe.Pointer) string {
	return goText(C.recbridge_get_address_postal_code((*C.recbridge_address_ref)(a)))
}
