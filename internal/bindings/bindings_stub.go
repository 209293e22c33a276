//go:build !cgo || windows

package bindings

import "unsafe"

// Stub implementations for non-CGO builds or Windows. Built reports false,
// so callers reject attach attempts with ErrNotBuilt before any accessor
// can be reached; the zero returns below exist only to keep the package
// compiling.

// Built reports whether the native accessor bindings are compiled in.
func Built() bool { return false }

func PersonAge(unsafe.Pointer) uint32 { return 0 }

func PersonHeight(unsafe.Pointer) float64 { return 0 }

func PersonName(unsafe.Pointer) string { return "" }

func PersonContact(unsafe.Pointer) unsafe.Pointer { return nil }

func ContactEmail(unsafe.Pointer) string { return "" }

func ContactPhone(unsafe.Pointer) string { return "" }

func ContactAddress(unsafe.Pointer) unsafe.Pointer { return nil }

func AddressStreet(unsafe.Pointer) string { return "" }

func AddressCity(unsafe.Pointer) string { return "" }

func AddressPostalCode(unsafe.Pointer) string { return "" }
