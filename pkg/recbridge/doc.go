// Package recbridge provides a Go boundary layer over person records owned
// by a foreign (C/C++) runtime, together with the computations that run on
// them.
//
// # Architecture
//
// Two access models satisfy the same view interfaces, so every computation
// is written once:
//
//   - Opaque-handle model: PersonHandle, ContactHandle, and AddressHandle
//     wrap non-owning references to foreign objects. Each field read crosses
//     the boundary through a declared accessor; strings are copied into Go
//     memory at the boundary.
//
//   - Value-transfer model: Person, ContactInfo, and Address are plain
//     records with the same layout on both sides. Crossing the boundary
//     performs a deep copy, strings included, after which every field read
//     is a plain Go field access with no boundary crossing.
//
// Computations (ProcessPerson, AnalyzeHealth, CalculateBMI, ValidateContact,
// GreetPerson) accept the view interfaces and return freshly constructed
// result records (PersonInfo, HealthAnalysis).
//
// Example, value model:
//
//	p := recbridge.Person{
//		Age:    34,
//		Height: 1.75,
//		Name:   "Alice",
//		Contact: recbridge.ContactInfo{
//			Email: "alice@example.com",
//			Phone: "5551234567",
//			Address: recbridge.Address{
//				Street:     "1 Main St",
//				City:       "Boston",
//				PostalCode: "02134",
//			},
//		},
//	}
//	info := recbridge.ProcessPerson(p.View())
//
// Example, handle model (requires the native bindings):
//
//	h, err := recbridge.AttachPerson(ref)
//	if err != nil {
//		return err
//	}
//	info := recbridge.ProcessPerson(h)
//
// # Safety
//
//   - A handle is a non-owning reference. The foreign object must outlive
//     every accessor call made through the handle; reading through a handle
//     whose object has been destroyed is undefined behavior. Do not retain
//     handles across calls into foreign code that may free the object.
//
//   - All operations are stateless and reentrant. Concurrent reads of the
//     same foreign object are safe provided no side mutates it while a read
//     is in flight; the bridge performs no locking of its own.
//
//   - No foreign exception crosses the boundary. Anticipated failures are
//     sentinel values: BMI on a non-positive height is 0, and undecodable
//     foreign text is sanitized rather than rejected.
//
// # Performance
//
// Under the handle model every field read is a cgo call (~100-200ns). Code
// that reads many fields of the same record repeatedly is better served by
// the value model, which pays one deep copy up front and reads for free
// afterwards.
package recbridge
