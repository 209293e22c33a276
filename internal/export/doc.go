// Package export exposes the computation entry points to the foreign side.
//
// When the module is built as a c-archive or c-shared library, the
// //export'ed functions here become the C symbols declared alongside
// internal/bindings/recbridge.h: recbridge_process_person,
// recbridge_analyze_health, recbridge_calculate_bmi,
// recbridge_validate_contact, recbridge_greet_person, and their by-value
// variants. Each shim resolves its foreign arguments through pkg/recbridge
// and marshals the result record into the caller-owned C struct.
//
// Nothing inside the module imports this package; it is linked into the
// library artifact for the foreign caller's benefit only.
package export
