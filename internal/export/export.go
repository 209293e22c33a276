//go:build cgo && !windows

package export

/*
#cgo CFLAGS: -I${SRCDIR}/../bindings
#include <stdlib.h>
#include "recbridge.h"
*/
import "C"

import (
	"os"
	"unsafe"

	"github.com/recbridge/recbridge-go/internal/bindings"
	"github.com/recbridge/recbridge-go/pkg/recbridge"
)

// attachPerson resolves a foreign reference into a view, or nil when the
// reference is unusable. Failures surface as zeroed result records; no
// error type crosses the boundary.
func attachPerson(person *C.recbridge_person_ref) recbridge.PersonView {
	h, err := recbridge.AttachPerson(unsafe.Pointer(person))
	if err != nil {
		return nil
	}
	return h
}

// copyString deep-copies a NUL-terminated C string into Go memory,
// sanitizing the encoding on the way in.
func copyString(s *C.char) string {
	if s == nil {
		return ""
	}
	return bindings.SanitizeText(C.GoString(s))
}

// personFromValue deep-copies a by-value shared record into an owned Go
// Person. After this returns, the Go side holds no reference into the
// caller's memory.
func personFromValue(p *C.recbridge_person) recbridge.Person {
	return recbridge.Person{
		Age:    uint32(p.age),
		Height: float64(p.height),
		Name:   copyString(p.name),
		Contact: recbridge.ContactInfo{
			Email: copyString(p.contact.email),
			Phone: copyString(p.contact.phone),
			Address: recbridge.Address{
				Street:     copyString(p.contact.address.street),
				City:       copyString(p.contact.address.city),
				PostalCode: copyString(p.contact.address.postal_code),
			},
		},
	}
}

// personInfoToC marshals a result record into the C layout. String fields
// are malloc'd copies owned by the caller; recbridge_person_info_free
// releases them.
func personInfoToC(info recbridge.PersonInfo) C.recbridge_person_info {
	var out C.recbridge_person_info
	out.is_adult = C.bool(info.IsAdult)
	out.bmi_category = C.uint8_t(info.BMICategory)
	out.name_length = C.size_t(info.NameLength)
	out.city = C.CString(info.City)
	return out
}

func healthAnalysisToC(analysis recbridge.HealthAnalysis) C.recbridge_health_analysis {
	var out C.recbridge_health_analysis
	out.bmi = C.double(analysis.BMI)
	out.risk_score = C.double(analysis.RiskScore)
	out.recommendation = C.CString(analysis.Recommendation)
	out.city_risk_factor = C.double(analysis.CityRiskFactor)
	return out
}

//export recbridge_process_person
func recbridge_process_person(person *C.recbridge_person_ref) C.recbridge_person_info {
	v := attachPerson(person)
	if v == nil {
		return C.recbridge_person_info{}
	}
	return personInfoToC(recbridge.ProcessPerson(v))
}

//export recbridge_process_person_value
func recbridge_process_person_value(person *C.recbridge_person) C.recbridge_person_info {
	if person == nil {
		return C.recbridge_person_info{}
	}
	p := personFromValue(person)
	return personInfoToC(recbridge.ProcessPerson(p.View()))
}

//export recbridge_analyze_health
func recbridge_analyze_health(person *C.recbridge_person_ref, weightKg C.double) C.recbridge_health_analysis {
	v := attachPerson(person)
	if v == nil {
		return C.recbridge_health_analysis{}
	}
	return healthAnalysisToC(recbridge.AnalyzeHealth(v, float64(weightKg)))
}

//export recbridge_analyze_health_value
func recbridge_analyze_health_value(person *C.recbridge_person, weightKg C.double) C.recbridge_health_analysis {
	if person == nil {
		return C.recbridge_health_analysis{}
	}
	p := personFromValue(person)
	return healthAnalysisToC(recbridge.AnalyzeHealth(p.View(), float64(weightKg)))
}

//export recbridge_calculate_bmi
func recbridge_calculate_bmi(weightKg, heightM C.double) C.double {
	return C.double(recbridge.CalculateBMI(float64(weightKg), float64(heightM)))
}

//export recbridge_validate_contact
func recbridge_validate_contact(contact *C.recbridge_contact_ref) C.bool {
	h, err := recbridge.AttachContact(unsafe.Pointer(contact))
	if err != nil {
		return C.bool(false)
	}
	return C.bool(recbridge.ValidateContact(h))
}

//export recbridge_greet_person
func recbridge_greet_person(name C.recbridge_str) C.size_t {
	var s string
	if name.data != nil && name.len > 0 {
		s = bindings.SanitizeText(C.GoStringN(name.data, C.int(name.len)))
	}
	return C.size_t(recbridge.GreetPerson(os.Stdout, s))
}

//export recbridge_person_info_free
func recbridge_person_info_free(info *C.recbridge_person_info) {
	if info == nil || info.city == nil {
		return
	}
	C.free(unsafe.Pointer(info.city))
	info.city = nil
}

//export recbridge_health_analysis_free
func recbridge_health_analysis_free(analysis *C.recbridge_health_analysis) {
	if analysis == nil || analysis.recommendation == nil {
		return
	}
	C.free(unsafe.Pointer(analysis.recommendation))
	analysis.recommendation = nil
}
