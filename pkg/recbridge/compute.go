package recbridge

import (
	"fmt"
	"io"
	"strings"
)

// assumedWeightKg stands in for a real weight in ProcessPerson. The source
// data carries no weight field, so the BMI there is indicative only; see
// ProcessPerson's doc comment.
const assumedWeightKg = 70.0

// Recommendation texts selected by AnalyzeHealth.
const (
	RecommendationExcellent = "Excellent health profile. Maintain current lifestyle."
	RecommendationGood      = "Good health. Consider minor lifestyle adjustments."
	RecommendationElevated  = "Elevated risk factors. Recommend consultation with healthcare provider."
)

// ProcessPerson derives a PersonInfo from any person view.
//
// The BMI category uses an assumed weight of 70 kg because person records
// carry no weight field; callers that have an actual weight should use
// AnalyzeHealth instead. NameLength is the UTF-8 byte count of the name,
// matching len() on both sides of the boundary.
func ProcessPerson(p PersonView) PersonInfo {
	age := p.Age()
	height := p.Height()
	name := p.Name()
	city := p.Contact().Address().City()

	bmi := CalculateBMI(assumedWeightKg, height)

	return PersonInfo{
		IsAdult:     age >= 18,
		BMICategory: categorizeBMI(bmi),
		NameLength:  len(name),
		City:        city,
	}
}

// AnalyzeHealth scores a person's health risk from age, BMI, and city.
//
// The risk score is the product of three factors: 1.5 for ages outside
// [18, 65] else 1.0; 1.3 for BMI outside [18.5, 25.0] else 1.0; and a
// city factor of 1.2 for "New York", 1.1 for "Los Angeles" (exact,
// case-sensitive match), else 1.0.
func AnalyzeHealth(p PersonView, weightKg float64) HealthAnalysis {
	age := p.Age()
	height := p.Height()
	city := p.Contact().Address().City()

	bmi := CalculateBMI(weightKg, height)

	ageRisk := 1.0
	if age < 18 || age > 65 {
		ageRisk = 1.5
	}

	bmiRisk := 1.0
	if bmi < 18.5 || bmi > 25.0 {
		bmiRisk = 1.3
	}

	cityRisk := 1.0
	switch city {
	case "New York":
		cityRisk = 1.2
	case "Los Angeles":
		cityRisk = 1.1
	}

	riskScore := ageRisk * bmiRisk * cityRisk

	var recommendation string
	switch {
	case riskScore < 1.2:
		recommendation = RecommendationExcellent
	case riskScore < 1.5:
		recommendation = RecommendationGood
	default:
		recommendation = RecommendationElevated
	}

	return HealthAnalysis{
		BMI:            bmi,
		RiskScore:      riskScore,
		Recommendation: recommendation,
		CityRiskFactor: cityRisk,
	}
}

// CalculateBMI returns weight / height². A non-positive height yields 0
// rather than a division fault.
func CalculateBMI(weightKg, heightM float64) float64 {
	if heightM <= 0 {
		return 0
	}
	return weightKg / (heightM * heightM)
}

// categorizeBMI maps a BMI value to its category. Total over all inputs:
// below 18.5 is underweight, [18.5, 25.0) is normal, 25.0 and above is
// overweight.
func categorizeBMI(bmi float64) BMICategory {
	switch {
	case bmi < 18.5:
		return Underweight
	case bmi < 25.0:
		return Normal
	default:
		return Overweight
	}
}

// ValidateContact checks a contact record. All four conditions must hold:
// the email contains '@' and is longer than 3 bytes, the phone has at
// least 7 bytes, the city is non-empty, and the postal code has at least
// 5 bytes.
func ValidateContact(c ContactView) bool {
	email := c.Email()
	phone := c.Phone()
	addr := c.Address()
	city := addr.City()
	postal := addr.PostalCode()

	emailValid := strings.ContainsRune(email, '@') && len(email) > 3
	phoneValid := len(phone) >= 7
	cityValid := city != ""
	postalValid := len(postal) >= 5

	return emailValid && phoneValid && cityValid && postalValid
}

// GreetPerson writes a greeting to out and returns the UTF-8 byte count of
// the name, or 0 for an empty name. The greeting is diagnostic output, not
// part of the functional contract; a nil out discards it.
func GreetPerson(out io.Writer, name string) int {
	if out == nil {
		out = io.Discard
	}
	if name == "" {
		fmt.Fprintln(out, "Hello, stranger!")
		return 0
	}
	fmt.Fprintf(out, "Hello from Go, %s!\n", name)
	return len(name)
}
