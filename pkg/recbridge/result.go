package recbridge

// BMICategory classifies a BMI value. The integer values are part of the
// boundary contract (they travel as a uint8 in recbridge_person_info).
type BMICategory uint8

const (
	// Underweight is BMI below 18.5.
	Underweight BMICategory = 0
	// Normal is BMI in [18.5, 25.0).
	Normal BMICategory = 1
	// Overweight is BMI of 25.0 and above.
	Overweight BMICategory = 2
)

// String returns a human-readable name for the category.
func (c BMICategory) String() string {
	switch c {
	case Underweight:
		return "underweight"
	case Normal:
		return "normal"
	case Overweight:
		return "overweight"
	default:
		return "unknown"
	}
}

// PersonInfo is the result record produced by ProcessPerson. It is
// constructed fully populated, returned once, and never retained or
// mutated by the bridge afterwards.
type PersonInfo struct {
	// IsAdult reports age >= 18.
	IsAdult bool
	// BMICategory classifies the BMI computed from the assumed weight.
	BMICategory BMICategory
	// NameLength is the UTF-8 byte count of the person's name.
	NameLength int
	// City is extracted from the nested address.
	City string
}

// HealthAnalysis is the result record produced by AnalyzeHealth.
type HealthAnalysis struct {
	// BMI is weight / height², or 0 when height is not positive.
	BMI float64
	// RiskScore is the product of the age, BMI, and city risk factors,
	// always greater than zero.
	RiskScore float64
	// Recommendation is the advice text selected from the risk score.
	Recommendation string
	// CityRiskFactor is the city component of the risk score.
	CityRiskFactor float64
}
