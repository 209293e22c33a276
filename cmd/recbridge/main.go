package main

import (
	"flag"
	"log"
	"os"

	"github.com/recbridge/recbridge-go/pkg/recbridge"
)

func main() {
	weight := flag.Float64("weight", 70.0, "weight in kilograms for the health analysis")
	flag.Parse()

	person := recbridge.Person{
		Age:    34,
		Height: 1.75,
		Name:   "Alice",
		Contact: recbridge.ContactInfo{
			Email: "alice@example.com",
			Phone: "5551234567",
			Address: recbridge.Address{
				Street:     "350 Fifth Ave",
				City:       "New York",
				PostalCode: "10118",
			},
		},
	}

	recbridge.GreetPerson(os.Stdout, person.Name)

	info := recbridge.ProcessPerson(person.View())
	log.Printf("person: adult=%v bmi_category=%s name_length=%d city=%s",
		info.IsAdult, info.BMICategory, info.NameLength, info.City)

	analysis := recbridge.AnalyzeHealth(person.View(), *weight)
	log.Printf("health: bmi=%.2f risk_score=%.2f city_factor=%.2f",
		analysis.BMI, analysis.RiskScore, analysis.CityRiskFactor)
	log.Printf("recommendation: %s", analysis.Recommendation)

	if !recbridge.ValidateContact(person.Contact.View()) {
		log.Printf("contact record failed validation")
	}
}
