package render

import (
	"time"

	"pgregory.net/rapid"

	"github.com/amm-colonia/inscripciones-api/internal/models"
)

var testOptions = Options{
	CampName:  "Colonia de Verano AMM 2025",
	Location:  time.FixedZone("ART", -3*60*60),
	SheetName: "Registros Colonia 2025",
}

func sampleRegistration() models.Registration {
	return models.Registration{
		ID:               "r1",
		ChildName:        "Ana",
		ChildLastName:    "Gomez",
		Birthdate:        models.CalendarDate(2019, time.May, 4),
		Age:              5,
		DNI:              "50111222",
		SchoolGrade:      "Sala de 5",
		ParentName:       "Maria",
		ParentLastName:   "Gomez",
		Relationship:     "Madre",
		Phone:            "1155550000",
		Email:            "a@b.com",
		Address:          "Calle 123",
		HealthInsurance:  "OSDE",
		AffiliateNumber:  "A-1",
		EmergencyContact: models.EmergencyContact{Name: "Luis", Phone: "123", Relationship: "Padre"},
		Weeks:            []string{"8 al 12 de Enero", "1 al 5 de Enero"},
		MealPlan:         true,
		AuthorizedPersons: []models.AuthorizedPerson{
			{Name: "Rosa", Relationship: "Abuela", Phone: "111", DNI: "20333444"},
		},
		PhotoConsent: false,
		CreatedAt:    models.Instant(time.Date(2025, time.January, 2, 1, 30, 0, 0, time.UTC)),
	}
}

func text() *rapid.Generator[string] {
	return rapid.StringMatching(`[a-zA-Z0-9 <>&"'ñáé]{0,12}`)
}

func genRegistration() *rapid.Generator[models.Registration] {
	return rapid.Custom(func(t *rapid.T) models.Registration {
		persons := rapid.SliceOfN(rapid.Custom(func(t *rapid.T) models.AuthorizedPerson {
			return models.AuthorizedPerson{
				Name:         text().Draw(t, "personName"),
				Relationship: text().Draw(t, "personRelationship"),
				Phone:        text().Draw(t, "personPhone"),
				DNI:          text().Draw(t, "personDNI"),
			}
		}), 0, 3).Draw(t, "persons")

		return models.Registration{
			ChildName:     text().Draw(t, "childName"),
			ChildLastName: text().Draw(t, "childLastName"),
			Birthdate: models.CalendarDate(
				rapid.IntRange(2012, 2022).Draw(t, "year"),
				time.Month(rapid.IntRange(1, 12).Draw(t, "month")),
				rapid.IntRange(1, 28).Draw(t, "day"),
			),
			Age:            rapid.IntRange(3, 12).Draw(t, "age"),
			DNI:            text().Draw(t, "dni"),
			ParentName:     text().Draw(t, "parentName"),
			Email:          text().Draw(t, "email"),
			Allergies:      text().Draw(t, "allergies"),
			AdditionalInfo: text().Draw(t, "additionalInfo"),
			EmergencyContact: models.EmergencyContact{
				Name:         text().Draw(t, "contactName"),
				Phone:        text().Draw(t, "contactPhone"),
				Relationship: text().Draw(t, "contactRelationship"),
			},
			Weeks:             rapid.SliceOfN(rapid.SampledFrom(models.CampWeeks), 1, 7).Draw(t, "weeks"),
			MealPlan:          rapid.Bool().Draw(t, "mealPlan"),
			AuthorizedPersons: persons,
			PhotoConsent:      rapid.Bool().Draw(t, "photoConsent"),
			CreatedAt:         models.Instant(time.Unix(rapid.Int64Range(1.6e9, 1.8e9).Draw(t, "createdAt"), 0)),
		}
	})
}
