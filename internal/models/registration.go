package models

import (
	"encoding/json"
	"strings"
)

// Relationship is the guardian's relation to the child.
type Relationship string

const (
	RelationshipMother   Relationship = "Madre"
	RelationshipFather   Relationship = "Padre"
	RelationshipGuardian Relationship = "Tutor/a"
	RelationshipOther    Relationship = "Otro"
)

// Relationships lists the accepted guardian relationships in form order.
var Relationships = []Relationship{
	RelationshipMother,
	RelationshipFather,
	RelationshipGuardian,
	RelationshipOther,
}

// CampWeeks is the fixed catalog of week labels offered for enrollment.
var CampWeeks = []string{
	"1 al 5 de Enero",
	"8 al 12 de Enero",
	"15 al 19 de Enero",
	"22 al 26 de Enero",
	"29 de Enero al 2 de Febrero",
	"5 al 9 de Febrero",
	"12 al 16 de Febrero",
}

// IsCampWeek reports whether label belongs to the week catalog.
func IsCampWeek(label string) bool {
	for _, week := range CampWeeks {
		if week == label {
			return true
		}
	}
	return false
}

// EmergencyContact is the mandatory person to call when the guardian is unreachable.
type EmergencyContact struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Relationship string `json:"relationship"`
}

// AuthorizedPerson may pick the child up. Every field is optional.
type AuthorizedPerson struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	DNI          string `json:"dni"`
}

// IsBlank reports whether no field was filled in.
func (p AuthorizedPerson) IsBlank() bool {
	return strings.TrimSpace(p.Name) == "" &&
		strings.TrimSpace(p.Relationship) == "" &&
		strings.TrimSpace(p.Phone) == "" &&
		strings.TrimSpace(p.DNI) == ""
}

// Registration is one camp enrollment submission. It is never modified after creation.
type Registration struct {
	ID string `json:"id,omitempty"`

	ChildName     string   `json:"childName"`
	ChildLastName string   `json:"childLastName"`
	Birthdate     DateLike `json:"birthdate"`
	Age           int      `json:"age"`
	DNI           string   `json:"dni"`
	SchoolGrade   string   `json:"schoolGrade"`

	ParentName     string `json:"parentName"`
	ParentLastName string `json:"parentLastName"`
	Relationship   string `json:"relationship"`
	Phone          string `json:"phone"`
	Email          string `json:"email"`
	Address        string `json:"address"`

	HealthInsurance string `json:"healthInsurance"`
	AffiliateNumber string `json:"affiliateNumber"`
	Allergies       string `json:"allergies"`
	Medications     string `json:"medications"`
	SpecialDiet     string `json:"specialDiet"`

	EmergencyContact EmergencyContact `json:"emergencyContact"`

	Weeks               []string `json:"weeks"`
	MealPlan            bool     `json:"mealPlan"`
	DietaryRestrictions string   `json:"dietaryRestrictions"`

	AuthorizedPersons []AuthorizedPerson `json:"authorizedPersons"`
	AdditionalInfo    string             `json:"additionalInfo"`
	PhotoConsent      bool               `json:"photoConsent"`

	CreatedAt DateLike `json:"createdAt"`
}

// Normalize trims free text and drops authorized persons with no data.
func (r Registration) Normalize() Registration {
	trim := strings.TrimSpace
	r.ChildName = trim(r.ChildName)
	r.ChildLastName = trim(r.ChildLastName)
	r.DNI = trim(r.DNI)
	r.SchoolGrade = trim(r.SchoolGrade)
	r.ParentName = trim(r.ParentName)
	r.ParentLastName = trim(r.ParentLastName)
	r.Relationship = trim(r.Relationship)
	r.Phone = trim(r.Phone)
	r.Email = trim(r.Email)
	r.Address = trim(r.Address)
	r.HealthInsurance = trim(r.HealthInsurance)
	r.AffiliateNumber = trim(r.AffiliateNumber)
	r.Allergies = trim(r.Allergies)
	r.Medications = trim(r.Medications)
	r.SpecialDiet = trim(r.SpecialDiet)
	r.EmergencyContact = EmergencyContact{
		Name:         trim(r.EmergencyContact.Name),
		Phone:        trim(r.EmergencyContact.Phone),
		Relationship: trim(r.EmergencyContact.Relationship),
	}
	r.DietaryRestrictions = trim(r.DietaryRestrictions)
	r.AdditionalInfo = trim(r.AdditionalInfo)

	weeks := make([]string, 0, len(r.Weeks))
	for _, week := range r.Weeks {
		if w := trim(week); w != "" {
			weeks = append(weeks, w)
		}
	}
	r.Weeks = weeks

	persons := make([]AuthorizedPerson, 0, len(r.AuthorizedPersons))
	for _, p := range r.AuthorizedPersons {
		if p.IsBlank() {
			continue
		}
		persons = append(persons, AuthorizedPerson{
			Name:         trim(p.Name),
			Relationship: trim(p.Relationship),
			Phone:        trim(p.Phone),
			DNI:          trim(p.DNI),
		})
	}
	r.AuthorizedPersons = persons

	return r
}

// Document returns the JSON body persisted in the store. Identity and creation time live
// outside the document.
func (r Registration) Document() ([]byte, error) {
	r.ID = ""
	r.CreatedAt = DateLike{}
	return json.Marshal(r)
}
