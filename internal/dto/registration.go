package dto

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"

	"github.com/amm-colonia/inscripciones-api/internal/models"
)

// FormInt accepts a JSON number or a numeric string, as sent by HTML number inputs.
// Anything else decodes to zero and is left for validation to reject.
type FormInt int

// UnmarshalJSON implements json.Unmarshaler.
func (n *FormInt) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	var raw string
	if len(data) > 0 && data[0] == '"' {
		if err := json.Unmarshal(data, &raw); err != nil {
			*n = 0
			return nil
		}
	} else {
		raw = string(data)
	}
	if v, err := strconv.Atoi(strings.TrimSpace(raw)); err == nil {
		*n = FormInt(v)
		return nil
	}
	if f, err := strconv.ParseFloat(strings.TrimSpace(raw), 64); err == nil && f == float64(int(f)) {
		*n = FormInt(int(f))
		return nil
	}
	*n = 0
	return nil
}

// EmergencyContactRequest is the nested emergency contact block of the public form.
type EmergencyContactRequest struct {
	Name         string `json:"name" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Relationship string `json:"relationship" validate:"required"`
}

// AuthorizedPersonRequest is one optional pickup row.
type AuthorizedPersonRequest struct {
	Name         string `json:"name"`
	Relationship string `json:"relationship"`
	Phone        string `json:"phone"`
	DNI          string `json:"dni"`
}

// RegistrationRequest is the untrusted public form payload.
// Any createdAt or id sent by the client is ignored.
type RegistrationRequest struct {
	ChildName     string  `json:"childName" validate:"required"`
	ChildLastName string  `json:"childLastName" validate:"required"`
	Birthdate     string  `json:"birthdate" validate:"required,campdate"`
	Age           FormInt `json:"age" validate:"required,min=3,max=12"`
	DNI           string  `json:"dni" validate:"required"`
	SchoolGrade   string  `json:"schoolGrade" validate:"required"`

	ParentName     string `json:"parentName" validate:"required"`
	ParentLastName string `json:"parentLastName" validate:"required"`
	Relationship   string `json:"relationship" validate:"required,oneof=Madre Padre Tutor/a Otro"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,campemail"`
	Address        string `json:"address" validate:"required"`

	HealthInsurance string `json:"healthInsurance" validate:"required"`
	AffiliateNumber string `json:"affiliateNumber" validate:"required"`
	Allergies       string `json:"allergies"`
	Medications     string `json:"medications"`
	SpecialDiet     string `json:"specialDiet"`

	EmergencyContact EmergencyContactRequest `json:"emergencyContact"`

	Weeks               []string `json:"weeks" validate:"required,min=1,unique,dive,campweek"`
	MealPlan            bool     `json:"mealPlan"`
	DietaryRestrictions string   `json:"dietaryRestrictions"`

	AuthorizedPersons []AuthorizedPersonRequest `json:"authorizedPersons"`
	AdditionalInfo    string                    `json:"additionalInfo"`
	PhotoConsent      bool                      `json:"photoConsent"`
}

// Normalize returns a copy with surrounding whitespace removed from every text field, so
// required checks see what will be stored.
func (r RegistrationRequest) Normalize() RegistrationRequest {
	trim := strings.TrimSpace
	r.ChildName = trim(r.ChildName)
	r.ChildLastName = trim(r.ChildLastName)
	r.Birthdate = trim(r.Birthdate)
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
	r.EmergencyContact = EmergencyContactRequest{
		Name:         trim(r.EmergencyContact.Name),
		Phone:        trim(r.EmergencyContact.Phone),
		Relationship: trim(r.EmergencyContact.Relationship),
	}
	r.DietaryRestrictions = trim(r.DietaryRestrictions)
	r.AdditionalInfo = trim(r.AdditionalInfo)

	if r.Weeks != nil {
		weeks := make([]string, len(r.Weeks))
		for i, week := range r.Weeks {
			weeks[i] = trim(week)
		}
		r.Weeks = weeks
	}

	persons := make([]AuthorizedPersonRequest, len(r.AuthorizedPersons))
	for i, p := range r.AuthorizedPersons {
		persons[i] = AuthorizedPersonRequest{
			Name:         trim(p.Name),
			Relationship: trim(p.Relationship),
			Phone:        trim(p.Phone),
			DNI:          trim(p.DNI),
		}
	}
	r.AuthorizedPersons = persons
	return r
}

// ToModel normalizes the payload into a Registration without identity or creation time.
func (r RegistrationRequest) ToModel() models.Registration {
	persons := make([]models.AuthorizedPerson, 0, len(r.AuthorizedPersons))
	for _, p := range r.AuthorizedPersons {
		persons = append(persons, models.AuthorizedPerson{
			Name:         p.Name,
			Relationship: p.Relationship,
			Phone:        p.Phone,
			DNI:          p.DNI,
		})
	}

	weeks := make([]string, len(r.Weeks))
	copy(weeks, r.Weeks)

	return models.Registration{
		ChildName:       r.ChildName,
		ChildLastName:   r.ChildLastName,
		Birthdate:       models.ParseDateLike(r.Birthdate).CalendarDay(),
		Age:             int(r.Age),
		DNI:             r.DNI,
		SchoolGrade:     r.SchoolGrade,
		ParentName:      r.ParentName,
		ParentLastName:  r.ParentLastName,
		Relationship:    r.Relationship,
		Phone:           r.Phone,
		Email:           r.Email,
		Address:         r.Address,
		HealthInsurance: r.HealthInsurance,
		AffiliateNumber: r.AffiliateNumber,
		Allergies:       r.Allergies,
		Medications:     r.Medications,
		SpecialDiet:     r.SpecialDiet,
		EmergencyContact: models.EmergencyContact{
			Name:         r.EmergencyContact.Name,
			Phone:        r.EmergencyContact.Phone,
			Relationship: r.EmergencyContact.Relationship,
		},
		Weeks:               weeks,
		MealPlan:            r.MealPlan,
		DietaryRestrictions: r.DietaryRestrictions,
		AuthorizedPersons:   persons,
		AdditionalInfo:      r.AdditionalInfo,
		PhotoConsent:        r.PhotoConsent,
	}.Normalize()
}

// WeekOption describes one entry of the week catalog.
type WeekOption struct {
	Label string `json:"label"`
	Order int    `json:"order"`
}
