package models

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
	"time"
)

// ParseRegistration maps a stored document onto a Registration. It is applied to every
// document read from the store and never fails: a field of an unexpected type degrades to
// its zero value, and a body that is not a JSON object yields only identity and creation time.
// createdAt, when set, takes precedence over any createdAt found inside the document.
func ParseRegistration(id string, createdAt time.Time, raw []byte) Registration {
	reg := Registration{ID: id, CreatedAt: Instant(createdAt)}

	var doc map[string]json.RawMessage
	if err := json.Unmarshal(raw, &doc); err != nil || doc == nil {
		return reg
	}

	reg.ChildName = text(doc["childName"])
	reg.ChildLastName = text(doc["childLastName"])
	reg.Birthdate = decodeDateLike(doc["birthdate"])
	reg.Age = integer(doc["age"])
	reg.DNI = text(doc["dni"])
	reg.SchoolGrade = text(doc["schoolGrade"])

	reg.ParentName = text(doc["parentName"])
	reg.ParentLastName = text(doc["parentLastName"])
	reg.Relationship = text(doc["relationship"])
	reg.Phone = text(doc["phone"])
	reg.Email = text(doc["email"])
	reg.Address = text(doc["address"])

	reg.HealthInsurance = text(doc["healthInsurance"])
	reg.AffiliateNumber = text(doc["affiliateNumber"])
	reg.Allergies = text(doc["allergies"])
	reg.Medications = text(doc["medications"])
	reg.SpecialDiet = text(doc["specialDiet"])

	contact := object(doc["emergencyContact"])
	reg.EmergencyContact = EmergencyContact{
		Name:         text(contact["name"]),
		Phone:        text(contact["phone"]),
		Relationship: text(contact["relationship"]),
	}

	reg.Weeks = textList(doc["weeks"])
	reg.MealPlan = boolean(doc["mealPlan"])
	reg.DietaryRestrictions = text(doc["dietaryRestrictions"])

	reg.AuthorizedPersons = persons(doc["authorizedPersons"])
	reg.AdditionalInfo = text(doc["additionalInfo"])
	reg.PhotoConsent = boolean(doc["photoConsent"])

	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = decodeDateLike(doc["createdAt"])
	}

	return reg
}

func text(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return ""
	}
	switch raw[0] {
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return strings.TrimSpace(s)
	case '-', '0', '1', '2', '3', '4', '5', '6', '7', '8', '9':
		var n json.Number
		if err := json.Unmarshal(raw, &n); err != nil {
			return ""
		}
		return n.String()
	default:
		return ""
	}
}

func integer(raw json.RawMessage) int {
	value := text(raw)
	if value == "" {
		return 0
	}
	if n, err := strconv.Atoi(value); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return int(f)
	}
	return 0
}

func boolean(raw json.RawMessage) bool {
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	switch strings.ToLower(text(raw)) {
	case "true", "1", "si", "sí", "on", "yes":
		return true
	}
	return false
}

func object(raw json.RawMessage) map[string]json.RawMessage {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil
	}
	return fields
}

func array(raw json.RawMessage) []json.RawMessage {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil
	}
	return items
}

// textList accepts either an array of strings or a single string.
func textList(raw json.RawMessage) []string {
	items := array(raw)
	if items == nil {
		if single := text(raw); single != "" {
			return []string{single}
		}
		return []string{}
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s := text(item); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func persons(raw json.RawMessage) []AuthorizedPerson {
	items := array(raw)
	out := make([]AuthorizedPerson, 0, len(items))
	for _, item := range items {
		fields := object(item)
		if fields == nil {
			continue
		}
		person := AuthorizedPerson{
			Name:         text(fields["name"]),
			Relationship: text(fields["relationship"]),
			Phone:        text(fields["phone"]),
			DNI:          text(fields["dni"]),
		}
		if person.IsBlank() {
			continue
		}
		out = append(out, person)
	}
	return out
}
