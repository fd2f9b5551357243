// Package render turns registrations into the confirmation email and the admin spreadsheet.
// Every function here is pure: the same input always yields byte-identical output.
package render

import (
	"strconv"
	"strings"
	"time"

	"github.com/amm-colonia/inscripciones-api/internal/models"
)

const (
	// NotProvided replaces empty optional fields in emails.
	NotProvided = "No informado"
	// NotAvailable replaces empty optional fields and unreadable dates in spreadsheets.
	NotAvailable = "N/A"
)

// Options carries the season labels shared by both renderers.
type Options struct {
	CampName  string
	Location  *time.Location
	SheetName string
}

func (o Options) location() *time.Location {
	if o.Location == nil {
		return time.UTC
	}
	return o.Location
}

func yesNo(v bool) string {
	if v {
		return "Sí"
	}
	return "No"
}

func orDefault(value, fallback string) string {
	if strings.TrimSpace(value) == "" {
		return fallback
	}
	return value
}

func formatDate(d models.DateLike, loc *time.Location, fallback string) string {
	return orDefault(d.Format(loc), fallback)
}

func formatAge(age int, suffix, fallback string) string {
	if age <= 0 {
		return fallback
	}
	return strconv.Itoa(age) + suffix
}

func fullName(first, last string) string {
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
