package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"

	"github.com/amm-colonia/inscripciones-api/internal/models"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

var emailTemplates = template.Must(template.ParseFS(templateFS, "templates/*.html.tmpl"))

type emailRow struct {
	Label string
	Value string
}

type emailSection struct {
	Title string
	Rows  []emailRow
}

type emailView struct {
	CampName          string
	ChildFullName     string
	Sections          []emailSection
	Weeks             []string
	MealPlan          string
	Restrictions      string
	AuthorizedPersons []string
	AdditionalInfo    string
	PhotoConsent      string
}

// ConfirmationSubject is the subject line of the submitter's confirmation email.
func ConfirmationSubject(opts Options) string {
	return "Confirmación de inscripción - " + opts.CampName
}

// AdminNotificationSubject is the subject line of the admin notice for reg.
func AdminNotificationSubject(reg models.Registration) string {
	return "Nueva inscripción: " + fullName(reg.ChildName, reg.ChildLastName)
}

// ConfirmationEmail renders the self-contained HTML confirmation for reg.
// Submitted text is escaped by html/template.
func ConfirmationEmail(reg models.Registration, opts Options) (string, error) {
	return execute("confirmation.html.tmpl", confirmationView(reg, opts))
}

// AdminNotificationEmail renders the short notice sent to the camp administrators.
func AdminNotificationEmail(reg models.Registration, opts Options) (string, error) {
	view := emailView{
		CampName:      opts.CampName,
		ChildFullName: orDefault(fullName(reg.ChildName, reg.ChildLastName), NotProvided),
		Sections: []emailSection{{
			Title: "Datos principales",
			Rows: []emailRow{
				{"Edad", formatAge(reg.Age, " años", NotProvided)},
				{"Responsable", orDefault(fullName(reg.ParentName, reg.ParentLastName), NotProvided)},
				{"Email", orDefault(reg.Email, NotProvided)},
				{"Teléfono", orDefault(reg.Phone, NotProvided)},
				{"Fecha de registro", formatDate(reg.CreatedAt, opts.location(), NotProvided)},
			},
		}},
		Weeks: reg.Weeks,
	}
	return execute("admin.html.tmpl", view)
}

func confirmationView(reg models.Registration, opts Options) emailView {
	loc := opts.location()
	contact := reg.EmergencyContact

	view := emailView{
		CampName:      opts.CampName,
		ChildFullName: orDefault(fullName(reg.ChildName, reg.ChildLastName), NotProvided),
		Sections: []emailSection{
			{
				Title: "Información del Niño/a",
				Rows: []emailRow{
					{"Nombre completo", orDefault(fullName(reg.ChildName, reg.ChildLastName), NotProvided)},
					{"Fecha de nacimiento", formatDate(reg.Birthdate, loc, NotProvided)},
					{"Edad", formatAge(reg.Age, " años", NotProvided)},
					{"DNI", orDefault(reg.DNI, NotProvided)},
					{"Grado escolar", orDefault(reg.SchoolGrade, NotProvided)},
				},
			},
			{
				Title: "Información del Responsable",
				Rows: []emailRow{
					{"Nombre", orDefault(fullName(reg.ParentName, reg.ParentLastName), NotProvided)},
					{"Relación", orDefault(reg.Relationship, NotProvided)},
					{"Email", orDefault(reg.Email, NotProvided)},
					{"Teléfono", orDefault(reg.Phone, NotProvided)},
					{"Dirección", orDefault(reg.Address, NotProvided)},
				},
			},
			{
				Title: "Información Médica",
				Rows: []emailRow{
					{"Obra social", orDefault(reg.HealthInsurance, NotProvided)},
					{"N° de afiliado", orDefault(reg.AffiliateNumber, NotProvided)},
					{"Alergias", orDefault(reg.Allergies, NotProvided)},
					{"Medicamentos", orDefault(reg.Medications, NotProvided)},
					{"Dieta especial", orDefault(reg.SpecialDiet, NotProvided)},
				},
			},
			{
				Title: "Contacto de Emergencia",
				Rows: []emailRow{
					{"Nombre", orDefault(contact.Name, NotProvided)},
					{"Teléfono", orDefault(contact.Phone, NotProvided)},
					{"Relación", orDefault(contact.Relationship, NotProvided)},
				},
			},
		},
		Weeks:          reg.Weeks,
		MealPlan:       yesNo(reg.MealPlan),
		AdditionalInfo: orDefault(reg.AdditionalInfo, NotProvided),
		PhotoConsent:   yesNo(reg.PhotoConsent),
	}
	if reg.MealPlan {
		view.Restrictions = orDefault(reg.DietaryRestrictions, NotProvided)
	}
	for _, p := range reg.AuthorizedPersons {
		view.AuthorizedPersons = append(view.AuthorizedPersons, personLine(p))
	}
	return view
}

// personLine renders "Nombre (Relación) - Teléfono - DNI: x", skipping blank parts.
func personLine(p models.AuthorizedPerson) string {
	var b strings.Builder
	b.WriteString(orDefault(strings.TrimSpace(p.Name), NotProvided))
	if rel := strings.TrimSpace(p.Relationship); rel != "" {
		fmt.Fprintf(&b, " (%s)", rel)
	}
	if phone := strings.TrimSpace(p.Phone); phone != "" {
		b.WriteString(" - " + phone)
	}
	if dni := strings.TrimSpace(p.DNI); dni != "" {
		b.WriteString(" - DNI: " + dni)
	}
	return b.String()
}

func execute(name string, view emailView) (string, error) {
	var buf bytes.Buffer
	if err := emailTemplates.ExecuteTemplate(&buf, name, view); err != nil {
		return "", fmt.Errorf("render %s: %w", name, err)
	}
	return buf.String(), nil
}
