package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/pkg/export"
)

// Spreadsheet column headers in published order.
const (
	ColCreatedAt             = "Fecha de Registro"
	ColChildName             = "Nombre"
	ColChildLastName         = "Apellido"
	ColBirthdate             = "Fecha Nac."
	ColAge                   = "Edad"
	ColDNI                   = "DNI"
	ColSchoolGrade           = "Grado"
	ColParentName            = "Nombre Tutor"
	ColParentLastName        = "Apellido Tutor"
	ColRelationship          = "Relación"
	ColPhone                 = "Teléfono"
	ColEmail                 = "Email"
	ColAddress               = "Dirección"
	ColHealthInsurance       = "Obra Social"
	ColAffiliateNumber       = "N° Afiliado"
	ColAllergies             = "Alergias"
	ColMedications           = "Medicamentos"
	ColSpecialDiet           = "Dieta Especial"
	ColEmergencyName         = "Contacto Emerg. Nombre"
	ColEmergencyPhone        = "Contacto Emerg. Teléfono"
	ColEmergencyRelationship = "Contacto Emerg. Relación"
	ColWeeks                 = "Semanas"
	ColMealPlan              = "Plan Comida"
	ColDietaryRestrictions   = "Restricciones"
	ColAuthorizedPersons     = "Personas Autorizadas"
	ColAdditionalInfo        = "Info Adicional"
	ColPhotoConsent          = "Consentimiento Foto"
)

// SpreadsheetHeaders returns a fresh copy of the column catalog.
func SpreadsheetHeaders() []string {
	return []string{
		ColCreatedAt, ColChildName, ColChildLastName, ColBirthdate, ColAge, ColDNI, ColSchoolGrade,
		ColParentName, ColParentLastName, ColRelationship, ColPhone, ColEmail, ColAddress,
		ColHealthInsurance, ColAffiliateNumber, ColAllergies, ColMedications, ColSpecialDiet,
		ColEmergencyName, ColEmergencyPhone, ColEmergencyRelationship,
		ColWeeks, ColMealPlan, ColDietaryRestrictions, ColAuthorizedPersons, ColAdditionalInfo, ColPhotoConsent,
	}
}

var columnWidths = map[string]float64{
	ColCreatedAt: 20, ColChildName: 20, ColChildLastName: 20, ColBirthdate: 15, ColAge: 8,
	ColDNI: 15, ColSchoolGrade: 15, ColParentName: 20, ColParentLastName: 20, ColRelationship: 15,
	ColPhone: 15, ColEmail: 25, ColAddress: 30, ColHealthInsurance: 20, ColAffiliateNumber: 20,
	ColAllergies: 20, ColMedications: 20, ColSpecialDiet: 20, ColEmergencyName: 20,
	ColEmergencyPhone: 20, ColEmergencyRelationship: 20, ColWeeks: 30, ColMealPlan: 15,
	ColDietaryRestrictions: 20, ColAuthorizedPersons: 40, ColAdditionalInfo: 30, ColPhotoConsent: 15,
}

// SpreadsheetDataset flattens regs into one row per record, in the given order.
func SpreadsheetDataset(regs []models.Registration, opts Options) export.Dataset {
	loc := opts.location()
	rows := make([]map[string]string, 0, len(regs))
	for _, reg := range regs {
		rows = append(rows, flatten(reg, loc))
	}

	widths := make(map[string]float64, len(columnWidths))
	for k, v := range columnWidths {
		widths[k] = v
	}
	return export.Dataset{Headers: SpreadsheetHeaders(), Rows: rows, Widths: widths}
}

// Spreadsheet renders regs as an XLSX workbook.
func Spreadsheet(regs []models.Registration, opts Options) ([]byte, error) {
	out, err := export.NewXLSXExporter(opts.SheetName).Render(SpreadsheetDataset(regs, opts))
	if err != nil {
		return nil, fmt.Errorf("render spreadsheet: %w", err)
	}
	return out, nil
}

func flatten(reg models.Registration, loc *time.Location) map[string]string {
	contact := reg.EmergencyContact

	restrictions := NotAvailable
	if reg.MealPlan {
		restrictions = orDefault(reg.DietaryRestrictions, NotAvailable)
	}

	return map[string]string{
		ColCreatedAt:             formatDate(reg.CreatedAt, loc, NotAvailable),
		ColChildName:             reg.ChildName,
		ColChildLastName:         reg.ChildLastName,
		ColBirthdate:             formatDate(reg.Birthdate, loc, NotAvailable),
		ColAge:                   formatAge(reg.Age, "", NotAvailable),
		ColDNI:                   reg.DNI,
		ColSchoolGrade:           reg.SchoolGrade,
		ColParentName:            reg.ParentName,
		ColParentLastName:        reg.ParentLastName,
		ColRelationship:          reg.Relationship,
		ColPhone:                 reg.Phone,
		ColEmail:                 reg.Email,
		ColAddress:               reg.Address,
		ColHealthInsurance:       reg.HealthInsurance,
		ColAffiliateNumber:       reg.AffiliateNumber,
		ColAllergies:             orDefault(reg.Allergies, NotAvailable),
		ColMedications:           orDefault(reg.Medications, NotAvailable),
		ColSpecialDiet:           orDefault(reg.SpecialDiet, NotAvailable),
		ColEmergencyName:         orDefault(contact.Name, NotAvailable),
		ColEmergencyPhone:        orDefault(contact.Phone, NotAvailable),
		ColEmergencyRelationship: orDefault(contact.Relationship, NotAvailable),
		ColWeeks:                 strings.Join(reg.Weeks, ", "),
		ColMealPlan:              yesNo(reg.MealPlan),
		ColDietaryRestrictions:   restrictions,
		ColAuthorizedPersons:     personsCell(reg.AuthorizedPersons),
		ColAdditionalInfo:        orDefault(reg.AdditionalInfo, NotAvailable),
		ColPhotoConsent:          yesNo(reg.PhotoConsent),
	}
}

// personsCell joins "name (relationship, phone, DNI: x)" entries with "; ".
func personsCell(persons []models.AuthorizedPerson) string {
	entries := make([]string, 0, len(persons))
	for _, p := range persons {
		entries = append(entries, fmt.Sprintf("%s (%s, %s, DNI: %s)",
			orDefault(p.Name, NotAvailable),
			orDefault(p.Relationship, NotAvailable),
			orDefault(p.Phone, NotAvailable),
			orDefault(p.DNI, NotAvailable),
		))
	}
	return strings.Join(entries, "; ")
}
