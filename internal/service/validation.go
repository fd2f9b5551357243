package service

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/amm-colonia/inscripciones-api/internal/models"
)

var (
	emailPattern = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	indexPattern = regexp.MustCompile(`\[\d+\]`)
)

// NewRegistrationValidator returns a validator that reports fields by their JSON names and
// knows the camp-specific tags campweek, campemail and campdate.
func NewRegistrationValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("campweek", func(fl validator.FieldLevel) bool {
		return models.IsCampWeek(fl.Field().String())
	})
	_ = v.RegisterValidation("campemail", func(fl validator.FieldLevel) bool {
		return emailPattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("campdate", func(fl validator.FieldLevel) bool {
		switch models.ParseDateLike(fl.Field().String()).Kind() {
		case models.DateCalendar, models.DateInstant:
			return true
		default:
			return false
		}
	})
	return v
}

var requiredMessages = map[string]string{
	"childName":                     "El nombre del niño/a es obligatorio",
	"childLastName":                 "El apellido del niño/a es obligatorio",
	"birthdate":                     "La fecha de nacimiento es obligatoria",
	"age":                           "La edad es obligatoria",
	"dni":                           "El DNI es obligatorio",
	"schoolGrade":                   "El grado escolar es obligatorio",
	"parentName":                    "El nombre del padre/madre/tutor es obligatorio",
	"parentLastName":                "El apellido del padre/madre/tutor es obligatorio",
	"relationship":                  "La relación con el niño/a es obligatoria",
	"phone":                         "El teléfono es obligatorio",
	"email":                         "El email es obligatorio",
	"address":                       "La dirección es obligatoria",
	"healthInsurance":               "La obra social es obligatoria",
	"affiliateNumber":               "El número de afiliado es obligatorio",
	"emergencyContact.name":         "El nombre del contacto de emergencia es obligatorio",
	"emergencyContact.phone":        "El teléfono del contacto de emergencia es obligatorio",
	"emergencyContact.relationship": "La relación del contacto de emergencia es obligatoria",
	"weeks":                         "Debe seleccionar al menos una semana",
	"password":                      "La contraseña es obligatoria",
	"fullName":                      "El nombre es obligatorio",
}

var ruleMessages = map[string]string{
	"age.min":            "La edad mínima es 3 años",
	"age.max":            "La edad máxima es 12 años",
	"email.campemail":    "Email inválido",
	"email.email":        "Email inválido",
	"relationship.oneof": "Relación inválida",
	"birthdate.campdate": "Fecha de nacimiento inválida",
	"weeks.min":          "Debe seleccionar al menos una semana",
	"weeks.unique":       "Las semanas seleccionadas no pueden repetirse",
	"weeks.campweek":     "Semana inválida",
	"password.min":       "La contraseña debe tener al menos 8 caracteres",
}

// fieldErrors converts validator errors into a map of JSON field path to Spanish message.
// Only the first failure per field is kept.
func fieldErrors(err error) map[string]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	fields := make(map[string]string, len(verrs))
	for _, fe := range verrs {
		field := fieldPath(fe.Namespace())
		if _, exists := fields[field]; exists {
			continue
		}
		fields[field] = fieldMessage(field, fe.Tag())
	}
	return fields
}

func fieldPath(namespace string) string {
	if idx := strings.Index(namespace, "."); idx >= 0 {
		namespace = namespace[idx+1:]
	}
	return indexPattern.ReplaceAllString(namespace, "")
}

func fieldMessage(field, tag string) string {
	if tag == "required" {
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
		return "Campo obligatorio"
	}
	if msg, ok := ruleMessages[field+"."+tag]; ok {
		return msg
	}
	return "Valor inválido"
}
