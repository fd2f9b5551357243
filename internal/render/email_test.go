package render

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/amm-colonia/inscripciones-api/internal/dto"
	"github.com/amm-colonia/inscripciones-api/internal/models"
)

func TestConfirmationEmailIsDeterministic(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		reg := genRegistration().Draw(t, "registration")

		first, err := ConfirmationEmail(reg, testOptions)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		second, err := ConfirmationEmail(reg, testOptions)
		if err != nil {
			t.Fatalf("render: %v", err)
		}
		if first != second {
			t.Fatalf("output differs between calls")
		}
		if strings.Contains(first, "<script") {
			t.Fatalf("unescaped markup in output")
		}
	})
}

func TestConfirmationEmailRendersFields(t *testing.T) {
	html, err := ConfirmationEmail(sampleRegistration(), testOptions)
	require.NoError(t, err)

	for _, want := range []string{
		"Ana Gomez",
		"4/5/2019",
		"5 años",
		"50111222",
		"Maria Gomez",
		"Calle 123",
		"OSDE",
		"Luis",
		"<li>Rosa (Abuela) - 111 - DNI: 20333444</li>",
		"Plan de comida:</td><td>Sí",
		"Consentimiento de fotos:</td><td>No",
		"Colonia de Verano AMM 2025",
	} {
		assert.Contains(t, html, want)
	}
	assert.Contains(t, html, "Alergias:</td><td>No informado")
	assert.NotContains(t, html, "http://")
	assert.NotContains(t, html, "https://")
	assert.NotContains(t, html, "src=")
}

func TestConfirmationEmailKeepsWeekOrder(t *testing.T) {
	html, err := ConfirmationEmail(sampleRegistration(), testOptions)
	require.NoError(t, err)

	second := strings.Index(html, "<li>8 al 12 de Enero</li>")
	first := strings.Index(html, "<li>1 al 5 de Enero</li>")
	require.True(t, second >= 0 && first >= 0)
	assert.Less(t, second, first)
}

func TestConfirmationEmailEscapesSubmittedText(t *testing.T) {
	reg := sampleRegistration()
	reg.ChildName = `<script>alert("x")</script>`
	reg.AdditionalInfo = `<img src=x onerror=alert(1)>`

	html, err := ConfirmationEmail(reg, testOptions)
	require.NoError(t, err)

	assert.NotContains(t, html, "<script>")
	assert.NotContains(t, html, "<img")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestConfirmationEmailEmptyAuthorizedPersons(t *testing.T) {
	reg := sampleRegistration()
	reg.AuthorizedPersons = nil
	reg.MealPlan = false

	html, err := ConfirmationEmail(reg, testOptions)
	require.NoError(t, err)

	assert.Contains(t, html, "No se registraron personas autorizadas.")
	assert.Contains(t, html, "Plan de comida:</td><td>No")
	assert.NotContains(t, html, "Restricciones alimentarias")
}

func TestConfirmationEmailMatchesForPayloadAndStoredRecord(t *testing.T) {
	var req dto.RegistrationRequest
	require.NoError(t, json.Unmarshal([]byte(`{
		"childName": "Ana", "childLastName": "Gomez", "birthdate": "2019-05-04", "age": 5,
		"dni": "50111222", "schoolGrade": "Sala de 5", "parentName": "Maria", "parentLastName": "Gomez",
		"relationship": "Madre", "phone": "1155550000", "email": "a@b.com", "address": "Calle 123",
		"healthInsurance": "OSDE", "affiliateNumber": "A-1",
		"emergencyContact": {"name": "Luis", "phone": "123", "relationship": "Padre"},
		"weeks": ["1 al 5 de Enero"], "mealPlan": true, "dietaryRestrictions": "sin TACC",
		"authorizedPersons": [{"name": "Rosa", "relationship": "Abuela", "phone": "111", "dni": ""}],
		"photoConsent": true
	}`), &req))

	payload := req.ToModel()
	doc, err := payload.Document()
	require.NoError(t, err)
	stored := models.ParseRegistration("id-1", time.Time{}, doc)

	fromPayload, err := ConfirmationEmail(payload, testOptions)
	require.NoError(t, err)
	fromStore, err := ConfirmationEmail(stored, testOptions)
	require.NoError(t, err)
	assert.Equal(t, fromPayload, fromStore)
}

func TestAdminNotificationEmail(t *testing.T) {
	html, err := AdminNotificationEmail(sampleRegistration(), testOptions)
	require.NoError(t, err)

	assert.Contains(t, html, "Ana Gomez")
	assert.Contains(t, html, "a@b.com")
	assert.Contains(t, html, "1/1/2025")
	assert.Equal(t, "Nueva inscripción: Ana Gomez", AdminNotificationSubject(sampleRegistration()))
	assert.Equal(t, "Confirmación de inscripción - Colonia de Verano AMM 2025", ConfirmationSubject(testOptions))
}
