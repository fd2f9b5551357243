package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amm-colonia/inscripciones-api/internal/dto"
	"github.com/amm-colonia/inscripciones-api/internal/models"
	appErrors "github.com/amm-colonia/inscripciones-api/pkg/errors"
	"github.com/amm-colonia/inscripciones-api/pkg/response"
)

type registrationSubmitter interface {
	Submit(ctx context.Context, req dto.RegistrationRequest) (*models.Registration, error)
	Weeks() []dto.WeekOption
}

// RegistrationHandler serves the public enrollment form.
type RegistrationHandler struct {
	service registrationSubmitter
}

// NewRegistrationHandler constructs a registration handler.
func NewRegistrationHandler(svc registrationSubmitter) *RegistrationHandler {
	return &RegistrationHandler{service: svc}
}

// Submit godoc
// @Summary Submit an enrollment
// @Description Validates and stores a registration, then emails the family and the coordinators
// @Tags Registration
// @Accept json
// @Produce json
// @Param payload body dto.RegistrationRequest true "Registration form"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /registration [post]
func (h *RegistrationHandler) Submit(c *gin.Context) {
	var req dto.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "Datos de inscripción inválidos"))
		return
	}

	reg, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, gin.H{"message": "Registro creado exitosamente", "id": reg.ID})
}

// Weeks godoc
// @Summary List camp weeks
// @Tags Registration
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /registration/weeks [get]
func (h *RegistrationHandler) Weeks(c *gin.Context) {
	response.JSON(c, http.StatusOK, gin.H{"weeks": h.service.Weeks()})
}
