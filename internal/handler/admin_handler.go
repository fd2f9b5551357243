package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/internal/service"
	appErrors "github.com/amm-colonia/inscripciones-api/pkg/errors"
	"github.com/amm-colonia/inscripciones-api/pkg/response"
)

type registrationLister interface {
	List(ctx context.Context) ([]models.Registration, error)
}

type registrationExporter interface {
	Export(ctx context.Context, format string) (*service.ExportFile, error)
}

type profileLoader interface {
	Profile(ctx context.Context, userID string) (*models.UserInfo, error)
}

// AdminHandler serves the coordinators' dashboard. Every route sits behind the JWT middleware.
type AdminHandler struct {
	registrations registrationLister
	exports       registrationExporter
	profiles      profileLoader
}

// NewAdminHandler constructs an admin handler.
func NewAdminHandler(registrations registrationLister, exports registrationExporter, profiles profileLoader) *AdminHandler {
	return &AdminHandler{registrations: registrations, exports: exports, profiles: profiles}
}

// List godoc
// @Summary List registrations
// @Description Every registration, newest first
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 500 {object} response.ErrorEnvelope
// @Router /admin/registrations [get]
func (h *AdminHandler) List(c *gin.Context) {
	regs, err := h.registrations.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	if regs == nil {
		regs = []models.Registration{}
	}
	response.JSON(c, http.StatusOK, gin.H{"registrations": regs})
}

// Export godoc
// @Summary Download registrations
// @Description Spreadsheet by default; csv and pdf on request
// @Tags Admin
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Produce text/csv
// @Produce application/pdf
// @Security BearerAuth
// @Param format query string false "xlsx, csv or pdf"
// @Success 200 {file} binary
// @Failure 400 {object} response.ErrorEnvelope
// @Failure 401 {object} response.ErrorEnvelope
// @Router /admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	file, err := h.exports.Export(c.Request.Context(), c.Query("format"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, file.ContentType, file.Filename, file.Content)
}

// Me godoc
// @Summary Current administrator
// @Tags Admin
// @Produce json
// @Security BearerAuth
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} response.ErrorEnvelope
// @Failure 403 {object} response.ErrorEnvelope
// @Router /admin/me [get]
func (h *AdminHandler) Me(c *gin.Context) {
	claims := claimsFromContext(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}
	user, err := h.profiles.Profile(c.Request.Context(), claims.UserID)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, gin.H{"user": user})
}
