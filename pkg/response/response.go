package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	appErrors "github.com/amm-colonia/inscripciones-api/pkg/errors"
)

// ErrorEnvelope is the failure contract shared by every endpoint.
type ErrorEnvelope struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Error   string            `json:"error"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// JSON sends a success response merging payload into the {"success": true} envelope.
func JSON(c *gin.Context, status int, payload gin.H) {
	noStore(c)
	body := gin.H{"success": true}
	for k, v := range payload {
		body[k] = v
	}
	c.JSON(status, body)
}

// Created responds with HTTP 201 Created.
func Created(c *gin.Context, payload gin.H) {
	JSON(c, http.StatusCreated, payload)
}

// Error sends an error response converting the error to the common structure.
func Error(c *gin.Context, err error) {
	appErr := appErrors.FromError(err)
	noStore(c)
	c.JSON(appErr.Status, ErrorEnvelope{
		Success: false,
		Code:    appErr.Code,
		Message: appErr.Message,
		Error:   appErr.Cause(),
		Fields:  appErr.Fields,
	})
}

// Attachment streams a binary download with a Content-Disposition filename.
func Attachment(c *gin.Context, contentType, filename string, payload []byte) {
	noStore(c)
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, contentType, payload)
}

func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-store")
	c.Header("Pragma", "no-cache")
}
