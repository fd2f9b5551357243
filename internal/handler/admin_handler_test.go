package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amm-colonia/inscripciones-api/internal/middleware"
	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/internal/service"
	appErrors "github.com/amm-colonia/inscripciones-api/pkg/errors"
)

type countingLister struct {
	regs  []models.Registration
	err   error
	calls int
}

func (l *countingLister) List(ctx context.Context) ([]models.Registration, error) {
	l.calls++
	return l.regs, l.err
}

type fakeExporter struct {
	file   *service.ExportFile
	err    error
	format string
}

func (f *fakeExporter) Export(ctx context.Context, format string) (*service.ExportFile, error) {
	f.format = format
	return f.file, f.err
}

type fakeProfiles struct {
	err error
}

func (f fakeProfiles) Profile(ctx context.Context, userID string) (*models.UserInfo, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &models.UserInfo{ID: userID, Email: "admin@colonia.org", FullName: "Coordinación"}, nil
}

func serve(h gin.HandlerFunc, target string, claims *models.JWTClaims) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, target, nil)
	if claims != nil {
		c.Set(middleware.ContextUserKey, claims)
	}
	h(c)
	return rec
}

func TestAdminHandlerList(t *testing.T) {
	lister := &countingLister{regs: []models.Registration{{ID: "r2", ChildName: "Bruno"}, {ID: "r1", ChildName: "Ana"}}}
	handler := NewAdminHandler(lister, &fakeExporter{}, fakeProfiles{})

	rec := serve(handler.List, "/api/admin/registrations", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success       bool                  `json:"success"`
		Registrations []models.Registration `json:"registrations"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	require.Len(t, body.Registrations, 2)
	assert.Equal(t, "Bruno", body.Registrations[0].ChildName)
	assert.Equal(t, "r1", body.Registrations[1].ID)
}

func TestAdminHandlerListEmptyIsArray(t *testing.T) {
	handler := NewAdminHandler(&countingLister{}, &fakeExporter{}, fakeProfiles{})

	rec := serve(handler.List, "/api/admin/registrations", nil)

	assert.JSONEq(t, `{"success":true,"registrations":[]}`, rec.Body.String())
}

func TestAdminHandlerListFailure(t *testing.T) {
	lister := &countingLister{err: appErrors.Wrap(errors.New("unavailable"), appErrors.ErrInternal.Code, http.StatusInternalServerError, "Error al obtener registros")}
	handler := NewAdminHandler(lister, &fakeExporter{}, fakeProfiles{})

	rec := serve(handler.List, "/api/admin/registrations", nil)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "Error al obtener registros")
}

func TestAdminHandlerExport(t *testing.T) {
	exporter := &fakeExporter{file: &service.ExportFile{
		Filename:    "Registros_Colonia_AMM_2025-01-03.xlsx",
		ContentType: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		Content:     []byte("PK"),
	}}
	handler := NewAdminHandler(&countingLister{}, exporter, fakeProfiles{})

	rec := serve(handler.Export, "/api/admin/export?format=xlsx", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "xlsx", exporter.format)
	assert.Equal(t, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", rec.Header().Get("Content-Type"))
	assert.Equal(t, "attachment; filename=Registros_Colonia_AMM_2025-01-03.xlsx", rec.Header().Get("Content-Disposition"))
	assert.Equal(t, "PK", rec.Body.String())
}

func TestAdminHandlerExportUnsupported(t *testing.T) {
	handler := NewAdminHandler(&countingLister{}, &fakeExporter{err: appErrors.ErrUnsupportedFormat}, fakeProfiles{})

	rec := serve(handler.Export, "/api/admin/export?format=docx", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), appErrors.ErrUnsupportedFormat.Code)
}

func TestAdminHandlerMe(t *testing.T) {
	handler := NewAdminHandler(&countingLister{}, &fakeExporter{}, fakeProfiles{})

	rec := serve(handler.Me, "/api/admin/me", &models.JWTClaims{UserID: "admin-1", Email: "admin@colonia.org", FullName: "Coordinación"})
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"user":{"id":"admin-1","email":"admin@colonia.org","fullName":"Coordinación"}}`, rec.Body.String())

	rec = serve(handler.Me, "/api/admin/me", nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	inactive := NewAdminHandler(&countingLister{}, &fakeExporter{}, fakeProfiles{err: appErrors.ErrInactiveAccount})
	rec = serve(inactive.Me, "/api/admin/me", &models.JWTClaims{UserID: "admin-1"})
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

type stubVerifier struct{}

func (stubVerifier) ValidateToken(token string) (*models.JWTClaims, error) {
	if token == "valid" {
		return &models.JWTClaims{UserID: "admin-1"}, nil
	}
	return nil, errors.New("invalid")
}

func TestAdminRoutesDoNotReadStoreWithoutToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	lister := &countingLister{}
	exporter := &fakeExporter{file: &service.ExportFile{Filename: "x.xlsx", ContentType: "application/octet-stream"}}
	handler := NewAdminHandler(lister, exporter, fakeProfiles{})

	r := gin.New()
	admin := r.Group("/api/admin", middleware.JWT(stubVerifier{}))
	admin.GET("/registrations", handler.List)
	admin.GET("/export", handler.Export)

	for _, path := range []string{"/api/admin/registrations", "/api/admin/export"} {
		for _, header := range []string{"", "Bearer forged"} {
			req := httptest.NewRequest(http.MethodGet, path, nil)
			if header != "" {
				req.Header.Set("Authorization", header)
			}
			rec := httptest.NewRecorder()
			r.ServeHTTP(rec, req)
			assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
		}
	}
	assert.Zero(t, lister.calls)
	assert.Empty(t, exporter.format)

	req := httptest.NewRequest(http.MethodGet, "/api/admin/registrations", nil)
	req.Header.Set("Authorization", "Bearer valid")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, 1, lister.calls)
}
