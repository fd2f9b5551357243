package handler

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/amm-colonia/inscripciones-api/internal/service"
)

type stubPinger struct{ err error }

func (s stubPinger) PingContext(ctx context.Context) error { return s.err }

func TestMetricsHandlerReady(t *testing.T) {
	handler := NewMetricsHandler(nil, stubPinger{})
	rec := serve(handler.Ready, "/ready", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	handler = NewMetricsHandler(nil, stubPinger{err: errors.New("connection refused")})
	rec = serve(handler.Ready, "/ready", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "connection refused")
}

func TestMetricsHandlerPrometheus(t *testing.T) {
	metrics := service.NewMetricsService()
	metrics.RecordRegistration()
	handler := NewMetricsHandler(metrics, nil)

	rec := serve(handler.Prometheus, "/metrics", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "registrations_created_total 1")

	rec = serve(NewMetricsHandler(nil, nil).Prometheus, "/metrics", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
