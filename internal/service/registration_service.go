package service

import (
	"context"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/amm-colonia/inscripciones-api/internal/dto"
	"github.com/amm-colonia/inscripciones-api/internal/models"
	appErrors "github.com/amm-colonia/inscripciones-api/pkg/errors"
)

const registrationListCacheKey = "registrations:list"

type registrationStore interface {
	Create(ctx context.Context, reg *models.Registration) error
	List(ctx context.Context) ([]models.Registration, error)
}

// RegistrationNotifier is told about every persisted registration. It must not fail the submission.
type RegistrationNotifier interface {
	NotifyRegistration(ctx context.Context, reg models.Registration)
}

// RegistrationService stores submissions and serves them back to the dashboard.
type RegistrationService struct {
	store     registrationStore
	notifier  RegistrationNotifier
	validator *validator.Validate
	cache     *CacheService
	metrics   *MetricsService
	logger    *zap.Logger
	now       func() time.Time

	// listMu orders cache writes from List against invalidation on Submit. listGen counts
	// submissions so a List that read the store before a submit never caches that read.
	listMu  sync.Mutex
	listGen uint64
}

// NewRegistrationService constructs the service. notifier, cache and metrics may be nil.
func NewRegistrationService(store registrationStore, notifier RegistrationNotifier, validate *validator.Validate, cache *CacheService, metrics *MetricsService, logger *zap.Logger) *RegistrationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = NewRegistrationValidator()
	}
	return &RegistrationService{
		store:     store,
		notifier:  notifier,
		validator: validate,
		cache:     cache,
		metrics:   metrics,
		logger:    logger,
		now:       time.Now,
	}
}

// Submit validates the form payload, stamps the creation time and persists it. Notification
// happens after persistence and its failures never reach the caller.
func (s *RegistrationService) Submit(ctx context.Context, req dto.RegistrationRequest) (*models.Registration, error) {
	req = req.Normalize()
	if err := s.validator.Struct(req); err != nil {
		fields := fieldErrors(err)
		if fields == nil {
			return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "Datos de inscripción inválidos")
		}
		return nil, appErrors.WithFields(appErrors.Clone(appErrors.ErrValidation, "Datos de inscripción inválidos"), fields)
	}

	reg := req.ToModel()
	reg.CreatedAt = models.Instant(s.now().UTC())

	if err := s.store.Create(ctx, &reg); err != nil {
		s.logger.Error("failed to persist registration", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al crear el registro")
	}

	s.metrics.RecordRegistration()
	s.invalidateList(ctx)
	s.logger.Info("registration created", zap.String("registration_id", reg.ID), zap.Int("weeks", len(reg.Weeks)))

	if s.notifier != nil {
		// The record is already stored; a client hanging up must not cancel its emails.
		s.notifier.NotifyRegistration(context.WithoutCancel(ctx), reg)
	}

	return &reg, nil
}

// List returns every registration, newest first.
func (s *RegistrationService) List(ctx context.Context) ([]models.Registration, error) {
	var cached []models.Registration
	if s.cache.Get(ctx, registrationListCacheKey, &cached) {
		return cached, nil
	}

	gen := s.listGeneration()
	regs, err := s.store.List(ctx)
	if err != nil {
		s.logger.Error("failed to list registrations", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "Error al obtener registros")
	}

	s.listMu.Lock()
	if s.listGen == gen {
		s.cache.Set(ctx, registrationListCacheKey, regs, 0)
	}
	s.listMu.Unlock()
	return regs, nil
}

func (s *RegistrationService) listGeneration() uint64 {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	return s.listGen
}

func (s *RegistrationService) invalidateList(ctx context.Context) {
	s.listMu.Lock()
	defer s.listMu.Unlock()
	s.listGen++
	s.cache.Invalidate(ctx, registrationListCacheKey)
}

// Weeks returns the enrollment week catalog in display order.
func (s *RegistrationService) Weeks() []dto.WeekOption {
	options := make([]dto.WeekOption, 0, len(models.CampWeeks))
	for i, label := range models.CampWeeks {
		options = append(options, dto.WeekOption{Label: label, Order: i + 1})
	}
	return options
}
