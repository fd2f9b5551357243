package service

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/internal/render"
	"github.com/amm-colonia/inscripciones-api/pkg/mailer"
)

// Email kinds used in logs and metrics.
const (
	EmailKindConfirmation = "confirmation"
	EmailKindAdmin        = "admin"
)

// NotificationService sends the confirmation and admin emails for a new registration.
// Delivery is single-attempt and fire-and-forget: failures are logged and counted only.
type NotificationService struct {
	sender     mailer.Sender
	adminEmail string
	options    render.Options
	metrics    *MetricsService
	logger     *zap.Logger
}

// NewNotificationService constructs the service. A nil sender disables delivery.
func NewNotificationService(sender mailer.Sender, adminEmail string, opts render.Options, metrics *MetricsService, logger *zap.Logger) *NotificationService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if sender == nil {
		sender = mailer.NopSender{}
	}
	return &NotificationService{
		sender:     sender,
		adminEmail: strings.TrimSpace(adminEmail),
		options:    opts,
		metrics:    metrics,
		logger:     logger,
	}
}

// NotifyRegistration implements RegistrationNotifier.
func (s *NotificationService) NotifyRegistration(ctx context.Context, reg models.Registration) {
	s.deliver(ctx, reg, EmailKindConfirmation, reg.Email, render.ConfirmationSubject(s.options), render.ConfirmationEmail)
	s.deliver(ctx, reg, EmailKindAdmin, s.adminEmail, render.AdminNotificationSubject(reg), render.AdminNotificationEmail)
}

func (s *NotificationService) deliver(ctx context.Context, reg models.Registration, kind, to, subject string, build func(models.Registration, render.Options) (string, error)) {
	log := s.logger.With(zap.String("registration_id", reg.ID), zap.String("email_kind", kind))

	if strings.TrimSpace(to) == "" {
		s.metrics.RecordEmail(kind, EmailSkipped)
		log.Debug("email skipped, no recipient")
		return
	}

	html, err := build(reg, s.options)
	if err != nil {
		s.metrics.RecordEmail(kind, EmailFailed)
		log.Error("failed to render email", zap.Error(err))
		return
	}

	if err := s.sender.Send(ctx, mailer.Message{To: []string{to}, Subject: subject, HTML: html}); err != nil {
		s.metrics.RecordEmail(kind, EmailFailed)
		log.Warn("email delivery failed", zap.Error(err))
		return
	}

	s.metrics.RecordEmail(kind, EmailSent)
	log.Info("email sent")
}
