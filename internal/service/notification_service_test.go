package service

import (
	"context"
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/amm-colonia/inscripciones-api/internal/models"
	"github.com/amm-colonia/inscripciones-api/internal/render"
	"github.com/amm-colonia/inscripciones-api/pkg/mailer"
)

type recordingSender struct {
	sent    []mailer.Message
	failFor map[string]error
}

func (r *recordingSender) Send(ctx context.Context, msg mailer.Message) error {
	for _, to := range msg.To {
		if err, ok := r.failFor[to]; ok {
			return err
		}
	}
	r.sent = append(r.sent, msg)
	return nil
}

func notificationFixture() models.Registration {
	reg := validRequest().ToModel()
	reg.ID = "reg-1"
	reg.CreatedAt = models.Instant(fixedNow)
	return reg
}

func TestNotifyRegistrationSendsBothEmails(t *testing.T) {
	sender := &recordingSender{}
	metrics := NewMetricsService()
	svc := NewNotificationService(sender, " admin@colonia.org ", render.Options{CampName: "Colonia de Verano AMM 2025"}, metrics, zap.NewNop())

	svc.NotifyRegistration(context.Background(), notificationFixture())

	require.Len(t, sender.sent, 2)
	assert.Equal(t, []string{"a@b.com"}, sender.sent[0].To)
	assert.Equal(t, "Confirmación de inscripción - Colonia de Verano AMM 2025", sender.sent[0].Subject)
	assert.Contains(t, sender.sent[0].HTML, "Ana")
	assert.Equal(t, []string{"admin@colonia.org"}, sender.sent[1].To)
	assert.Equal(t, "Nueva inscripción: Ana Gomez", sender.sent[1].Subject)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.emailsTotal.WithLabelValues(EmailKindConfirmation, EmailSent)))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.emailsTotal.WithLabelValues(EmailKindAdmin, EmailSent)))
}

func TestNotifyRegistrationFailureIsContained(t *testing.T) {
	sender := &recordingSender{failFor: map[string]error{"a@b.com": errors.New("smtp timeout")}}
	metrics := NewMetricsService()
	svc := NewNotificationService(sender, "admin@colonia.org", render.Options{}, metrics, zap.NewNop())

	svc.NotifyRegistration(context.Background(), notificationFixture())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, []string{"admin@colonia.org"}, sender.sent[0].To)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.emailsTotal.WithLabelValues(EmailKindConfirmation, EmailFailed)))
}

func TestNotifyRegistrationSkipsMissingAdmin(t *testing.T) {
	sender := &recordingSender{}
	metrics := NewMetricsService()
	svc := NewNotificationService(sender, "", render.Options{}, metrics, zap.NewNop())

	svc.NotifyRegistration(context.Background(), notificationFixture())

	require.Len(t, sender.sent, 1)
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.emailsTotal.WithLabelValues(EmailKindAdmin, EmailSkipped)))
}

func TestNotificationNilSenderIsNop(t *testing.T) {
	svc := NewNotificationService(nil, "admin@colonia.org", render.Options{}, nil, nil)
	assert.NotPanics(t, func() {
		svc.NotifyRegistration(context.Background(), notificationFixture())
	})
}

func TestSubmitSucceedsWhenEmailFails(t *testing.T) {
	sender := &recordingSender{failFor: map[string]error{
		"a@b.com":           errors.New("smtp down"),
		"admin@colonia.org": errors.New("smtp down"),
	}}
	notifier := NewNotificationService(sender, "admin@colonia.org", render.Options{}, nil, zap.NewNop())
	store := &memoryStore{}
	svc := newRegistrationServiceForTest(store, notifier, nil, nil)

	reg, err := svc.Submit(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, "reg-1", reg.ID)
	assert.Len(t, store.regs, 1)
	assert.Empty(t, sender.sent)
}
