package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/sony/gobreaker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"
)

type fakeDialer struct {
	sent  []*gomail.Message
	err   error
	calls int
}

func (f *fakeDialer) DialAndSend(m ...*gomail.Message) error {
	f.calls++
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestSMTPSenderBuildsHTMLMessage(t *testing.T) {
	dialer := &fakeDialer{}
	sender := NewSMTPSenderWithDialer(dialer, "Colonia <no-reply@colonia.test>", nil)

	err := sender.Send(context.Background(), Message{
		To:      []string{" a@b.com ", ""},
		Subject: "Confirmación de inscripción",
		HTML:    "<p>hola</p>",
	})
	require.NoError(t, err)
	require.Len(t, dialer.sent, 1)

	msg := dialer.sent[0]
	assert.Equal(t, []string{"a@b.com"}, msg.GetHeader("To"))
	assert.Equal(t, []string{"Colonia <no-reply@colonia.test>"}, msg.GetHeader("From"))
	assert.Equal(t, []string{"Confirmación de inscripción"}, msg.GetHeader("Subject"))
}

func TestSMTPSenderRejectsEmptyRecipients(t *testing.T) {
	dialer := &fakeDialer{}
	sender := NewSMTPSenderWithDialer(dialer, "from@colonia.test", nil)

	err := sender.Send(context.Background(), Message{To: []string{"  "}})
	assert.ErrorIs(t, err, ErrNoRecipients)
	assert.Zero(t, dialer.calls)
}

func TestSMTPSenderHonoursCancelledContext(t *testing.T) {
	dialer := &fakeDialer{}
	sender := NewSMTPSenderWithDialer(dialer, "from@colonia.test", nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := sender.Send(ctx, Message{To: []string{"a@b.com"}})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, dialer.calls)
}

func TestSMTPSenderFailsFastWhenBreakerOpens(t *testing.T) {
	dialer := &fakeDialer{err: errors.New("connection refused")}
	sender := NewSMTPSenderWithDialer(dialer, "from@colonia.test", nil)
	msg := Message{To: []string{"a@b.com"}, Subject: "x"}

	for i := 0; i < 3; i++ {
		assert.Error(t, sender.Send(context.Background(), msg))
	}
	assert.Equal(t, 3, dialer.calls)

	err := sender.Send(context.Background(), msg)
	assert.ErrorIs(t, err, gobreaker.ErrOpenState)
	assert.Equal(t, 3, dialer.calls)
}

func TestNopSender(t *testing.T) {
	assert.NoError(t, NopSender{}.Send(context.Background(), Message{}))
}
