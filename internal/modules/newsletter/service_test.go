package newsletter

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aadityahasabnis/Trendify-Full-Stack-sub000/internal/mailer"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestComposeRejectsEmpty(t *testing.T) {
	svc := NewService(nil, &mailer.Mock{}, "no-reply@trendify.local", "Trendify", testLogger())

	_, err := svc.Compose(context.Background(), "   ", "<p>body</p>", "")
	require.ErrorIs(t, err, ErrEmptyNewsletter)

	_, err = svc.Compose(context.Background(), "Sale", "  ", "")
	require.ErrorIs(t, err, ErrEmptyNewsletter)
}

func TestDeliverOneMessagePerSubscriber(t *testing.T) {
	mock := &mailer.Mock{}
	svc := NewService(nil, mock, "no-reply@trendify.local", "Trendify", testLogger())

	n := Newsletter{ID: "nl-1", Subject: "Monsoon Sale", HTMLBody: "<p>50% off</p>", TextBody: "50% off"}
	subs := []Subscriber{
		{Email: "a@example.com"},
		{Email: "b@example.com"},
		{Email: "c@example.com"},
	}

	res := svc.deliver(context.Background(), n, subs)

	assert.Equal(t, 3, res.Sent)
	assert.Empty(t, res.Failed)
	require.Len(t, mock.Sent, 3)
	assert.Equal(t, []string{"a@example.com"}, mock.Sent[0].To)
	assert.Equal(t, "Monsoon Sale", mock.Sent[0].Subject)
	assert.Equal(t, "no-reply@trendify.local", mock.Sent[0].From)
}

func TestDeliverCollectsFailures(t *testing.T) {
	mock := &mailer.Mock{Err: errors.New("connection refused")}
	svc := NewService(nil, mock, "no-reply@trendify.local", "Trendify", testLogger())

	n := Newsletter{ID: "nl-2", Subject: "Hello", HTMLBody: "<p>hi</p>"}
	subs := []Subscriber{{Email: "a@example.com"}, {Email: "b@example.com"}}

	res := svc.deliver(context.Background(), n, subs)

	assert.Equal(t, 0, res.Sent)
	assert.Equal(t, []string{"a@example.com", "b@example.com"}, res.Failed)
}
