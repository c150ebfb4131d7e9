package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Ananth-NQI/scam-honeypot/internal/config"
)

type fakeSender struct {
	to, message string
	err         error
}

func (f *fakeSender) SendWhatsAppMessage(to string, message string) error {
	f.to = to
	f.message = message
	return f.err
}

func TestNewTwilioService_MissingCredentials(t *testing.T) {
	_, err := NewTwilioService(config.Twilio{AccountSID: "AC123"})
	require.Error(t, err)
}

func TestFormatOperatorAlert(t *testing.T) {
	msg := FormatOperatorAlert(samplePayload())
	require.Equal(t, "🚨 Scam session sess-1 (2 messages)\nUPI: user@upi\nKeywords: upi", msg)
}

func TestOperatorAlert_Notify(t *testing.T) {
	sender := &fakeSender{}
	alert := NewOperatorAlert(sender, "+919999999999")

	result := alert.Notify(context.Background(), samplePayload())
	require.True(t, result.OK())
	require.Equal(t, "operator_alert", result.Notifier)
	require.Equal(t, "+919999999999", sender.to)
	require.Contains(t, sender.message, "sess-1")
}

func TestOperatorAlert_SendFailureIsReported(t *testing.T) {
	sender := &fakeSender{err: errors.New("twilio down")}
	result := NewOperatorAlert(sender, "+91").Notify(context.Background(), samplePayload())
	require.False(t, result.OK())
}
