package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"github.com/Ananth-NQI/scam-honeypot/internal/config"
	"github.com/Ananth-NQI/scam-honeypot/internal/models"
)

// WhatsAppSender sends a plain WhatsApp message
type WhatsAppSender interface {
	SendWhatsAppMessage(to string, message string) error
}

type TwilioService struct {
	client *twilio.RestClient
	from   string // Twilio WhatsApp sender, e.g. "whatsapp:+14155238886"
}

// NewTwilioService creates a new Twilio service instance
func NewTwilioService(cfg config.Twilio) (*TwilioService, error) {
	if cfg.AccountSID == "" || cfg.AuthToken == "" || cfg.WhatsAppFrom == "" {
		return nil, fmt.Errorf("missing Twilio credentials in environment variables")
	}

	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &TwilioService{
		client: client,
		from:   cfg.WhatsAppFrom,
	}, nil
}

// SendWhatsAppMessage sends a WhatsApp message via Twilio
func (t *TwilioService) SendWhatsAppMessage(to string, message string) error {
	params := &twilioApi.CreateMessageParams{}
	params.SetFrom(t.from)
	params.SetTo(fmt.Sprintf("whatsapp:%s", to))
	params.SetBody(message)

	resp, err := t.client.Api.CreateMessage(params)
	if err != nil {
		return fmt.Errorf("failed to send WhatsApp message: %w", err)
	}

	if resp.ErrorCode != nil && *resp.ErrorCode != 0 {
		return fmt.Errorf("twilio error %d", *resp.ErrorCode)
	}

	if resp.Sid != nil {
		log.Printf("✅ WhatsApp alert sent! SID: %s", *resp.Sid)
	}
	return nil
}

// OperatorAlert forwards scam reports to an operator over WhatsApp
type OperatorAlert struct {
	sender WhatsAppSender
	to     string
}

// NewOperatorAlert creates an alert notifier for the operator number
func NewOperatorAlert(sender WhatsAppSender, to string) *OperatorAlert {
	return &OperatorAlert{sender: sender, to: to}
}

// Name identifies the notifier in logs
func (a *OperatorAlert) Name() string {
	return "operator_alert"
}

// Notify sends one alert message
func (a *OperatorAlert) Notify(ctx context.Context, payload models.CallbackPayload) DeliveryResult {
	start := time.Now()
	result := DeliveryResult{
		Notifier:  a.Name(),
		SessionID: payload.SessionID,
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	result.Err = a.sender.SendWhatsAppMessage(a.to, FormatOperatorAlert(payload))
	result.Duration = time.Since(start)
	return result
}

// FormatOperatorAlert renders a report as a short chat message
func FormatOperatorAlert(p models.CallbackPayload) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🚨 Scam session %s (%d messages)\n", p.SessionID, p.TotalMessagesExchanged)

	intel := p.ExtractedIntelligence
	writeList := func(label string, values []string) {
		if len(values) > 0 {
			fmt.Fprintf(&b, "%s: %s\n", label, strings.Join(values, ", "))
		}
	}
	writeList("UPI", intel.UPIIDs)
	writeList("Accounts", intel.BankAccounts)
	writeList("Links", intel.PhishingLinks)
	writeList("Keywords", intel.SuspiciousKeywords)

	return strings.TrimRight(b.String(), "\n")
}
