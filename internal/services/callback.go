package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
)

// Notifier delivers a scam report somewhere outside the process
type Notifier interface {
	Name() string
	Notify(ctx context.Context, payload models.CallbackPayload) DeliveryResult
}

// DeliveryResult describes one delivery attempt. Notifiers never panic or
// return errors directly; the outcome travels in this value.
type DeliveryResult struct {
	Notifier   string
	SessionID  string
	StatusCode int
	Duration   time.Duration
	Err        error
}

// OK reports whether the attempt succeeded
func (r DeliveryResult) OK() bool {
	return r.Err == nil
}

// CallbackNotifier posts reports to the external reporting endpoint
type CallbackNotifier struct {
	url     string
	timeout time.Duration
}

// NewCallbackNotifier creates a notifier for url with a per-request timeout
func NewCallbackNotifier(url string, timeout time.Duration) *CallbackNotifier {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &CallbackNotifier{
		url:     url,
		timeout: timeout,
	}
}

// Name identifies the notifier in logs
func (n *CallbackNotifier) Name() string {
	return "callback"
}

// Notify makes a single POST attempt bounded by the notifier timeout or the
// context deadline, whichever comes first. There are no retries.
func (n *CallbackNotifier) Notify(ctx context.Context, payload models.CallbackPayload) DeliveryResult {
	start := time.Now()
	result := DeliveryResult{
		Notifier:  n.Name(),
		SessionID: payload.SessionID,
	}

	if err := ctx.Err(); err != nil {
		result.Err = err
		return result
	}

	timeout := n.timeout
	if deadline, ok := ctx.Deadline(); ok {
		if remaining := time.Until(deadline); remaining < timeout {
			timeout = remaining
		}
	}
	if timeout <= 0 {
		result.Err = context.DeadlineExceeded
		return result
	}

	agent := fiber.Post(n.url)
	agent.JSON(payload)
	agent.Timeout(timeout)

	code, _, errs := agent.Bytes()
	result.StatusCode = code
	result.Duration = time.Since(start)

	if len(errs) > 0 {
		result.Err = fmt.Errorf("callback request failed: %w", errors.Join(errs...))
		return result
	}
	if code < fiber.StatusOK || code >= fiber.StatusMultipleChoices {
		result.Err = fmt.Errorf("callback returned status %d", code)
	}
	return result
}
