package handlers

import (
	"bytes"
	"errors"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
	"github.com/Ananth-NQI/scam-honeypot/internal/services"
	"github.com/Ananth-NQI/scam-honeypot/internal/storage"
)

// HoneypotHandler handles scammer-facing requests
type HoneypotHandler struct {
	service *services.HoneypotService
	store   storage.SessionStore
}

// NewHoneypotHandler creates a new honeypot handler
func NewHoneypotHandler(service *services.HoneypotService, store storage.SessionStore) *HoneypotHandler {
	return &HoneypotHandler{
		service: service,
		store:   store,
	}
}

// HandleMessage processes one inbound message. It only ever answers 200;
// bodies it cannot read, or without a message object, get the opening
// question and leave sessions alone.
func (h *HoneypotHandler) HandleMessage(c *fiber.Ctx) error {
	body := c.Body()
	if len(bytes.TrimSpace(body)) == 0 {
		log.Printf("🧪 Probe request from %s", c.IP())
		return h.reply(c, h.service.OpeningReply())
	}

	var event models.MessageEvent
	if err := c.App().Config().JSONDecoder(body, &event); err != nil {
		log.Printf("⚠️  Unreadable honeypot payload: %v", err)
		return h.reply(c, h.service.OpeningReply())
	}
	if event.Message == nil {
		log.Printf("⚠️  Honeypot payload without message (session %q)", event.SessionID)
		return h.reply(c, h.service.OpeningReply())
	}

	outcome := h.service.Process(event)
	return h.reply(c, outcome.Reply)
}

func (h *HoneypotHandler) reply(c *fiber.Ctx, text string) error {
	return c.JSON(models.HoneypotReply{
		Status: models.StatusSuccess,
		Reply:  text,
	})
}

// SessionSummary is the view of a session returned to operators
type SessionSummary struct {
	SessionID             string              `json:"sessionId"`
	TotalMessages         int                 `json:"totalMessages"`
	ExtractedIntelligence models.Intelligence `json:"extractedIntelligence"`
	CreatedAt             string              `json:"createdAt"`
	LastActive            string              `json:"lastActive"`
}

// GetSession returns what has been collected for one session
func (h *HoneypotHandler) GetSession(c *fiber.Ctx) error {
	session, err := h.store.Get(c.Params("id"))
	if errors.Is(err, storage.ErrSessionNotFound) {
		return fiber.NewError(fiber.StatusNotFound, "Session not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(SessionSummary{
		SessionID:             session.SessionID,
		TotalMessages:         len(session.Messages),
		ExtractedIntelligence: session.Intelligence(),
		CreatedAt:             session.CreatedAt.Format(time.RFC3339),
		LastActive:            session.LastActive.Format(time.RFC3339),
	})
}
