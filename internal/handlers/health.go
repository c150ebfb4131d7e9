package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
	"github.com/Ananth-NQI/scam-honeypot/internal/storage"
)

// HealthHandler handles liveness and health requests
type HealthHandler struct {
	Version string
	store   storage.SessionStore
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(version string, store storage.SessionStore) *HealthHandler {
	return &HealthHandler{
		Version: version,
		store:   store,
	}
}

// Root is the liveness probe
func (h *HealthHandler) Root(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status": "running",
	})
}

// Check returns the health status of the service
func (h *HealthHandler) Check(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":   "healthy",
		"service":  "Scam Honeypot",
		"version":  h.Version,
		"sessions": h.store.Len(),
		"stats":    models.ComputeSessionStats(h.store.Snapshot()),
	})
}
