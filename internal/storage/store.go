package storage

import (
	"errors"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
)

// ErrSessionNotFound is returned when no message has been seen for a session id
var ErrSessionNotFound = errors.New("session not found")

// SessionStore defines the interface for session memory
type SessionStore interface {
	// Update runs fn against the session record for id, creating it first if
	// needed, and returns a copy of the record after fn. Calls for the same
	// id are serialized.
	Update(id string, fn func(s *models.Session)) *models.Session

	// Get returns a copy of the session record
	Get(id string) (*models.Session, error)

	// Len returns the number of known sessions
	Len() int

	// Snapshot returns copies of all session records
	Snapshot() []*models.Session
}
