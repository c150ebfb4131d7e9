package models

import (
	"time"

	"github.com/Ananth-NQI/scam-honeypot/internal/utils"
)

// DefaultSessionID is used when an inbound event carries no session id
const DefaultSessionID = "unknown-session"

// Session stores everything the honeypot has learned about one conversation
type Session struct {
	SessionID          string    `json:"session_id"`
	Messages           []string  `json:"messages"`
	BankAccounts       []string  `json:"bank_accounts"`
	UPIIDs             []string  `json:"upi_ids"`
	PhishingLinks      []string  `json:"phishing_links"`
	SuspiciousKeywords []string  `json:"suspicious_keywords"`
	CreatedAt          time.Time `json:"created_at"`
	LastActive         time.Time `json:"last_active"`
}

// NewSession creates an empty session record
func NewSession(sessionID string) *Session {
	now := time.Now()
	return &Session{
		SessionID:  sessionID,
		CreatedAt:  now,
		LastActive: now,
	}
}

// Record appends one message and whatever was extracted from it.
// Duplicates are kept here and collapsed by Intelligence.
func (s *Session) Record(text string, intel Intelligence, keywords []string) {
	s.Messages = append(s.Messages, text)
	s.BankAccounts = append(s.BankAccounts, intel.BankAccounts...)
	s.UPIIDs = append(s.UPIIDs, intel.UPIIDs...)
	s.PhishingLinks = append(s.PhishingLinks, intel.PhishingLinks...)
	s.SuspiciousKeywords = append(s.SuspiciousKeywords, keywords...)
	s.LastActive = time.Now()
}

// Intelligence returns the accumulated identifiers with duplicates removed
func (s *Session) Intelligence() Intelligence {
	return Intelligence{
		BankAccounts:       utils.Unique(s.BankAccounts),
		UPIIDs:             utils.Unique(s.UPIIDs),
		PhishingLinks:      utils.Unique(s.PhishingLinks),
		SuspiciousKeywords: utils.Unique(s.SuspiciousKeywords),
	}
}

// Clone returns a deep copy safe to hand out of the store
func (s *Session) Clone() *Session {
	c := *s
	c.Messages = append([]string(nil), s.Messages...)
	c.BankAccounts = append([]string(nil), s.BankAccounts...)
	c.UPIIDs = append([]string(nil), s.UPIIDs...)
	c.PhishingLinks = append([]string(nil), s.PhishingLinks...)
	c.SuspiciousKeywords = append([]string(nil), s.SuspiciousKeywords...)
	return &c
}
