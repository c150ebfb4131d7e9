package models

// SessionStats summarises session memory for monitoring
type SessionStats struct {
	TotalSessions int `json:"total_sessions"`
	ScamSessions  int `json:"scam_sessions"`
	TotalMessages int `json:"total_messages"`
	UPIIDs        int `json:"upi_ids"`
	BankAccounts  int `json:"bank_accounts"`
	PhishingLinks int `json:"phishing_links"`
}

// ComputeSessionStats aggregates a set of session snapshots.
// A session counts as a scam session once any keyword has matched in it.
func ComputeSessionStats(sessions []*Session) SessionStats {
	stats := SessionStats{TotalSessions: len(sessions)}
	for _, s := range sessions {
		stats.TotalMessages += len(s.Messages)
		if len(s.SuspiciousKeywords) > 0 {
			stats.ScamSessions++
		}

		intel := s.Intelligence()
		stats.UPIIDs += len(intel.UPIIDs)
		stats.BankAccounts += len(intel.BankAccounts)
		stats.PhishingLinks += len(intel.PhishingLinks)
	}
	return stats
}
