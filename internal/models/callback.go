package models

// CallbackPayload is the summary reported to the external endpoint
type CallbackPayload struct {
	SessionID              string       `json:"sessionId"`
	ScamDetected           bool         `json:"scamDetected"`
	TotalMessagesExchanged int          `json:"totalMessagesExchanged"`
	ExtractedIntelligence  Intelligence `json:"extractedIntelligence"`
	AgentNotes             string       `json:"agentNotes"`
}

// NewCallbackPayload builds a report from a session snapshot
func NewCallbackPayload(s *Session, notes string) CallbackPayload {
	return CallbackPayload{
		SessionID:              s.SessionID,
		ScamDetected:           true,
		TotalMessagesExchanged: len(s.Messages),
		ExtractedIntelligence:  s.Intelligence(),
		AgentNotes:             notes,
	}
}
