package models

import "encoding/json"

// MessagePayload is the message object nested in an inbound event.
// Only Text is read; the other fields are kept raw so any JSON shape is accepted.
type MessagePayload struct {
	Sender    json.RawMessage `json:"sender,omitempty"`
	Text      string          `json:"text"`
	Timestamp json.RawMessage `json:"timestamp,omitempty"`
}

// MessageEvent is the body accepted by POST /honeypot.
// ConversationHistory and Metadata are accepted as-is and never inspected.
type MessageEvent struct {
	SessionID           string          `json:"sessionId"`
	Message             *MessagePayload `json:"message"`
	ConversationHistory json.RawMessage `json:"conversationHistory,omitempty"`
	Metadata            json.RawMessage `json:"metadata,omitempty"`
}

// HoneypotReply is the fixed response envelope
type HoneypotReply struct {
	Status string `json:"status"`
	Reply  string `json:"reply"`
}

// StatusSuccess is the only status the honeypot ever reports
const StatusSuccess = "success"
