package services

import (
	"log"
	"strings"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
	"github.com/Ananth-NQI/scam-honeypot/internal/storage"
	"github.com/Ananth-NQI/scam-honeypot/internal/utils"
)

// ReportSink accepts scam reports for delivery off the request path.
// Submit must not block; it returns false when the report was dropped.
type ReportSink interface {
	Submit(payload models.CallbackPayload) bool
}

// Outcome is the result of processing one inbound message
type Outcome struct {
	SessionID string
	IsScam    bool
	Reply     string
	Reported  bool
	Session   *models.Session
}

// HoneypotService ties classification, extraction and session memory together
type HoneypotService struct {
	store      storage.SessionStore
	classifier *ScamClassifier
	replies    *ReplySelector
	reports    ReportSink
	agentNotes string
}

// NewHoneypotService creates the service. reports may be nil to disable reporting.
func NewHoneypotService(store storage.SessionStore, classifier *ScamClassifier, replies *ReplySelector, reports ReportSink, agentNotes string) *HoneypotService {
	return &HoneypotService{
		store:      store,
		classifier: classifier,
		replies:    replies,
		reports:    reports,
		agentNotes: agentNotes,
	}
}

// OpeningReply is returned for probes and unreadable bodies
func (s *HoneypotService) OpeningReply() string {
	return s.replies.Opening()
}

// Process handles one message event
func (s *HoneypotService) Process(event models.MessageEvent) Outcome {
	if event.Message == nil {
		return Outcome{Reply: s.OpeningReply()}
	}

	sessionID := event.SessionID
	if sessionID == "" {
		sessionID = models.DefaultSessionID
	}

	raw := event.Message.Text
	text := strings.ToLower(raw)

	isScam := s.classifier.Classify(text)
	keywords := s.classifier.MatchedKeywords(text)
	intel := ExtractIntelligence(raw)

	session := s.store.Update(sessionID, func(sess *models.Session) {
		sess.Record(raw, intel, keywords)
	})

	outcome := Outcome{
		SessionID: sessionID,
		IsScam:    isScam,
		Reply:     s.replies.Select(isScam),
		Session:   session,
	}

	log.Printf("🕵️  Session %s message #%d scam=%v: %s", sessionID, len(session.Messages), isScam, utils.Preview(raw, 60))

	if isScam && s.reports != nil {
		outcome.Reported = s.reports.Submit(models.NewCallbackPayload(session, s.agentNotes))
	}

	return outcome
}
