package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/Ananth-NQI/scam-honeypot/internal/models"
)

func samplePayload() models.CallbackPayload {
	s := models.NewSession("sess-1")
	s.Record("pay to user@upi", models.Intelligence{UPIIDs: []string{"user@upi"}}, []string{"upi"})
	s.Record("again user@upi", models.Intelligence{UPIIDs: []string{"user@upi"}}, []string{"upi"})
	return models.NewCallbackPayload(s, "notes")
}

func TestCallbackNotifier_PostsPayload(t *testing.T) {
	type captured struct {
		method      string
		contentType string
		payload     models.CallbackPayload
		decodeErr   error
	}
	received := make(chan captured, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		c := captured{method: r.Method, contentType: r.Header.Get("Content-Type")}
		c.decodeErr = json.NewDecoder(r.Body).Decode(&c.payload)
		received <- c
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	n := NewCallbackNotifier(srv.URL, 2*time.Second)
	result := n.Notify(context.Background(), samplePayload())
	require.True(t, result.OK(), "%v", result.Err)
	require.Equal(t, http.StatusOK, result.StatusCode)
	require.Equal(t, "callback", result.Notifier)

	c := <-received
	require.NoError(t, c.decodeErr)
	require.Equal(t, http.MethodPost, c.method)
	require.Contains(t, c.contentType, "application/json")

	p := c.payload
	require.Equal(t, "sess-1", p.SessionID)
	require.True(t, p.ScamDetected)
	require.Equal(t, 2, p.TotalMessagesExchanged)
	require.Equal(t, []string{"user@upi"}, p.ExtractedIntelligence.UPIIDs)
	require.Equal(t, []string{"upi"}, p.ExtractedIntelligence.SuspiciousKeywords)
	require.Equal(t, "notes", p.AgentNotes)
}

func TestCallbackNotifier_Non2xxIsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	result := NewCallbackNotifier(srv.URL, 2*time.Second).Notify(context.Background(), samplePayload())
	require.False(t, result.OK())
	require.Equal(t, http.StatusInternalServerError, result.StatusCode)
}

func TestCallbackNotifier_ConnectionRefused(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	result := NewCallbackNotifier(url, time.Second).Notify(context.Background(), samplePayload())
	require.False(t, result.OK())
}

func TestCallbackNotifier_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	start := time.Now()
	result := NewCallbackNotifier(srv.URL, 100*time.Millisecond).Notify(context.Background(), samplePayload())
	require.False(t, result.OK())
	require.Less(t, time.Since(start), 450*time.Millisecond)
}

func TestCallbackNotifier_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result := NewCallbackNotifier("http://127.0.0.1:1", time.Second).Notify(ctx, samplePayload())
	require.ErrorIs(t, result.Err, context.Canceled)
}

func TestCallbackNotifier_ContextDeadlineShortensTimeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	result := NewCallbackNotifier(srv.URL, 5*time.Second).Notify(ctx, samplePayload())
	require.False(t, result.OK())
	require.Less(t, time.Since(start), 450*time.Millisecond)
}

func TestCallbackNotifier_ExpiredDeadline(t *testing.T) {
	ctx, cancel := context.WithDeadline(context.Background(), time.Now().Add(-time.Second))
	defer cancel()

	result := NewCallbackNotifier("http://127.0.0.1:1", time.Second).Notify(ctx, samplePayload())
	require.ErrorIs(t, result.Err, context.DeadlineExceeded)
}
