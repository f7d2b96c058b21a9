package services

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/bffgym/pos-be/models"
)

// RemoteSink delivers one event to the remote ledger. A nil return is an
// acknowledged delivery; anything else leaves the event queued.
type RemoteSink interface {
	Send(ev models.OutboundEvent) error
}

// WebhookSink posts the event envelope to the Apps Script webhook. The
// body goes out as text/plain so the Apps Script endpoint receives it
// without a CORS preflight, same as the tablet client it replaces. The
// script answers with a bare "OK" on success.
type WebhookSink struct {
	url    string
	secret string
	client *http.Client

	// AssumeOpaqueOK treats any 2xx response as delivered even when the
	// body is not the "OK" sentinel. This is the original client's
	// trade-off made explicit: turn it off to require a real
	// acknowledgement before the event leaves the queue.
	AssumeOpaqueOK bool
}

func NewWebhookSink(url, secret string, timeout time.Duration) *WebhookSink {
	return &WebhookSink{
		url:    url,
		secret: secret,
		client: &http.Client{Timeout: timeout},
	}
}

type webhookEnvelope struct {
	Secret     string           `json:"secret"`
	Type       models.EventType `json:"type"`
	Payload    json.RawMessage  `json:"payload"`
	EnqueuedAt time.Time        `json:"enqueuedAt"`
}

func (s *WebhookSink) Send(ev models.OutboundEvent) error {
	body, err := json.Marshal(webhookEnvelope{
		Secret:     s.secret,
		Type:       ev.Type,
		Payload:    ev.Payload,
		EnqueuedAt: ev.EnqueuedAt,
	})
	if err != nil {
		return fmt.Errorf("encode envelope: %w", err)
	}

	resp, err := s.client.Post(s.url, "text/plain;charset=utf-8", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("post %s event: %w", ev.Type, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}

	text, err := io.ReadAll(io.LimitReader(resp.Body, 1024))
	if err != nil || strings.TrimSpace(string(text)) != "OK" {
		if s.AssumeOpaqueOK {
			log.Printf("[SINK] non-OK webhook response treated as delivered: %q", strings.TrimSpace(string(text)))
			return nil
		}
		return fmt.Errorf("webhook did not acknowledge: %q", strings.TrimSpace(string(text)))
	}
	return nil
}
