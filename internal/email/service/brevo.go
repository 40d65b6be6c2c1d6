package service

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/fahad1722/mail-sender/internal/config"
	edomain "github.com/fahad1722/mail-sender/internal/email/domain"
)

// Ensure Brevo implements domain.Sender
var _ edomain.Sender = (*Brevo)(nil)

const brevoEndpoint = "https://api.brevo.com/v3/smtp/email"

type Brevo struct {
	cfg  config.Config
	http *http.Client
}

func NewBrevo(cfg config.Config) *Brevo {
	return &Brevo{cfg: cfg, http: &http.Client{Timeout: 10 * time.Second}}
}

type brevoAttachment struct {
	Name    string `json:"name"`
	Content string `json:"content"` // base64
}

type brevoEmail struct {
	To          []map[string]string `json:"to"`
	Sender      map[string]string   `json:"sender"`
	Subject     string              `json:"subject"`
	TextContent string              `json:"textContent"`
	Attachment  []brevoAttachment   `json:"attachment,omitempty"`
}

func (b *Brevo) Send(ctx context.Context, msg edomain.Message) error {
	if b.cfg.BrevoAPIKey == "" {
		return fmt.Errorf("brevo not configured")
	}
	payload := brevoEmail{
		To:          []map[string]string{{"email": msg.To}},
		Sender:      map[string]string{"email": b.cfg.SenderEmail},
		Subject:     msg.Subject,
		TextContent: msg.Body,
	}
	if msg.AttachmentPath != "" {
		data, err := os.ReadFile(msg.AttachmentPath)
		if err != nil {
			return fmt.Errorf("read attachment: %w", err)
		}
		name := msg.AttachmentName
		if name == "" {
			name = msg.AttachmentPath
		}
		payload.Attachment = []brevoAttachment{{
			Name:    name,
			Content: base64.StdEncoding.EncodeToString(data),
		}}
	}
	buf, _ := json.Marshal(payload)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, brevoEndpoint, bytes.NewReader(buf))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("api-key", b.cfg.BrevoAPIKey)
	resp, err := b.http.Do(req)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode >= 300 {
		return fmt.Errorf("brevo send failed: %s", resp.Status)
	}
	return nil
}
