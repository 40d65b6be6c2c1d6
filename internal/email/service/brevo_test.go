package service

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/jarcoal/httpmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahad1722/mail-sender/internal/config"
	edomain "github.com/fahad1722/mail-sender/internal/email/domain"
)

func TestBrevo_NotConfigured(t *testing.T) {
	cfg, _ := config.Load()
	cfg.BrevoAPIKey = ""
	b := NewBrevo(cfg)
	err := b.Send(context.Background(), edomain.Message{To: "a@b.com"})
	require.Error(t, err)
}

func TestBrevo_SendsPayloadWithAttachment(t *testing.T) {
	cfg, _ := config.Load()
	cfg.BrevoAPIKey = "test-key"
	cfg.SenderEmail = "me@example.com"
	b := NewBrevo(cfg)

	httpmock.ActivateNonDefault(b.http)
	defer httpmock.DeactivateAndReset()

	var got brevoEmail
	httpmock.RegisterResponder(http.MethodPost, brevoEndpoint,
		func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "test-key", req.Header.Get("api-key"))
			require.NoError(t, json.NewDecoder(req.Body).Decode(&got))
			return httpmock.NewStringResponse(http.StatusCreated, `{"messageId":"1"}`), nil
		})

	resume := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(resume, []byte("%PDF-fake"), 0o644))

	err := b.Send(context.Background(), edomain.Message{
		To:             "hr@acme.example",
		Subject:        "Job Application",
		Body:           "see attachment",
		AttachmentPath: resume,
		AttachmentName: "resume.pdf",
	})
	require.NoError(t, err)

	require.Len(t, got.To, 1)
	assert.Equal(t, "hr@acme.example", got.To[0]["email"])
	assert.Equal(t, "me@example.com", got.Sender["email"])
	assert.Equal(t, "Job Application", got.Subject)
	require.Len(t, got.Attachment, 1)
	assert.Equal(t, "resume.pdf", got.Attachment[0].Name)
	decoded, err := base64.StdEncoding.DecodeString(got.Attachment[0].Content)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-fake", string(decoded))
}

func TestBrevo_Non2xxIsError(t *testing.T) {
	cfg, _ := config.Load()
	cfg.BrevoAPIKey = "test-key"
	b := NewBrevo(cfg)

	httpmock.ActivateNonDefault(b.http)
	defer httpmock.DeactivateAndReset()
	httpmock.RegisterResponder(http.MethodPost, brevoEndpoint,
		httpmock.NewStringResponder(http.StatusUnauthorized, `{"message":"bad key"}`))

	err := b.Send(context.Background(), edomain.Message{To: "a@b.com"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "brevo send failed")
}

func TestBrevo_MissingAttachmentFileIsError(t *testing.T) {
	cfg, _ := config.Load()
	cfg.BrevoAPIKey = "test-key"
	b := NewBrevo(cfg)

	err := b.Send(context.Background(), edomain.Message{
		To:             "a@b.com",
		AttachmentPath: filepath.Join(t.TempDir(), "nope.pdf"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "read attachment")
}
