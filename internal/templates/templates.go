package templates

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"
)

const (
	subjectFile = "email-subject.txt"
	bodyFile    = "email-body.txt"

	// Placeholder replaced with the configured sender address on render.
	senderPlaceholder = "{{SENDER_EMAIL}}"

	defaultSubject = "Job Application"
	defaultBody    = "Please find my resume attached."
)

// Templates holds the email subject and body template. It is built once at
// startup and shared read-only by all handlers.
type Templates struct {
	Subject string
	Body    string
}

// Load reads the subject and body template files from dir. On any read
// failure it logs a warning and falls back to the built-in defaults; it
// never fails.
func Load(dir string, log zerolog.Logger) Templates {
	t := Templates{Subject: defaultSubject, Body: defaultBody}

	subject, err := os.ReadFile(filepath.Join(dir, subjectFile))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load email templates, using defaults")
		return t
	}
	body, err := os.ReadFile(filepath.Join(dir, bodyFile))
	if err != nil {
		log.Warn().Err(err).Msg("failed to load email templates, using defaults")
		return t
	}

	t.Subject = strings.TrimSpace(string(subject))
	t.Body = string(body)
	log.Info().Msg("email templates loaded")
	return t
}

// Render substitutes every occurrence of the sender placeholder in the body
// template with senderEmail.
func (t Templates) Render(senderEmail string) string {
	return strings.ReplaceAll(t.Body, senderPlaceholder, senderEmail)
}
