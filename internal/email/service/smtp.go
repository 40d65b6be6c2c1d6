package service

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/fahad1722/mail-sender/internal/config"
	edomain "github.com/fahad1722/mail-sender/internal/email/domain"
)

// Ensure SMTP implements domain.Sender
var _ edomain.Sender = (*SMTP)(nil)

type SMTP struct {
	cfg    config.Config
	dialer *gomail.Dialer
}

func NewSMTP(cfg config.Config) *SMTP {
	d := gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword)
	return &SMTP{cfg: cfg, dialer: d}
}

func (s *SMTP) Send(ctx context.Context, msg edomain.Message) error {
	m := gomail.NewMessage()
	m.SetHeader("From", s.cfg.SenderEmail)
	m.SetHeader("To", msg.To)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	if msg.AttachmentPath != "" {
		name := msg.AttachmentName
		if name == "" {
			name = msg.AttachmentPath
		}
		m.Attach(msg.AttachmentPath, gomail.Rename(name))
	}
	return s.dialer.DialAndSend(m)
}
