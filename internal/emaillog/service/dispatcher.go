package service

import (
	"context"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/config"
	edomain "github.com/fahad1722/mail-sender/internal/email/domain"
	domain "github.com/fahad1722/mail-sender/internal/emaillog/domain"
	"github.com/fahad1722/mail-sender/internal/metrics"
	"github.com/fahad1722/mail-sender/internal/templates"
)

type dispatcher struct {
	sender edomain.Sender
	repo   domain.Repository
	tpl    templates.Templates
	cfg    config.Config
	log    zerolog.Logger
	now    func() time.Time
}

// NewDispatcher returns the send-and-log dispatcher. The templates value is
// immutable and shared across calls.
func NewDispatcher(sender edomain.Sender, repo domain.Repository, tpl templates.Templates, cfg config.Config, log zerolog.Logger) domain.Dispatcher {
	return &dispatcher{sender: sender, repo: repo, tpl: tpl, cfg: cfg, log: log, now: time.Now}
}

// Dispatch performs a single send attempt and appends exactly one log row.
// The log write is best-effort: if it fails after the send, the persistence
// error is logged and the send outcome is still reported to the caller.
func (d *dispatcher) Dispatch(ctx context.Context, recipient string) (string, error) {
	d.log.Info().Str("to", recipient).Msg("attempting to send email")

	msg := edomain.Message{
		To:             recipient,
		Subject:        d.tpl.Subject,
		Body:           d.tpl.Render(d.cfg.SenderEmail),
		AttachmentPath: d.cfg.ResumePath,
		AttachmentName: filepath.Base(d.cfg.ResumePath),
	}
	sendErr := d.sender.Send(ctx, msg)

	status := domain.StatusSuccess
	if sendErr != nil {
		status = domain.StatusFailed
	}
	if _, logErr := d.repo.Append(ctx, recipient, d.now().UTC(), status); logErr != nil {
		d.log.Error().Err(logErr).Str("to", recipient).Str("status", status).Msg("failed to persist email log")
	}

	if sendErr != nil {
		metrics.IncEmailSent("failed")
		d.log.Error().Err(sendErr).Str("to", recipient).Msg("failed to send email")
		return "", sendErr
	}
	metrics.IncEmailSent("success")
	d.log.Info().Str("to", recipient).Msg("email sent")
	return "Email sent to " + recipient, nil
}
