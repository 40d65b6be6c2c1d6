package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fahad1722/mail-sender/internal/config"
	edomain "github.com/fahad1722/mail-sender/internal/email/domain"
	domain "github.com/fahad1722/mail-sender/internal/emaillog/domain"
	"github.com/fahad1722/mail-sender/internal/logger"
	"github.com/fahad1722/mail-sender/internal/templates"
)

type fakeSender struct {
	err  error
	msgs []edomain.Message
}

func (f *fakeSender) Send(ctx context.Context, msg edomain.Message) error {
	f.msgs = append(f.msgs, msg)
	return f.err
}

type fakeLogRepo struct {
	appendErr error
	rows      []domain.EmailLog
}

func (f *fakeLogRepo) Append(ctx context.Context, email string, sentAt time.Time, status string) (domain.EmailLog, error) {
	if f.appendErr != nil {
		return domain.EmailLog{}, f.appendErr
	}
	l := domain.EmailLog{ID: int64(len(f.rows) + 1), Email: email, SentAt: sentAt, Status: status}
	f.rows = append(f.rows, l)
	return l, nil
}

func (f *fakeLogRepo) List(ctx context.Context) ([]domain.EmailLog, error) {
	return f.rows, nil
}

func newTestDispatcher(sender edomain.Sender, repo domain.Repository) domain.Dispatcher {
	cfg, _ := config.Load()
	cfg.SenderEmail = "me@example.com"
	cfg.ResumePath = "resources/resume.pdf"
	tpl := templates.Templates{Subject: "Job Application", Body: "From {{SENDER_EMAIL}}"}
	return NewDispatcher(sender, repo, tpl, cfg, logger.Nop())
}

func TestDispatch_SuccessWritesOneSuccessRow(t *testing.T) {
	sender := &fakeSender{}
	repo := &fakeLogRepo{}
	d := newTestDispatcher(sender, repo)

	msg, err := d.Dispatch(context.Background(), "hr@acme.example")
	require.NoError(t, err)
	assert.Equal(t, "Email sent to hr@acme.example", msg)

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "hr@acme.example", repo.rows[0].Email)
	assert.Equal(t, domain.StatusSuccess, repo.rows[0].Status)

	require.Len(t, sender.msgs, 1)
	assert.Equal(t, "Job Application", sender.msgs[0].Subject)
	assert.Equal(t, "From me@example.com", sender.msgs[0].Body)
	assert.Equal(t, "resume.pdf", sender.msgs[0].AttachmentName)
}

func TestDispatch_TransportFailureWritesOneFailedRow(t *testing.T) {
	sender := &fakeSender{err: errors.New("550 mailbox unavailable")}
	repo := &fakeLogRepo{}
	d := newTestDispatcher(sender, repo)

	_, err := d.Dispatch(context.Background(), "bad@")
	require.Error(t, err)
	assert.Equal(t, "550 mailbox unavailable", err.Error())

	require.Len(t, repo.rows, 1)
	assert.Equal(t, "bad@", repo.rows[0].Email)
	assert.Equal(t, domain.StatusFailed, repo.rows[0].Status)
}

func TestDispatch_ExactlyOneRowPerCall(t *testing.T) {
	sender := &fakeSender{}
	repo := &fakeLogRepo{}
	d := newTestDispatcher(sender, repo)

	for i := 0; i < 3; i++ {
		_, err := d.Dispatch(context.Background(), "hr@acme.example")
		require.NoError(t, err)
	}
	assert.Len(t, repo.rows, 3)
}

func TestDispatch_LogWriteFailureStillReportsSendOutcome(t *testing.T) {
	sender := &fakeSender{}
	repo := &fakeLogRepo{appendErr: errors.New("store unavailable")}
	d := newTestDispatcher(sender, repo)

	msg, err := d.Dispatch(context.Background(), "hr@acme.example")
	require.NoError(t, err)
	assert.Equal(t, "Email sent to hr@acme.example", msg)
}

func TestDispatch_LogWriteFailureKeepsTransportError(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	repo := &fakeLogRepo{appendErr: errors.New("store unavailable")}
	d := newTestDispatcher(sender, repo)

	_, err := d.Dispatch(context.Background(), "hr@acme.example")
	require.Error(t, err)
	assert.Equal(t, "connection refused", err.Error())
}
