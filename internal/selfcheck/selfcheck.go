package selfcheck

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/config"
	"github.com/fahad1722/mail-sender/internal/metrics"
)

// Task pings the service's own health endpoint on a cron schedule and logs
// the outcome. Failures are observed, never retried or propagated.
type Task struct {
	url    string
	spec   string
	client *http.Client
	cron   *cron.Cron
	log    zerolog.Logger
}

func New(cfg config.Config, log zerolog.Logger) *Task {
	return &Task{
		url:    cfg.SelfCheckURL,
		spec:   cfg.SelfCheckCron,
		client: &http.Client{Timeout: 10 * time.Second},
		cron:   cron.New(),
		log:    log,
	}
}

// Start schedules the task. It returns an error only for an invalid cron
// expression.
func (t *Task) Start() error {
	if _, err := t.cron.AddFunc(t.spec, t.run); err != nil {
		return fmt.Errorf("invalid self-check schedule %q: %w", t.spec, err)
	}
	t.cron.Start()
	t.log.Info().Str("cron", t.spec).Str("url", t.url).Msg("self-check scheduled")
	return nil
}

// Stop halts the schedule. Running invocations are not interrupted.
func (t *Task) Stop() {
	t.cron.Stop()
}

func (t *Task) run() {
	resp, err := t.client.Get(t.url)
	if err != nil {
		metrics.IncSelfCheck("failure")
		t.log.Error().Err(err).Msg("self-ping failed")
		return
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusOK {
		metrics.IncSelfCheck("failure")
		t.log.Error().Int("status", resp.StatusCode).Msg("self-ping returned non-OK status")
		return
	}
	metrics.IncSelfCheck("success")
	t.log.Info().Str("response", string(body)).Msg("self-ping successful")
}
