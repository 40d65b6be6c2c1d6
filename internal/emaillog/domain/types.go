package domain

import (
	"context"
	"time"
)

// EmailLog status values.
const (
	StatusSuccess = "SUCCESS"
	StatusFailed  = "FAILED"
)

// EmailLog records one send attempt. Rows are append-only and immutable.
type EmailLog struct {
	ID     int64     `json:"id"`
	Email  string    `json:"email"`
	SentAt time.Time `json:"sentAt"`
	Status string    `json:"status"`
}

// Repository abstracts persistence for email logs. The store assigns ids.
type Repository interface {
	Append(ctx context.Context, email string, sentAt time.Time, status string) (EmailLog, error)
	// List returns all logs ordered by sentAt descending.
	List(ctx context.Context) ([]EmailLog, error)
}

// Dispatcher sends the templated application email to a recipient and
// records exactly one log row per call, whatever the outcome.
type Dispatcher interface {
	Dispatch(ctx context.Context, recipient string) (string, error)
}
