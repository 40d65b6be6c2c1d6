package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/fahad1722/mail-sender/internal/emaillog/domain"
)

type PostgresRepository struct {
	pg *pgxpool.Pool
}

func New(pg *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pg: pg}
}

func (r *PostgresRepository) Append(ctx context.Context, email string, sentAt time.Time, status string) (domain.EmailLog, error) {
	var l domain.EmailLog
	err := r.pg.QueryRow(ctx,
		`INSERT INTO email_logs (email, sent_at, status)
         VALUES ($1, $2, $3)
         RETURNING id, email, sent_at, status`,
		email, sentAt, status,
	).Scan(&l.ID, &l.Email, &l.SentAt, &l.Status)
	return l, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.EmailLog, error) {
	// id is the tiebreak so the ordering stays stable for equal timestamps
	rows, err := r.pg.Query(ctx,
		`SELECT id, email, sent_at, status FROM email_logs ORDER BY sent_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.EmailLog{}
	for rows.Next() {
		var l domain.EmailLog
		if err := rows.Scan(&l.ID, &l.Email, &l.SentAt, &l.Status); err != nil {
			return nil, err
		}
		out = append(out, l)
	}
	return out, rows.Err()
}
