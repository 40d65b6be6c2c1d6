package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/fahad1722/mail-sender/internal/referrals/domain"
)

type PostgresRepository struct {
	pg *pgxpool.Pool
}

func New(pg *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pg: pg}
}

func (r *PostgresRepository) Create(ctx context.Context, companyName, linkedInURL string) (domain.Referral, error) {
	var ref domain.Referral
	err := r.pg.QueryRow(ctx,
		`INSERT INTO referrals (company_name, linkedin_url)
         VALUES ($1, $2)
         RETURNING id, company_name, linkedin_url`,
		companyName, linkedInURL,
	).Scan(&ref.ID, &ref.CompanyName, &ref.LinkedInURL)
	return ref, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Referral, error) {
	rows, err := r.pg.Query(ctx,
		`SELECT id, company_name, linkedin_url FROM referrals ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Referral{}
	for rows.Next() {
		var ref domain.Referral
		if err := rows.Scan(&ref.ID, &ref.CompanyName, &ref.LinkedInURL); err != nil {
			return nil, err
		}
		out = append(out, ref)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (domain.Referral, error) {
	var ref domain.Referral
	err := r.pg.QueryRow(ctx,
		`SELECT id, company_name, linkedin_url FROM referrals WHERE id = $1`, id,
	).Scan(&ref.ID, &ref.CompanyName, &ref.LinkedInURL)
	return ref, err
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, companyName, linkedInURL string) (domain.Referral, error) {
	var ref domain.Referral
	err := r.pg.QueryRow(ctx,
		`UPDATE referrals
         SET company_name = $2, linkedin_url = $3
         WHERE id = $1
         RETURNING id, company_name, linkedin_url`,
		id, companyName, linkedInURL,
	).Scan(&ref.ID, &ref.CompanyName, &ref.LinkedInURL)
	return ref, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pg.Exec(ctx, `DELETE FROM referrals WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
