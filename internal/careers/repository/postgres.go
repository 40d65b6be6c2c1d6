package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	domain "github.com/fahad1722/mail-sender/internal/careers/domain"
)

type PostgresRepository struct {
	pg *pgxpool.Pool
}

func New(pg *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pg: pg}
}

func (r *PostgresRepository) Create(ctx context.Context, companyName, careerLink string) (domain.Career, error) {
	var c domain.Career
	err := r.pg.QueryRow(ctx,
		`INSERT INTO company_careers (company_name, career_link)
         VALUES ($1, $2)
         RETURNING id, company_name, career_link`,
		companyName, careerLink,
	).Scan(&c.ID, &c.CompanyName, &c.CareerLink)
	return c, err
}

func (r *PostgresRepository) List(ctx context.Context) ([]domain.Career, error) {
	rows, err := r.pg.Query(ctx,
		`SELECT id, company_name, career_link FROM company_careers ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []domain.Career{}
	for rows.Next() {
		var c domain.Career
		if err := rows.Scan(&c.ID, &c.CompanyName, &c.CareerLink); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *PostgresRepository) GetByID(ctx context.Context, id int64) (domain.Career, error) {
	var c domain.Career
	err := r.pg.QueryRow(ctx,
		`SELECT id, company_name, career_link FROM company_careers WHERE id = $1`, id,
	).Scan(&c.ID, &c.CompanyName, &c.CareerLink)
	return c, err
}

func (r *PostgresRepository) Update(ctx context.Context, id int64, companyName, careerLink string) (domain.Career, error) {
	var c domain.Career
	err := r.pg.QueryRow(ctx,
		`UPDATE company_careers
         SET company_name = $2, career_link = $3
         WHERE id = $1
         RETURNING id, company_name, career_link`,
		id, companyName, careerLink,
	).Scan(&c.ID, &c.CompanyName, &c.CareerLink)
	return c, err
}

func (r *PostgresRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.pg.Exec(ctx, `DELETE FROM company_careers WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}
