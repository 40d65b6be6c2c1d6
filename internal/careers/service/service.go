package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domain "github.com/fahad1722/mail-sender/internal/careers/domain"
)

type service struct {
	repo domain.Repository
}

func New(repo domain.Repository) domain.Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, companyName, careerLink string) (domain.Career, error) {
	return s.repo.Create(ctx, companyName, careerLink)
}

func (s *service) List(ctx context.Context) ([]domain.Career, error) {
	return s.repo.List(ctx)
}

func (s *service) Update(ctx context.Context, id int64, companyName, careerLink string) (domain.Career, error) {
	c, err := s.repo.Update(ctx, id, companyName, careerLink)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Career{}, domain.ErrNotFound
	}
	return c, err
}

func (s *service) Delete(ctx context.Context, id int64) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	return nil
}
