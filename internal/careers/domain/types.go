package domain

import (
	"context"
	"errors"
)

// Career is a company careers-page link tracked for job applications.
type Career struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	CareerLink  string `json:"careerLink"`
}

// ErrNotFound is returned when a career id does not exist.
var ErrNotFound = errors.New("career not found")

// Repository abstracts persistence for careers. The store assigns ids.
type Repository interface {
	Create(ctx context.Context, companyName, careerLink string) (Career, error)
	List(ctx context.Context) ([]Career, error)
	GetByID(ctx context.Context, id int64) (Career, error)
	Update(ctx context.Context, id int64, companyName, careerLink string) (Career, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service encapsulates business logic for careers.
type Service interface {
	Create(ctx context.Context, companyName, careerLink string) (Career, error)
	List(ctx context.Context) ([]Career, error)
	Update(ctx context.Context, id int64, companyName, careerLink string) (Career, error)
	Delete(ctx context.Context, id int64) error
}
