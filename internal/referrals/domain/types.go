package domain

import (
	"context"
	"errors"
)

// Referral is a LinkedIn contact who may refer at a company.
type Referral struct {
	ID          int64  `json:"id"`
	CompanyName string `json:"companyName"`
	LinkedInURL string `json:"linkedInUrl"`
}

// ErrNotFound is returned when a referral id does not exist.
var ErrNotFound = errors.New("referral not found")

// Repository abstracts persistence for referrals. The store assigns ids.
type Repository interface {
	Create(ctx context.Context, companyName, linkedInURL string) (Referral, error)
	List(ctx context.Context) ([]Referral, error)
	GetByID(ctx context.Context, id int64) (Referral, error)
	Update(ctx context.Context, id int64, companyName, linkedInURL string) (Referral, error)
	Delete(ctx context.Context, id int64) (bool, error)
}

// Service encapsulates business logic for referrals.
type Service interface {
	Create(ctx context.Context, companyName, linkedInURL string) (Referral, error)
	List(ctx context.Context) ([]Referral, error)
	Update(ctx context.Context, id int64, companyName, linkedInURL string) (Referral, error)
	Delete(ctx context.Context, id int64) error
}
