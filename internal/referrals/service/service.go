package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/metrics"
	"github.com/fahad1722/mail-sender/internal/platform/cache"
	domain "github.com/fahad1722/mail-sender/internal/referrals/domain"
)

const listCacheKey = "referrals:list"

type service struct {
	repo     domain.Repository
	cache    cache.Store
	cacheTTL time.Duration
	log      zerolog.Logger
}

// New returns a referral service. When store is non-nil, List results are
// cached under a single key and every mutation invalidates it. Cache errors
// degrade to the repository, never to the caller.
func New(repo domain.Repository, store cache.Store, ttl time.Duration, log zerolog.Logger) domain.Service {
	return &service{repo: repo, cache: store, cacheTTL: ttl, log: log}
}

func (s *service) Create(ctx context.Context, companyName, linkedInURL string) (domain.Referral, error) {
	ref, err := s.repo.Create(ctx, companyName, linkedInURL)
	if err == nil {
		s.invalidate(ctx)
	}
	return ref, err
}

func (s *service) List(ctx context.Context) ([]domain.Referral, error) {
	if s.cache != nil {
		if raw, ok, err := s.cache.Get(ctx, listCacheKey); err == nil && ok {
			var cached []domain.Referral
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				metrics.IncReferralCache("hit")
				return cached, nil
			}
		} else if err != nil {
			s.log.Debug().Err(err).Msg("referral cache read failed")
		}
		metrics.IncReferralCache("miss")
	}

	refs, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if raw, err := json.Marshal(refs); err == nil {
			if err := s.cache.Set(ctx, listCacheKey, string(raw), s.cacheTTL); err != nil {
				s.log.Debug().Err(err).Msg("referral cache write failed")
			}
		}
	}
	return refs, nil
}

func (s *service) Update(ctx context.Context, id int64, companyName, linkedInURL string) (domain.Referral, error) {
	ref, err := s.repo.Update(ctx, id, companyName, linkedInURL)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.Referral{}, domain.ErrNotFound
	}
	if err == nil {
		s.invalidate(ctx)
	}
	return ref, err
}

func (s *service) Delete(ctx context.Context, id int64) error {
	existed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !existed {
		return domain.ErrNotFound
	}
	s.invalidate(ctx)
	return nil
}

func (s *service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, listCacheKey); err != nil {
		s.log.Debug().Err(err).Msg("referral cache invalidation failed")
	}
}
