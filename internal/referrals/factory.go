package referrals

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/config"
	"github.com/fahad1722/mail-sender/internal/platform/cache"
	ctrl "github.com/fahad1722/mail-sender/internal/referrals/controller"
	repo "github.com/fahad1722/mail-sender/internal/referrals/repository"
	svc "github.com/fahad1722/mail-sender/internal/referrals/service"
)

// Register wires the referrals module and registers HTTP routes.
// store may be nil, in which case list caching is disabled.
func Register(e *echo.Echo, pg *pgxpool.Pool, store cache.Store, cfg config.Config, log zerolog.Logger) {
	r := repo.New(pg)
	s := svc.New(r, store, cfg.ReferralCacheTTL, log)
	c := ctrl.New(s, log)
	c.Register(e)
}
