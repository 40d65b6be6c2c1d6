package careers

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	ctrl "github.com/fahad1722/mail-sender/internal/careers/controller"
	repo "github.com/fahad1722/mail-sender/internal/careers/repository"
	svc "github.com/fahad1722/mail-sender/internal/careers/service"
)

// Register wires the careers module and registers HTTP routes.
func Register(e *echo.Echo, pg *pgxpool.Pool, log zerolog.Logger) {
	r := repo.New(pg)
	s := svc.New(r)
	c := ctrl.New(s, log)
	c.Register(e)
}
