package emaillog

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/config"
	esvc "github.com/fahad1722/mail-sender/internal/email/service"
	ctrl "github.com/fahad1722/mail-sender/internal/emaillog/controller"
	repo "github.com/fahad1722/mail-sender/internal/emaillog/repository"
	svc "github.com/fahad1722/mail-sender/internal/emaillog/service"
	"github.com/fahad1722/mail-sender/internal/templates"
)

// Register wires the email dispatch module and registers HTTP routes.
func Register(e *echo.Echo, pg *pgxpool.Pool, tpl templates.Templates, cfg config.Config, log zerolog.Logger) {
	r := repo.New(pg)
	sender := esvc.NewRouter(cfg)
	d := svc.NewDispatcher(sender, r, tpl, cfg, log)
	c := ctrl.New(d, r, tpl, cfg, log)
	c.Register(e)
}
