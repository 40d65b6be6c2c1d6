package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/config"
	domain "github.com/fahad1722/mail-sender/internal/emaillog/domain"
	"github.com/fahad1722/mail-sender/internal/platform/validation"
	"github.com/fahad1722/mail-sender/internal/templates"
)

type Controller struct {
	dispatcher domain.Dispatcher
	repo       domain.Repository
	tpl        templates.Templates
	cfg        config.Config
	log        zerolog.Logger
}

func New(dispatcher domain.Dispatcher, repo domain.Repository, tpl templates.Templates, cfg config.Config, log zerolog.Logger) *Controller {
	return &Controller{dispatcher: dispatcher, repo: repo, tpl: tpl, cfg: cfg, log: log}
}

func (h *Controller) Register(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/send-email", h.sendEmail)
	g.GET("/emails", h.listEmails)
	g.GET("/templates", h.getTemplates)
}

type sendEmailReq struct {
	Email string `json:"email" validate:"required"`
}

type sendEmailResp struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

func (h *Controller) sendEmail(c echo.Context) error {
	var req sendEmailReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	msg, err := h.dispatcher.Dispatch(c.Request().Context(), req.Email)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, sendEmailResp{Status: "error", Message: err.Error()})
	}
	return c.JSON(http.StatusOK, sendEmailResp{Status: "success", Message: msg})
}

func (h *Controller) listEmails(c echo.Context) error {
	logs, err := h.repo.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list email logs failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	h.log.Info().Int("count", len(logs)).Msg("retrieved email logs")
	return c.JSON(http.StatusOK, logs)
}

func (h *Controller) getTemplates(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"subject": h.tpl.Subject,
		"body":    h.tpl.Render(h.cfg.SenderEmail),
	})
}
