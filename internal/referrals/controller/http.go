package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/fahad1722/mail-sender/internal/platform/validation"
	domain "github.com/fahad1722/mail-sender/internal/referrals/domain"
)

type Controller struct {
	svc domain.Service
	log zerolog.Logger
}

func New(svc domain.Service, log zerolog.Logger) *Controller {
	return &Controller{svc: svc, log: log}
}

func (h *Controller) Register(e *echo.Echo) {
	g := e.Group("/api")
	g.POST("/referrals", h.createReferral)
	g.GET("/referrals", h.listReferrals)
	g.PUT("/referrals/:id", h.updateReferral)
	g.DELETE("/referrals/:id", h.deleteReferral)
}

type referralReq struct {
	CompanyName string `json:"companyName" validate:"required"`
	LinkedInURL string `json:"linkedInUrl" validate:"required"`
}

func (h *Controller) createReferral(c echo.Context) error {
	var req referralReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	h.log.Info().Str("company", req.CompanyName).Msg("adding referral")
	ref, err := h.svc.Create(c.Request().Context(), req.CompanyName, req.LinkedInURL)
	if err != nil {
		h.log.Error().Err(err).Msg("create referral failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, ref)
}

func (h *Controller) listReferrals(c echo.Context) error {
	refs, err := h.svc.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list referrals failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, refs)
}

func (h *Controller) updateReferral(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var req referralReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	h.log.Info().Int64("id", id).Msg("updating referral")
	ref, err := h.svc.Update(c.Request().Context(), id, req.CompanyName, req.LinkedInURL)
	if errors.Is(err, domain.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("update referral failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.JSON(http.StatusOK, ref)
}

func (h *Controller) deleteReferral(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	h.log.Info().Int64("id", id).Msg("deleting referral")
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("delete referral failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	return c.NoContent(http.StatusOK)
}
