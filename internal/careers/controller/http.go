package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	domain "github.com/fahad1722/mail-sender/internal/careers/domain"
	"github.com/fahad1722/mail-sender/internal/platform/validation"
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
	g.POST("/careers", h.createCareer)
	g.GET("/careers", h.listCareers)
	g.PUT("/careers/:id", h.updateCareer)
	g.DELETE("/careers/:id", h.deleteCareer)
}

type careerReq struct {
	CompanyName string `json:"companyName" validate:"required"`
	CareerLink  string `json:"careerLink" validate:"required"`
}

func (h *Controller) createCareer(c echo.Context) error {
	var req careerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	h.log.Info().Str("company", req.CompanyName).Msg("adding career")
	career, err := h.svc.Create(c.Request().Context(), req.CompanyName, req.CareerLink)
	if err != nil {
		h.log.Error().Err(err).Msg("create career failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	h.log.Info().Int64("id", career.ID).Msg("career saved")
	return c.JSON(http.StatusOK, career)
}

func (h *Controller) listCareers(c echo.Context) error {
	careers, err := h.svc.List(c.Request().Context())
	if err != nil {
		h.log.Error().Err(err).Msg("list careers failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	h.log.Info().Int("count", len(careers)).Msg("retrieved careers")
	return c.JSON(http.StatusOK, careers)
}

func (h *Controller) updateCareer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	var req careerReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid json"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, validation.ErrorResponse(err))
	}
	career, err := h.svc.Update(c.Request().Context(), id, req.CompanyName, req.CareerLink)
	if errors.Is(err, domain.ErrNotFound) {
		h.log.Warn().Int64("id", id).Msg("career not found for update")
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("update career failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	h.log.Info().Int64("id", id).Msg("career updated")
	return c.JSON(http.StatusOK, career)
}

func (h *Controller) deleteCareer(c echo.Context) error {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid id"})
	}
	err = h.svc.Delete(c.Request().Context(), id)
	if errors.Is(err, domain.ErrNotFound) {
		h.log.Warn().Int64("id", id).Msg("career not found for deletion")
		return c.NoContent(http.StatusNotFound)
	}
	if err != nil {
		h.log.Error().Err(err).Int64("id", id).Msg("delete career failed")
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
	h.log.Info().Int64("id", id).Msg("career deleted")
	return c.NoContent(http.StatusOK)
}
