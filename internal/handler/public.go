package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/car-wash-booking/internal/repository"
)

// PublicHandler serves the unauthenticated catalog endpoints.
type PublicHandler struct {
	Stages   *repository.StageRepo
	Packages *repository.PackageRepo
}

func NewPublicHandler(s *repository.StageRepo, p *repository.PackageRepo) *PublicHandler {
	return &PublicHandler{Stages: s, Packages: p}
}

// ListStages returns the pipeline catalog in pipeline order.
func (h *PublicHandler) ListStages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	stages, err := h.Stages.List(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, stages)
}

// ListPackages returns the bookable packages, cheapest first.
func (h *PublicHandler) ListPackages(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	packages, err := h.Packages.ListActive(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, packages)
}
