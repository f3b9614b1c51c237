package handler

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"github.com/iliyamo/car-wash-booking/internal/config"
	"github.com/iliyamo/car-wash-booking/internal/model"
	"github.com/iliyamo/car-wash-booking/internal/repository"
)

// AdminHandler manages the stage and package catalogs and staff
// provisioning.
type AdminHandler struct {
	Cfg      config.Config
	Stages   *repository.StageRepo
	Packages *repository.PackageRepo
	Users    *repository.UserRepo
}

func NewAdminHandler(cfg config.Config, s *repository.StageRepo, p *repository.PackageRepo, u *repository.UserRepo) *AdminHandler {
	return &AdminHandler{Cfg: cfg, Stages: s, Packages: p, Users: u}
}

type createStageReq struct {
	Name  string `json:"name"`
	Order uint32 `json:"order"`
}

type createPackageReq struct {
	Name            string `json:"name"`
	Price           string `json:"price"`
	DurationMinutes uint32 `json:"duration_minutes"`
}

type updatePackageReq struct {
	IsActive *bool `json:"is_active"`
}

type createUserReq struct {
	FullName string  `json:"full_name"`
	Phone    string  `json:"phone"`
	Email    *string `json:"email"`
	Password string  `json:"password"`
	Role     string  `json:"role"`
}

// CreateStage appends a stage to the pipeline catalog.
func (h *AdminHandler) CreateStage(c echo.Context) error {
	var req createStageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.Order == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive order required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s := &model.Stage{Name: req.Name, Order: req.Order}
	if err := h.Stages.Create(ctx, s); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "stage name or order already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create stage failed"})
	}
	return c.JSON(http.StatusCreated, s)
}

// CreatePackage adds a service package to the catalog.
func (h *AdminHandler) CreatePackage(c echo.Context) error {
	var req createPackageReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.Name = strings.TrimSpace(req.Name)
	if req.Name == "" || req.DurationMinutes == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and positive duration_minutes required"})
	}
	price, err := decimal.NewFromString(strings.TrimSpace(req.Price))
	if err != nil || price.IsNegative() {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "price must be a non-negative decimal"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := &model.Package{Name: req.Name, Price: price, DurationMinutes: req.DurationMinutes, IsActive: true}
	if err := h.Packages.Create(ctx, p); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "package name already in use"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create package failed"})
	}
	return c.JSON(http.StatusCreated, p)
}

// UpdatePackage toggles a package's availability.
func (h *AdminHandler) UpdatePackage(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid package id"})
	}
	var req updatePackageReq
	if err := c.Bind(&req); err != nil || req.IsActive == nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "is_active required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Packages.SetActive(ctx, id, *req.IsActive); err != nil {
		if errors.Is(err, repository.ErrPackageNotFound) {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "package not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update package failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// CreateUser provisions a staff or admin account.
func (h *AdminHandler) CreateUser(c echo.Context) error {
	var req createUserReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	req.FullName = strings.TrimSpace(req.FullName)
	req.Phone = strings.TrimSpace(req.Phone)
	if req.FullName == "" || req.Phone == "" || req.Password == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "full_name/phone/password required"})
	}
	if req.Role != model.RoleStaff && req.Role != model.RoleAdmin {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "role must be Staff or Admin"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid, err := h.Users.Create(ctx, req.FullName, req.Phone, req.Email, req.Password, req.Role, h.Cfg.BcryptCost)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return c.JSON(http.StatusConflict, echo.Map{"error": "phone or email already registered"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create user failed"})
	}
	return c.JSON(http.StatusCreated, echo.Map{"id": uid, "full_name": req.FullName, "phone": req.Phone, "role": req.Role})
}
