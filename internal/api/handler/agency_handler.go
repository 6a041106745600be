package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/ports"
)

type AgencyHandler struct {
	agencyService ports.AgencyService
}

func NewAgencyHandler(agencyService ports.AgencyService) *AgencyHandler {
	return &AgencyHandler{agencyService: agencyService}
}

type agencyUserRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

type agencyRequest struct {
	Name    string            `json:"name"    validate:"required,min=3,max=255"`
	Address string            `json:"address" validate:"required"`
	Phone   string            `json:"phone"   validate:"required,min=9,max=20"`
	User    agencyUserRequest `json:"user"    validate:"required"`
}

type agencyUpdateRequest struct {
	Name    string `json:"name"    validate:"required,min=3,max=255"`
	Address string `json:"address" validate:"required"`
	Phone   string `json:"phone"   validate:"required,min=9,max=20"`
	User    struct {
		Username string `json:"username" validate:"required,min=3,max=50"`
		Email    string `json:"email"    validate:"required,email"`
		Password string `json:"password" validate:"omitempty,min=8,max=100"`
	} `json:"user" validate:"required"`
}

// Create registers an agency together with its login account. Both rows
// are written in one transaction.
//
// @Summary      Create an agency
// @Tags         agencies
// @Accept       json
// @Produce      json
// @Param        body  body      agencyRequest  true  "Agency details"
// @Success      201   {object}  envelope
// @Router       /api/v1/agencies [post]
func (h *AgencyHandler) Create(c echo.Context) error {
	var req agencyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	agency, err := h.agencyService.Create(c.Request().Context(), ports.AgencyInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		User: ports.UserInput{
			Username: req.User.Username,
			Email:    req.User.Email,
			Password: req.User.Password,
		},
	})
	if err != nil {
		return err
	}

	return respondCreated(c, fmt.Sprintf("/api/v1/agencies/%s", agency.ID), agency)
}

func (h *AgencyHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	agency, err := h.agencyService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, agency)
}

func (h *AgencyHandler) List(c echo.Context) error {
	agencies, err := h.agencyService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, agencies)
}

func (h *AgencyHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req agencyUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	agency, err := h.agencyService.Update(c.Request().Context(), id, ports.AgencyInput{
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		User: ports.UserInput{
			Username: req.User.Username,
			Email:    req.User.Email,
			Password: req.User.Password,
		},
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, agency)
}

func (h *AgencyHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.agencyService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
