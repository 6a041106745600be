package handler

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/domain"
	"github.com/civicworks/complaint-system/internal/core/ports"
	"github.com/civicworks/complaint-system/internal/pkg/messages"
)

type UserHandler struct {
	userService ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

type userRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=USER AGENCY ADMIN"`
}

type userUpdateRequest struct {
	Username string `json:"username" validate:"omitempty,min=3,max=50"`
	Email    string `json:"email"    validate:"omitempty,email"`
	Password string `json:"password" validate:"omitempty,min=8,max=100"`
	Role     string `json:"role"     validate:"omitempty,oneof=USER AGENCY ADMIN"`
}

// Create registers a new user account with an explicit role.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Param        body  body      userRequest  true  "User details"
// @Success      201   {object}  envelope
// @Router       /api/v1/users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req userRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Create(c.Request().Context(), ports.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return respondCreated(c, fmt.Sprintf("/api/v1/users/%s", user.ID), user)
}

func (h *UserHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	user, err := h.userService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, user)
}

// List returns all users, optionally filtered by role.
func (h *UserHandler) List(c echo.Context) error {
	var role *domain.Role
	if raw := c.QueryParam("role"); raw != "" {
		parsed, ok := domain.ParseRole(raw)
		if !ok {
			return domain.NewValidationError().Add("role", messages.Get("user.role.invalid", raw))
		}
		role = &parsed
	}

	users, err := h.userService.List(c.Request().Context(), role)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, users)
}

func (h *UserHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req userUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	user, err := h.userService.Update(c.Request().Context(), id, ports.UserInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, user)
}

func (h *UserHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.userService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}

// parseID reads the :id path parameter as a UUID.
func parseID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}
