package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/ports"
)

type CategoryHandler struct {
	categoryService ports.CategoryService
}

func NewCategoryHandler(categoryService ports.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

type categoryRequest struct {
	Name        string `json:"name" validate:"required,min=3,max=100"`
	Description string `json:"description" validate:"omitempty,max=4000"`
}

// Create adds a new complaint category.
//
// @Summary      Create a category
// @Tags         categories
// @Accept       json
// @Produce      json
// @Param        body  body      categoryRequest  true  "Category details"
// @Success      201   {object}  envelope
// @Router       /api/v1/categories [post]
func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Create(c.Request().Context(), ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return respondCreated(c, fmt.Sprintf("/api/v1/categories/%s", category.ID), category)
}

func (h *CategoryHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	category, err := h.categoryService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, category)
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.categoryService.List(c.Request().Context())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, categories)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	category, err := h.categoryService.Update(c.Request().Context(), id, ports.CategoryInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, category)
}

// Delete removes a category. Categories still referenced by complaints
// are refused.
func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.categoryService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
