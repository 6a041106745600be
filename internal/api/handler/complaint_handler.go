package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/civicworks/complaint-system/internal/core/ports"
)

type ComplaintHandler struct {
	complaintService ports.ComplaintService
}

func NewComplaintHandler(complaintService ports.ComplaintService) *ComplaintHandler {
	return &ComplaintHandler{complaintService: complaintService}
}

// Create files a new complaint or aspiration.
//
// @Summary      File a complaint
// @Tags         complaints
// @Accept       json
// @Produce      json
// @Param        body  body      complaintRequest  true  "Complaint details"
// @Success      201   {object}  envelope
// @Failure      400   {object}  map[string]any
// @Router       /api/v1/complaints [post]
func (h *ComplaintHandler) Create(c echo.Context) error {
	var req complaintRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.complaintService.Create(c.Request().Context(), req.toInput())
	if err != nil {
		return err
	}

	return respondCreated(c, fmt.Sprintf("/api/v1/complaints/%s", complaint.ID), complaint)
}

func (h *ComplaintHandler) GetByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	complaint, err := h.complaintService.GetByID(c.Request().Context(), id)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, complaint)
}

// List returns complaints, filterable by submitter, category, agency,
// status and type.
func (h *ComplaintHandler) List(c echo.Context) error {
	filter := listFilter(
		c.QueryParam("userId"),
		c.QueryParam("categoryId"),
		c.QueryParam("agencyId"),
		c.QueryParam("status"),
		c.QueryParam("type"),
	)

	complaints, err := h.complaintService.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, complaints)
}

func (h *ComplaintHandler) Update(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	var req complaintUpdateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	complaint, err := h.complaintService.Update(c.Request().Context(), id, req.toInput())
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, complaint)
}

func (h *ComplaintHandler) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	if err := h.complaintService.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
