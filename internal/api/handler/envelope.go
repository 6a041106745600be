package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// envelope is the uniform response wrapper for successful calls. Error
// rendering lives in the API error handler.
type envelope struct {
	Code   int    `json:"code"`
	Status string `json:"status"`
	Data   any    `json:"data,omitempty"`
}

func respond(c echo.Context, code int, data any) error {
	return c.JSON(code, envelope{Code: code, Status: http.StatusText(code), Data: data})
}

// respondCreated renders 201 with a Location header pointing at the new
// resource.
func respondCreated(c echo.Context, location string, data any) error {
	c.Response().Header().Set(echo.HeaderLocation, location)
	return respond(c, http.StatusCreated, data)
}
