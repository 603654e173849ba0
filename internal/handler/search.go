package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/worldwanderer/flightsearch/internal/models"
	"github.com/worldwanderer/flightsearch/internal/search"
)

type SearchHandler struct {
	validator *search.Validator
}

func NewSearchHandler(v *search.Validator) *SearchHandler {
	return &SearchHandler{
		validator: v,
	}
}

// Validate runs a candidate search through the rule pipeline. The verdict is
// always HTTP 200 with an accepted flag; only an unparseable body is a 400.
func (h *SearchHandler) Validate(c echo.Context) error {
	var req models.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "invalid_request",
			Message: "Failed to parse request body: " + err.Error(),
			Code:    http.StatusBadRequest,
		})
	}

	if !h.validator.Validate(req) {
		return c.JSON(http.StatusOK, models.ValidateResponse{
			Accepted: false,
		})
	}

	committed, _ := h.validator.Committed()
	return c.JSON(http.StatusOK, models.ValidateResponse{
		Accepted: true,
		Search:   &committed,
	})
}

// LastSearch returns the most recently accepted search, or 404 when no
// request has been accepted yet.
func (h *SearchHandler) LastSearch(c echo.Context) error {
	committed, ok := h.validator.Committed()
	if !ok {
		return c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "not_found",
			Message: "No search has been accepted yet",
			Code:    http.StatusNotFound,
		})
	}

	return c.JSON(http.StatusOK, models.LastSearchResponse{
		Search: committed,
	})
}

func HealthHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{
		"status": "ok",
	})
}
