package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/store"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// SearchRequestHandler handles property search-request intake. The intake
// is write-only: requests are stored for manual follow-up and never read
// back through the API.
type SearchRequestHandler struct {
	store store.Store
}

// NewSearchRequestHandler creates a new SearchRequestHandler.
func NewSearchRequestHandler(s store.Store) *SearchRequestHandler {
	return &SearchRequestHandler{store: s}
}

func validateSearchRequest(r *domain.SearchRequest) string {
	if r.Type != domain.BuyRentBuy && r.Type != domain.BuyRentRent {
		return "type must be one of: buy, rent"
	}
	if r.Name == "" {
		return "name is required"
	}
	if r.Email == "" {
		return "email is required"
	}
	if r.FromDate != nil && r.ToDate != nil && r.ToDate.Before(*r.FromDate) {
		return "to_date must not be before from_date"
	}
	if r.MinSize != nil && *r.MinSize <= 0 {
		return "min_size must be positive"
	}
	return ""
}

// Create handles POST /api/v1/search-requests.
func (h *SearchRequestHandler) Create(c echo.Context) error {
	var req domain.SearchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := validateSearchRequest(&req); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	if err := h.store.CreateSearchRequest(c.Request().Context(), &req); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating search request: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, req)
}
