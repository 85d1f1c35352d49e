package handlers

import (
	"errors"
	"net/http"
	"slices"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/store"
	"github.com/Chiosap01/allcascais/pkg/derive"
	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// PropertyHandler handles the real-estate endpoints.
type PropertyHandler struct {
	store store.Store
}

// NewPropertyHandler creates a new PropertyHandler.
func NewPropertyHandler(s store.Store) *PropertyHandler {
	return &PropertyHandler{store: s}
}

func parsePropertyFilters(c echo.Context) (domain.PropertyFilters, error) {
	f := domain.PropertyFilters{
		BuyRent: domain.BuyRent(c.QueryParam("buy_rent")),
		Type:    domain.PropertyType(c.QueryParam("type")),
	}

	if f.BuyRent != "" && f.BuyRent != domain.BuyRentBuy && f.BuyRent != domain.BuyRentRent {
		return f, errors.New("buy_rent must be one of: buy, rent")
	}
	if f.Type != "" && !slices.Contains(domain.PropertyTypes, f.Type) {
		return f, errors.New("type is not a known property type")
	}

	if loc := c.QueryParam("location"); loc != "" {
		f.Location = &loc
	}

	intParams := []struct {
		name string
		dst  **int
	}{
		{"min_bedrooms", &f.MinBedrooms},
		{"min_bathrooms", &f.MinBathrooms},
	}
	for _, p := range intParams {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil {
			return f, errors.New(p.name + " must be an integer")
		}
		*p.dst = &n
	}

	amountParams := []struct {
		name string
		dst  **float64
	}{
		{"max_price", &f.MaxPrice},
		{"min_area", &f.MinArea},
		{"max_area", &f.MaxArea},
	}
	for _, p := range amountParams {
		raw := c.QueryParam(p.name)
		if raw == "" {
			continue
		}
		v, err := derive.ParseAmount(raw)
		if err != nil {
			return f, errors.New(p.name + " must be a number")
		}
		*p.dst = &v
	}

	return f, nil
}

// List handles GET /api/v1/properties: active listings only.
func (h *PropertyHandler) List(c echo.Context) error {
	filters, err := parsePropertyFilters(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	raws, err := h.store.ListActiveProperties(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing properties: " + err.Error(),
		})
	}

	properties := directory.FilterProperties(
		directory.MapProperties(raws),
		filters,
		domain.ParsePriceSort(c.QueryParam("sort")),
	)
	return c.JSON(http.StatusOK, properties)
}

// Get handles GET /api/v1/properties/:id. Sold and rented listings stay
// fetchable by id.
func (h *PropertyHandler) Get(c echo.Context) error {
	raw, err := h.store.GetProperty(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting property: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, directory.MapProperty(*raw))
}

// ListMine handles GET /api/v1/my/properties, every status included.
func (h *PropertyHandler) ListMine(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	raws, err := h.store.ListPropertiesByOwner(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing properties: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, directory.MapProperties(raws))
}

func validateProperty(p *domain.Property) string {
	if p.Title == "" {
		return "title is required"
	}
	if p.Location == "" {
		return "location is required"
	}
	if p.BuyRent != domain.BuyRentBuy && p.BuyRent != domain.BuyRentRent {
		return "buy_rent must be one of: buy, rent"
	}
	if !slices.Contains(domain.PropertyTypes, p.Type) {
		return "property_type is not a known property type"
	}
	switch p.Status {
	case "", domain.StatusActive, domain.StatusSold, domain.StatusRented:
	default:
		return "status must be one of: active, sold, rented"
	}
	if p.Price != nil && *p.Price < 0 {
		return "price must not be negative"
	}
	return ""
}

// Create handles POST /api/v1/properties.
func (h *PropertyHandler) Create(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var p domain.Property
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := validateProperty(&p); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	p.OwnerID = userID
	if err := h.store.CreateProperty(c.Request().Context(), &p); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating property: " + err.Error(),
		})
	}

	p.PricePerArea = derive.PricePerArea(p.Price, p.AreaForPricing())

	return c.JSON(http.StatusCreated, p)
}

// Update handles PUT /api/v1/properties/:id. Status changes (sold, rented)
// go through here too.
func (h *PropertyHandler) Update(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var p domain.Property
	if err := c.Bind(&p); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := validateProperty(&p); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	p.ID = c.Param("id")
	p.OwnerID = userID

	err := h.store.UpdateProperty(c.Request().Context(), &p)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating property: " + err.Error(),
		})
	}

	p.PricePerArea = derive.PricePerArea(p.Price, p.AreaForPricing())

	return c.JSON(http.StatusOK, p)
}

// Delete handles DELETE /api/v1/properties/:id.
func (h *PropertyHandler) Delete(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	err := h.store.DeleteProperty(c.Request().Context(), userID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "property not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting property: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
