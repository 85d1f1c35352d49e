package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/store"
	"github.com/Chiosap01/allcascais/pkg/derive"
	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// ServiceHandler handles the service directory endpoints.
type ServiceHandler struct {
	store store.Store
}

// NewServiceHandler creates a new ServiceHandler.
func NewServiceHandler(s store.Store) *ServiceHandler {
	return &ServiceHandler{store: s}
}

func parseServiceFilters(c echo.Context) (domain.ServiceFilters, error) {
	f := domain.ServiceFilters{
		Category:    domain.CategoryID(c.QueryParam("category")),
		Subcategory: c.QueryParam("subcategory"),
		RatingMode:  domain.RatingAny,
	}

	switch c.QueryParam("rating") {
	case "", string(domain.RatingAny):
	case string(domain.RatingNone):
		f.RatingMode = domain.RatingNone
	case string(domain.RatingMin):
		f.RatingMode = domain.RatingMin
		minRating, err := derive.ParseAmount(c.QueryParam("min_rating"))
		if err != nil {
			return f, errors.New("min_rating must be a number when rating=min")
		}
		f.MinRating = minRating
	default:
		return f, errors.New("rating must be one of: any, no-rating, min")
	}

	return f, nil
}

// List handles GET /api/v1/services: the public directory, rated,
// localized, and filtered.
func (h *ServiceHandler) List(c echo.Context) error {
	locale := parseLocale(c.QueryParam("locale"))

	filters, err := parseServiceFilters(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	raws, err := h.store.ListVisibleServices(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing services: " + err.Error(),
		})
	}

	services := directory.MapServices(raws, locale)
	h.attachRatings(c, services)

	out := directory.FilterServices(services, filters)
	return c.JSON(http.StatusOK, out)
}

// attachRatings merges aggregated ratings into services. A ratings fetch
// failure leaves the directory unrated rather than failing the page.
func (h *ServiceHandler) attachRatings(c echo.Context, services []domain.Service) {
	ratings, err := h.store.ListRatings(c.Request().Context())
	if err != nil {
		return
	}
	directory.MergeRatings(services, directory.AggregateRatings(ratings))
}

// Get handles GET /api/v1/services/:id.
func (h *ServiceHandler) Get(c echo.Context) error {
	id := c.Param("id")
	locale := parseLocale(c.QueryParam("locale"))

	raw, err := h.store.GetService(c.Request().Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting service: " + err.Error(),
		})
	}

	svc := directory.MapService(*raw, locale)

	if ratings, err := h.store.ListRatingsForService(c.Request().Context(), id); err == nil {
		svc.Rating = directory.AggregateRatings(ratings)[id]
	}

	return c.JSON(http.StatusOK, svc)
}

// ListMine handles GET /api/v1/my/services: the caller's own listings,
// hidden ones included.
func (h *ServiceHandler) ListMine(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	raws, err := h.store.ListServicesByOwner(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing services: " + err.Error(),
		})
	}

	services := directory.MapServices(raws, parseLocale(c.QueryParam("locale")))
	h.attachRatings(c, services)
	return c.JSON(http.StatusOK, services)
}

func validateService(svc *domain.Service) string {
	if svc.Name == "" {
		return "name is required"
	}
	if svc.CategoryID == "" || svc.CategoryID == domain.CategoryAll {
		return "category_id is required"
	}
	for _, h := range svc.Hours {
		if !validDayKey(h.Day) {
			return "opening_hours contains an unknown day key"
		}
	}
	return ""
}

func validDayKey(day domain.DayKey) bool {
	for _, d := range domain.WeekOrder {
		if d == day {
			return true
		}
	}
	return false
}

// Create handles POST /api/v1/services.
func (h *ServiceHandler) Create(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := validateService(&svc); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	svc.OwnerID = userID
	if err := h.store.CreateService(c.Request().Context(), &svc); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating service: " + err.Error(),
		})
	}

	svc.HoursText = directory.CompactHours(svc.Hours, parseLocale(c.QueryParam("locale")))

	return c.JSON(http.StatusCreated, svc)
}

// Update handles PUT /api/v1/services/:id. Only the owner's rows are
// touched; anyone else gets a 404.
func (h *ServiceHandler) Update(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var svc domain.Service
	if err := c.Bind(&svc); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := validateService(&svc); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	svc.ID = c.Param("id")
	svc.OwnerID = userID

	err := h.store.UpdateService(c.Request().Context(), &svc)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating service: " + err.Error(),
		})
	}

	svc.HoursText = directory.CompactHours(svc.Hours, parseLocale(c.QueryParam("locale")))

	return c.JSON(http.StatusOK, svc)
}

// Delete handles DELETE /api/v1/services/:id.
func (h *ServiceHandler) Delete(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	err := h.store.DeleteService(c.Request().Context(), userID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "service not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting service: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
