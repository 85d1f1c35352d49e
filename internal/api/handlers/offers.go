package handlers

import (
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/store"
	"github.com/Chiosap01/allcascais/pkg/derive"
	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// OfferHandler handles the offers endpoints.
type OfferHandler struct {
	store store.Store
	now   func() time.Time
}

// NewOfferHandler creates a new OfferHandler.
func NewOfferHandler(s store.Store) *OfferHandler {
	return &OfferHandler{store: s, now: time.Now}
}

func parseOfferFilters(c echo.Context) (domain.OfferFilters, error) {
	f := domain.OfferFilters{
		Category:        domain.CategoryID(c.QueryParam("category")),
		Subcategory:     c.QueryParam("subcategory"),
		HighlightedOnly: c.QueryParam("highlighted_only") == "true",
	}

	if loc := c.QueryParam("location"); loc != "" {
		f.Location = &loc
	}
	if raw := c.QueryParam("max_price"); raw != "" {
		maxPrice, err := derive.ParseAmount(raw)
		if err != nil {
			return f, errors.New("max_price must be a number")
		}
		f.MaxPrice = &maxPrice
	}

	return f, nil
}

// List handles GET /api/v1/offers. Expired offers are dropped before any
// user filter is applied.
func (h *OfferHandler) List(c echo.Context) error {
	filters, err := parseOfferFilters(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": err.Error()})
	}

	raws, err := h.store.ListOffers(c.Request().Context())
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing offers: " + err.Error(),
		})
	}

	offers := directory.FilterOffers(
		directory.MapOffers(raws),
		filters,
		domain.ParsePriceSort(c.QueryParam("sort")),
		h.now(),
	)
	return c.JSON(http.StatusOK, offers)
}

// Get handles GET /api/v1/offers/:id. Expired offers stay fetchable by id;
// only the public list hides them.
func (h *OfferHandler) Get(c echo.Context) error {
	raw, err := h.store.GetOffer(c.Request().Context(), c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "offer not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "getting offer: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, directory.MapOffer(*raw))
}

// ListMine handles GET /api/v1/my/offers, expired ones included.
func (h *OfferHandler) ListMine(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	raws, err := h.store.ListOffersByOwner(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing offers: " + err.Error(),
		})
	}

	return c.JSON(http.StatusOK, directory.MapOffers(raws))
}

func (h *OfferHandler) validateOffer(o *domain.Offer, isCreate bool) string {
	if o.Title == "" {
		return "title is required"
	}
	if o.CategoryID == "" || o.CategoryID == domain.CategoryAll {
		return "category_id is required"
	}
	if o.OriginalPrice != nil && *o.OriginalPrice < 0 {
		return "original_price must not be negative"
	}
	if o.DiscountedPrice != nil && *o.DiscountedPrice < 0 {
		return "discounted_price must not be negative"
	}
	if o.Highlight != "" && domain.ParseHighlight(string(o.Highlight)) == "" {
		return "highlight must be one of: new, last-minute, popular"
	}
	if isCreate && !validUntilAfterToday(o.ValidUntil, h.now()) {
		return "valid_until must be after today"
	}
	return ""
}

// validUntilAfterToday enforces the create-side rule: a new offer's end date
// must lie strictly after today, date-only. The public list's expiry rule is
// looser and keeps an already-published offer through its last valid day.
func validUntilAfterToday(validUntil *time.Time, now time.Time) bool {
	if validUntil == nil {
		return true
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	vy, vm, vd := validUntil.Date()
	return time.Date(vy, vm, vd, 0, 0, 0, 0, now.Location()).After(today)
}

// Create handles POST /api/v1/offers.
func (h *OfferHandler) Create(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var o domain.Offer
	if err := c.Bind(&o); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := h.validateOffer(&o, true); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	o.OwnerID = userID
	if err := h.store.CreateOffer(c.Request().Context(), &o); err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating offer: " + err.Error(),
		})
	}

	// Echo the derived figures back the way the list endpoint would.
	o.DiscountPercent = derive.DiscountPercent(o.OriginalPrice, o.DiscountedPrice)
	o.DiscountAmount = derive.DiscountAmount(o.OriginalPrice, o.DiscountedPrice)

	return c.JSON(http.StatusCreated, o)
}

// Update handles PUT /api/v1/offers/:id.
func (h *OfferHandler) Update(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var o domain.Offer
	if err := c.Bind(&o); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if msg := h.validateOffer(&o, false); msg != "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": msg})
	}

	o.ID = c.Param("id")
	o.OwnerID = userID

	err := h.store.UpdateOffer(c.Request().Context(), &o)
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "offer not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "updating offer: " + err.Error(),
		})
	}

	o.DiscountPercent = derive.DiscountPercent(o.OriginalPrice, o.DiscountedPrice)
	o.DiscountAmount = derive.DiscountAmount(o.OriginalPrice, o.DiscountedPrice)

	return c.JSON(http.StatusOK, o)
}

// Delete handles DELETE /api/v1/offers/:id.
func (h *OfferHandler) Delete(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	err := h.store.DeleteOffer(c.Request().Context(), userID, c.Param("id"))
	if errors.Is(err, store.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "offer not found"})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "deleting offer: " + err.Error(),
		})
	}

	return c.NoContent(http.StatusNoContent)
}
