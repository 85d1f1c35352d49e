package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/metrics"
	"github.com/Chiosap01/allcascais/internal/store"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// RatingHandler handles rating submission and retrieval for services.
type RatingHandler struct {
	store store.Store
}

// NewRatingHandler creates a new RatingHandler.
func NewRatingHandler(s store.Store) *RatingHandler {
	return &RatingHandler{store: s}
}

// List handles GET /api/v1/services/:id/ratings.
func (h *RatingHandler) List(c echo.Context) error {
	ratings, err := h.store.ListRatingsForService(c.Request().Context(), c.Param("id"))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "listing ratings: " + err.Error(),
		})
	}

	if ratings == nil {
		ratings = []domain.Rating{}
	}
	return c.JSON(http.StatusOK, ratings)
}

type createRatingRequest struct {
	WorkQuality int    `json:"work_quality"`
	Punctuality int    `json:"punctuality"`
	Comment     string `json:"comment"`
}

// Create handles POST /api/v1/services/:id/ratings. One rating per user
// per service: a second submission is rejected with 409, never silently
// overwritten.
func (h *RatingHandler) Create(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	var req createRatingRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body: " + err.Error(),
		})
	}

	if req.WorkQuality < 1 || req.WorkQuality > 5 || req.Punctuality < 1 || req.Punctuality > 5 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "work_quality and punctuality must be between 1 and 5",
		})
	}

	r := domain.Rating{
		ServiceID:   c.Param("id"),
		UserID:      userID,
		WorkQuality: req.WorkQuality,
		Punctuality: req.Punctuality,
		Comment:     req.Comment,
	}

	err := h.store.CreateRating(c.Request().Context(), &r)
	if errors.Is(err, store.ErrDuplicateRating) {
		metrics.RatingConflictsTotal.Inc()
		return c.JSON(http.StatusConflict, map[string]string{
			"error": "you have already rated this service",
		})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "creating rating: " + err.Error(),
		})
	}

	return c.JSON(http.StatusCreated, r)
}
