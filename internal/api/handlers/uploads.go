package handlers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/metrics"
	"github.com/Chiosap01/allcascais/internal/uploads"
)

// UploadHandler handles image uploads for listings.
type UploadHandler struct {
	store       *uploads.Store
	maxPerBatch int
}

// NewUploadHandler creates a new UploadHandler.
func NewUploadHandler(s *uploads.Store, maxPerBatch int) *UploadHandler {
	return &UploadHandler{store: s, maxPerBatch: maxPerBatch}
}

// Create handles POST /api/v1/uploads: a multipart batch under the "files"
// field. Per-file failures are reported in the body, not as an error status.
func (h *UploadHandler) Create(c echo.Context) error {
	userID := currentUserID(c)
	if userID == "" {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing " + userIDHeader + " header"})
	}

	form, err := c.MultipartForm()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid multipart form: " + err.Error(),
		})
	}

	files := form.File["files"]
	if len(files) == 0 {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "no files provided under the files field",
		})
	}
	if h.maxPerBatch > 0 && len(files) > h.maxPerBatch {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": fmt.Sprintf("at most %d files per batch", h.maxPerBatch),
		})
	}

	results := h.store.SaveAll(userID, files)
	for _, r := range results {
		if r.Error != "" {
			metrics.UploadFailuresTotal.Inc()
			continue
		}
		metrics.UploadsTotal.Inc()
	}

	return c.JSON(http.StatusCreated, results)
}
