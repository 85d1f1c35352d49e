package handlers

import (
	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/store"
	"github.com/Chiosap01/allcascais/internal/uploads"
)

// RegisterRoutes mounts every API handler on e. Upload routes are skipped
// when files is nil, which keeps the API usable without a writable disk.
func RegisterRoutes(e *echo.Echo, st store.Store, files *uploads.Store, maxUploadsPerBatch int) {
	health := NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)

	v1 := e.Group("/api/v1")

	meta := NewMetaHandler()
	v1.GET("/categories", meta.Categories)
	v1.GET("/languages", meta.Languages)

	services := NewServiceHandler(st)
	v1.GET("/services", services.List)
	v1.GET("/services/:id", services.Get)
	v1.POST("/services", services.Create)
	v1.PUT("/services/:id", services.Update)
	v1.DELETE("/services/:id", services.Delete)
	v1.GET("/my/services", services.ListMine)

	ratings := NewRatingHandler(st)
	v1.GET("/services/:id/ratings", ratings.List)
	v1.POST("/services/:id/ratings", ratings.Create)

	offers := NewOfferHandler(st)
	v1.GET("/offers", offers.List)
	v1.GET("/offers/:id", offers.Get)
	v1.POST("/offers", offers.Create)
	v1.PUT("/offers/:id", offers.Update)
	v1.DELETE("/offers/:id", offers.Delete)
	v1.GET("/my/offers", offers.ListMine)

	properties := NewPropertyHandler(st)
	v1.GET("/properties", properties.List)
	v1.GET("/properties/:id", properties.Get)
	v1.POST("/properties", properties.Create)
	v1.PUT("/properties/:id", properties.Update)
	v1.DELETE("/properties/:id", properties.Delete)
	v1.GET("/my/properties", properties.ListMine)

	searches := NewSearchRequestHandler(st)
	v1.POST("/search-requests", searches.Create)

	if files != nil {
		uploadsHandler := NewUploadHandler(files, maxUploadsPerBatch)
		v1.POST("/uploads", uploadsHandler.Create)
	}
}
