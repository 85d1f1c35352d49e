package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/Chiosap01/allcascais/internal/api/handlers"
	"github.com/Chiosap01/allcascais/internal/uploads"
	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// fakeStore implements store.Store through per-method function fields.
// Tests set only the methods a handler is expected to hit; anything else
// panics, which fails the test loudly.
type fakeStore struct {
	listVisibleServices func(ctx context.Context) ([]directory.RawService, error)
	listServicesByOwner func(ctx context.Context, ownerID string) ([]directory.RawService, error)
	getService          func(ctx context.Context, id string) (*directory.RawService, error)
	createService       func(ctx context.Context, svc *domain.Service) error
	updateService       func(ctx context.Context, svc *domain.Service) error
	deleteService       func(ctx context.Context, ownerID, id string) error

	listRatings           func(ctx context.Context) ([]domain.Rating, error)
	listRatingsForService func(ctx context.Context, serviceID string) ([]domain.Rating, error)
	createRating          func(ctx context.Context, r *domain.Rating) error

	listOffers        func(ctx context.Context) ([]directory.RawOffer, error)
	listOffersByOwner func(ctx context.Context, ownerID string) ([]directory.RawOffer, error)
	getOffer          func(ctx context.Context, id string) (*directory.RawOffer, error)
	createOffer       func(ctx context.Context, o *domain.Offer) error
	updateOffer       func(ctx context.Context, o *domain.Offer) error
	deleteOffer       func(ctx context.Context, ownerID, id string) error

	listActiveProperties  func(ctx context.Context) ([]directory.RawProperty, error)
	listPropertiesByOwner func(ctx context.Context, ownerID string) ([]directory.RawProperty, error)
	getProperty           func(ctx context.Context, id string) (*directory.RawProperty, error)
	createProperty        func(ctx context.Context, p *domain.Property) error
	updateProperty        func(ctx context.Context, p *domain.Property) error
	deleteProperty        func(ctx context.Context, ownerID, id string) error

	createSearchRequest func(ctx context.Context, r *domain.SearchRequest) error
	getDirectoryStats   func(ctx context.Context) (*domain.DirectoryStats, error)
	ping                func(ctx context.Context) error
}

func (f *fakeStore) ListVisibleServices(ctx context.Context) ([]directory.RawService, error) {
	if f.listVisibleServices == nil {
		panic("unexpected call to ListVisibleServices")
	}
	return f.listVisibleServices(ctx)
}

func (f *fakeStore) ListServicesByOwner(ctx context.Context, ownerID string) ([]directory.RawService, error) {
	if f.listServicesByOwner == nil {
		panic("unexpected call to ListServicesByOwner")
	}
	return f.listServicesByOwner(ctx, ownerID)
}

func (f *fakeStore) GetService(ctx context.Context, id string) (*directory.RawService, error) {
	if f.getService == nil {
		panic("unexpected call to GetService")
	}
	return f.getService(ctx, id)
}

func (f *fakeStore) CreateService(ctx context.Context, svc *domain.Service) error {
	if f.createService == nil {
		panic("unexpected call to CreateService")
	}
	return f.createService(ctx, svc)
}

func (f *fakeStore) UpdateService(ctx context.Context, svc *domain.Service) error {
	if f.updateService == nil {
		panic("unexpected call to UpdateService")
	}
	return f.updateService(ctx, svc)
}

func (f *fakeStore) DeleteService(ctx context.Context, ownerID, id string) error {
	if f.deleteService == nil {
		panic("unexpected call to DeleteService")
	}
	return f.deleteService(ctx, ownerID, id)
}

func (f *fakeStore) ListRatings(ctx context.Context) ([]domain.Rating, error) {
	if f.listRatings == nil {
		panic("unexpected call to ListRatings")
	}
	return f.listRatings(ctx)
}

func (f *fakeStore) ListRatingsForService(ctx context.Context, serviceID string) ([]domain.Rating, error) {
	if f.listRatingsForService == nil {
		panic("unexpected call to ListRatingsForService")
	}
	return f.listRatingsForService(ctx, serviceID)
}

func (f *fakeStore) CreateRating(ctx context.Context, r *domain.Rating) error {
	if f.createRating == nil {
		panic("unexpected call to CreateRating")
	}
	return f.createRating(ctx, r)
}

func (f *fakeStore) ListOffers(ctx context.Context) ([]directory.RawOffer, error) {
	if f.listOffers == nil {
		panic("unexpected call to ListOffers")
	}
	return f.listOffers(ctx)
}

func (f *fakeStore) ListOffersByOwner(ctx context.Context, ownerID string) ([]directory.RawOffer, error) {
	if f.listOffersByOwner == nil {
		panic("unexpected call to ListOffersByOwner")
	}
	return f.listOffersByOwner(ctx, ownerID)
}

func (f *fakeStore) GetOffer(ctx context.Context, id string) (*directory.RawOffer, error) {
	if f.getOffer == nil {
		panic("unexpected call to GetOffer")
	}
	return f.getOffer(ctx, id)
}

func (f *fakeStore) CreateOffer(ctx context.Context, o *domain.Offer) error {
	if f.createOffer == nil {
		panic("unexpected call to CreateOffer")
	}
	return f.createOffer(ctx, o)
}

func (f *fakeStore) UpdateOffer(ctx context.Context, o *domain.Offer) error {
	if f.updateOffer == nil {
		panic("unexpected call to UpdateOffer")
	}
	return f.updateOffer(ctx, o)
}

func (f *fakeStore) DeleteOffer(ctx context.Context, ownerID, id string) error {
	if f.deleteOffer == nil {
		panic("unexpected call to DeleteOffer")
	}
	return f.deleteOffer(ctx, ownerID, id)
}

func (f *fakeStore) ListActiveProperties(ctx context.Context) ([]directory.RawProperty, error) {
	if f.listActiveProperties == nil {
		panic("unexpected call to ListActiveProperties")
	}
	return f.listActiveProperties(ctx)
}

func (f *fakeStore) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]directory.RawProperty, error) {
	if f.listPropertiesByOwner == nil {
		panic("unexpected call to ListPropertiesByOwner")
	}
	return f.listPropertiesByOwner(ctx, ownerID)
}

func (f *fakeStore) GetProperty(ctx context.Context, id string) (*directory.RawProperty, error) {
	if f.getProperty == nil {
		panic("unexpected call to GetProperty")
	}
	return f.getProperty(ctx, id)
}

func (f *fakeStore) CreateProperty(ctx context.Context, p *domain.Property) error {
	if f.createProperty == nil {
		panic("unexpected call to CreateProperty")
	}
	return f.createProperty(ctx, p)
}

func (f *fakeStore) UpdateProperty(ctx context.Context, p *domain.Property) error {
	if f.updateProperty == nil {
		panic("unexpected call to UpdateProperty")
	}
	return f.updateProperty(ctx, p)
}

func (f *fakeStore) DeleteProperty(ctx context.Context, ownerID, id string) error {
	if f.deleteProperty == nil {
		panic("unexpected call to DeleteProperty")
	}
	return f.deleteProperty(ctx, ownerID, id)
}

func (f *fakeStore) CreateSearchRequest(ctx context.Context, r *domain.SearchRequest) error {
	if f.createSearchRequest == nil {
		panic("unexpected call to CreateSearchRequest")
	}
	return f.createSearchRequest(ctx, r)
}

func (f *fakeStore) GetDirectoryStats(ctx context.Context) (*domain.DirectoryStats, error) {
	if f.getDirectoryStats == nil {
		panic("unexpected call to GetDirectoryStats")
	}
	return f.getDirectoryStats(ctx)
}

func (f *fakeStore) Migrate(context.Context) error {
	panic("unexpected call to Migrate")
}

func (f *fakeStore) Ping(ctx context.Context) error {
	if f.ping == nil {
		panic("unexpected call to Ping")
	}
	return f.ping(ctx)
}

// newTestServer mounts the full route table on a fresh echo instance so
// tests exercise the real paths and parameter binding.
func newTestServer(fs *fakeStore, files *uploads.Store, maxPerBatch int) *echo.Echo {
	e := echo.New()
	handlers.RegisterRoutes(e, fs, files, maxPerBatch)
	return e
}

// doJSON performs a request with an optional JSON body and user header.
func doJSON(t *testing.T, e *echo.Echo, method, path, userID, body string) *httptest.ResponseRecorder {
	t.Helper()

	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if userID != "" {
		req.Header.Set("X-User-ID", userID)
	}

	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}
