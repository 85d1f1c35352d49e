// Package store defines the datastore abstraction for the allcascais
// directory. Handlers and the scheduler depend on the Store interface,
// never on concrete implementations, so they can be tested against a fake
// without a running database.
package store

import (
	"context"
	"errors"

	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// Sentinel errors mapped to HTTP statuses by the handlers.
var (
	// ErrNotFound covers both missing rows and owner-scoped mutations that
	// touched zero rows; callers cannot distinguish the two cases.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateRating reports a second rating for the same
	// (service, user) pair.
	ErrDuplicateRating = errors.New("rating already exists for this service and user")
)

// Store defines all data access operations for the directory.
//
// Reads return raw rows; decoding the flexible columns and every derived
// value is the directory pipeline's job. Writes take display entities and
// serialize the structured columns on the way in. Mutations are owner
// scoped: an id/owner mismatch affects zero rows and reports ErrNotFound.
type Store interface {
	// Services
	ListVisibleServices(ctx context.Context) ([]directory.RawService, error)
	ListServicesByOwner(ctx context.Context, ownerID string) ([]directory.RawService, error)
	GetService(ctx context.Context, id string) (*directory.RawService, error)
	CreateService(ctx context.Context, svc *domain.Service) error
	UpdateService(ctx context.Context, svc *domain.Service) error
	DeleteService(ctx context.Context, ownerID, id string) error

	// Ratings
	ListRatings(ctx context.Context) ([]domain.Rating, error)
	ListRatingsForService(ctx context.Context, serviceID string) ([]domain.Rating, error)
	CreateRating(ctx context.Context, r *domain.Rating) error

	// Offers
	ListOffers(ctx context.Context) ([]directory.RawOffer, error)
	ListOffersByOwner(ctx context.Context, ownerID string) ([]directory.RawOffer, error)
	GetOffer(ctx context.Context, id string) (*directory.RawOffer, error)
	CreateOffer(ctx context.Context, o *domain.Offer) error
	UpdateOffer(ctx context.Context, o *domain.Offer) error
	DeleteOffer(ctx context.Context, ownerID, id string) error

	// Properties
	ListActiveProperties(ctx context.Context) ([]directory.RawProperty, error)
	ListPropertiesByOwner(ctx context.Context, ownerID string) ([]directory.RawProperty, error)
	GetProperty(ctx context.Context, id string) (*directory.RawProperty, error)
	CreateProperty(ctx context.Context, p *domain.Property) error
	UpdateProperty(ctx context.Context, p *domain.Property) error
	DeleteProperty(ctx context.Context, ownerID, id string) error

	// Search requests (write-only intake)
	CreateSearchRequest(ctx context.Context, r *domain.SearchRequest) error

	// Stats
	GetDirectoryStats(ctx context.Context) (*domain.DirectoryStats, error)

	// Migrations
	Migrate(ctx context.Context) error

	// Health
	Ping(ctx context.Context) error
}
