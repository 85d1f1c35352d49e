package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

const defaultPoolSize = 10

// pgUniqueViolation is the Postgres error code for unique constraint hits.
const pgUniqueViolation = "23505"

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
//
// TODO(test): PostgresStore methods require live Postgres, tested via integration tests.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	cfg.MaxConns = defaultPoolSize

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

type rowScanner interface {
	Scan(dest ...any) error
}

// jsonOrNil marshals v for a JSONB column, writing SQL NULL for empty
// slices so legacy readers never see "[]" where they expect absence.
func jsonOrNil(v any) (any, error) {
	switch val := v.(type) {
	case []string:
		if len(val) == 0 {
			return nil, nil
		}
	case []domain.OpeningHour:
		if len(val) == 0 {
			return nil, nil
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("marshaling jsonb value: %w", err)
	}
	return b, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func scanRawService(row rowScanner, svc *directory.RawService) error {
	return row.Scan(
		&svc.ID, &svc.OwnerID, &svc.Name, &svc.Description, &svc.CategoryID,
		&svc.SubcategoryID, &svc.Location, &svc.Email, &svc.Phone, &svc.Website,
		&svc.Instagram, &svc.Facebook, &svc.TikTok, &svc.LinkedIn,
		&svc.Languages, &svc.OpeningHours, &svc.Visible, &svc.AvatarURL,
		&svc.CreatedAt, &svc.UpdatedAt,
	)
}

func scanRawOffer(row rowScanner, o *directory.RawOffer) error {
	return row.Scan(
		&o.ID, &o.OwnerID, &o.Title, &o.ShortLabel, &o.Description, &o.CategoryID,
		&o.SubcategoryID, &o.ServiceName, &o.Locations, &o.Languages,
		&o.OriginalPrice, &o.DiscountedPrice, &o.ValidUntil, &o.HighlightTag,
		&o.ImageURL, &o.Phone, &o.Email, &o.Website,
		&o.Instagram, &o.Facebook, &o.TikTok, &o.LinkedIn, &o.CreatedAt,
	)
}

func scanRawProperty(row rowScanner, p *directory.RawProperty) error {
	return row.Scan(
		&p.ID, &p.OwnerID, &p.Status, &p.BuyRent, &p.Type, &p.Title, &p.Description,
		&p.Price, &p.Currency, &p.Location, &p.Bedrooms, &p.Bathrooms,
		&p.UsableArea, &p.GrossArea, &p.LandArea, &p.Condition, &p.Furnished,
		&p.EnergyCertificate, &p.Divisions, &p.Images, &p.PriceNegotiable,
		&p.ContactName, &p.ContactEmail, &p.ContactPhone, &p.CreatedAt,
	)
}

func (s *PostgresStore) queryRawServices(ctx context.Context, sql string, args []any) ([]directory.RawService, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying services: %w", err)
	}
	defer rows.Close()

	var services []directory.RawService
	for rows.Next() {
		var svc directory.RawService
		if err := scanRawService(rows, &svc); err != nil {
			return nil, fmt.Errorf("scanning service: %w", err)
		}
		services = append(services, svc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating services: %w", err)
	}
	return services, nil
}

// ListVisibleServices returns the public directory rows, newest first.
func (s *PostgresStore) ListVisibleServices(ctx context.Context) ([]directory.RawService, error) {
	sql, args := newListQuery("service_listings", serviceColumns, "created_at DESC").
		Eq("show_online", true).
		SQL()
	return s.queryRawServices(ctx, sql, args)
}

// ListServicesByOwner returns every row owned by ownerID, hidden or not.
func (s *PostgresStore) ListServicesByOwner(ctx context.Context, ownerID string) ([]directory.RawService, error) {
	sql, args := newListQuery("service_listings", serviceColumns, "created_at DESC").
		Eq("owner_id", ownerID).
		SQL()
	return s.queryRawServices(ctx, sql, args)
}

// GetService retrieves one service row by id.
func (s *PostgresStore) GetService(ctx context.Context, id string) (*directory.RawService, error) {
	sql, args := newListQuery("service_listings", serviceColumns, "").Eq("id", id).SQL()

	svc := &directory.RawService{}
	err := scanRawService(s.pool.QueryRow(ctx, sql, args...), svc)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting service: %w", err)
	}
	return svc, nil
}

// CreateService inserts a new service, assigning its id and creation time.
func (s *PostgresStore) CreateService(ctx context.Context, svc *domain.Service) error {
	if svc.ID == "" {
		svc.ID = uuid.NewString()
	}

	languages, err := jsonOrNil(svc.Languages)
	if err != nil {
		return err
	}
	hours, err := jsonOrNil(svc.Hours)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"id":                         svc.ID,
		"owner_id":                   svc.OwnerID,
		"service_name":               svc.Name,
		"description":                nullable(svc.Description),
		"category_id":                string(svc.CategoryID),
		"subcategory_id":             nullable(svc.SubcategoryID),
		"location":                   nullable(svc.Location),
		"contact_email":              nullable(svc.Email),
		"phone":                      nullable(svc.Phone),
		"website":                    nullable(svc.Website),
		"instagram":                  nullable(svc.Instagram),
		"facebook":                   nullable(svc.Facebook),
		"tiktok":                     nullable(svc.TikTok),
		"linkedin":                   nullable(svc.LinkedIn),
		"languages":                  languages,
		"opening_hours":              hours,
		"show_online":                svc.Visible,
		"provider_profile_image_url": nullable(svc.AvatarURL),
	}

	if err := s.pool.QueryRow(ctx, queryCreateService, args).Scan(&svc.CreatedAt); err != nil {
		return fmt.Errorf("creating service: %w", err)
	}
	return nil
}

// UpdateService updates a service owned by svc.OwnerID. An id/owner
// mismatch affects zero rows and reports ErrNotFound.
func (s *PostgresStore) UpdateService(ctx context.Context, svc *domain.Service) error {
	languages, err := jsonOrNil(svc.Languages)
	if err != nil {
		return err
	}
	hours, err := jsonOrNil(svc.Hours)
	if err != nil {
		return err
	}

	args := pgx.NamedArgs{
		"id":                         svc.ID,
		"owner_id":                   svc.OwnerID,
		"service_name":               svc.Name,
		"description":                nullable(svc.Description),
		"category_id":                string(svc.CategoryID),
		"subcategory_id":             nullable(svc.SubcategoryID),
		"location":                   nullable(svc.Location),
		"contact_email":              nullable(svc.Email),
		"phone":                      nullable(svc.Phone),
		"website":                    nullable(svc.Website),
		"instagram":                  nullable(svc.Instagram),
		"facebook":                   nullable(svc.Facebook),
		"tiktok":                     nullable(svc.TikTok),
		"linkedin":                   nullable(svc.LinkedIn),
		"languages":                  languages,
		"opening_hours":              hours,
		"show_online":                svc.Visible,
		"provider_profile_image_url": nullable(svc.AvatarURL),
	}

	tag, err := s.pool.Exec(ctx, queryUpdateService, args)
	if err != nil {
		return fmt.Errorf("updating service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteService deletes a service owned by ownerID.
func (s *PostgresStore) DeleteService(ctx context.Context, ownerID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteService, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting service: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryRatings(ctx context.Context, sql string, args ...any) ([]domain.Rating, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying ratings: %w", err)
	}
	defer rows.Close()

	var ratings []domain.Rating
	for rows.Next() {
		var r domain.Rating
		if err := rows.Scan(
			&r.ServiceID, &r.UserID, &r.WorkQuality, &r.Punctuality, &r.Comment, &r.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scanning rating: %w", err)
		}
		ratings = append(ratings, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating ratings: %w", err)
	}
	return ratings, nil
}

// ListRatings returns every rating, oldest first.
func (s *PostgresStore) ListRatings(ctx context.Context) ([]domain.Rating, error) {
	return s.queryRatings(ctx, queryListRatings)
}

// ListRatingsForService returns one service's ratings, oldest first.
func (s *PostgresStore) ListRatingsForService(ctx context.Context, serviceID string) ([]domain.Rating, error) {
	return s.queryRatings(ctx, queryListRatingsForService, serviceID)
}

// CreateRating inserts a rating. A second rating from the same user for the
// same service hits the primary key and reports ErrDuplicateRating.
func (s *PostgresStore) CreateRating(ctx context.Context, r *domain.Rating) error {
	args := pgx.NamedArgs{
		"service_id":   r.ServiceID,
		"user_id":      r.UserID,
		"work_quality": r.WorkQuality,
		"punctuality":  r.Punctuality,
		"comment":      nullable(r.Comment),
	}

	err := s.pool.QueryRow(ctx, queryCreateRating, args).Scan(&r.CreatedAt)
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return ErrDuplicateRating
	}
	if err != nil {
		return fmt.Errorf("creating rating: %w", err)
	}
	return nil
}

func (s *PostgresStore) queryRawOffers(ctx context.Context, sql string, args []any) ([]directory.RawOffer, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying offers: %w", err)
	}
	defer rows.Close()

	var offers []directory.RawOffer
	for rows.Next() {
		var o directory.RawOffer
		if err := scanRawOffer(rows, &o); err != nil {
			return nil, fmt.Errorf("scanning offer: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating offers: %w", err)
	}
	return offers, nil
}

// ListOffers returns every offer, newest first. Expiry is not applied here;
// the pipeline owns that rule.
func (s *PostgresStore) ListOffers(ctx context.Context) ([]directory.RawOffer, error) {
	sql, args := newListQuery("service_offers", offerColumns, "created_at DESC").SQL()
	return s.queryRawOffers(ctx, sql, args)
}

// ListOffersByOwner returns every offer owned by ownerID, newest first.
func (s *PostgresStore) ListOffersByOwner(ctx context.Context, ownerID string) ([]directory.RawOffer, error) {
	sql, args := newListQuery("service_offers", offerColumns, "created_at DESC").
		Eq("owner_id", ownerID).
		SQL()
	return s.queryRawOffers(ctx, sql, args)
}

// GetOffer retrieves one offer row by id.
func (s *PostgresStore) GetOffer(ctx context.Context, id string) (*directory.RawOffer, error) {
	sql, args := newListQuery("service_offers", offerColumns, "").Eq("id", id).SQL()

	o := &directory.RawOffer{}
	err := scanRawOffer(s.pool.QueryRow(ctx, sql, args...), o)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting offer: %w", err)
	}
	return o, nil
}

func offerArgs(o *domain.Offer) (pgx.NamedArgs, error) {
	locations, err := jsonOrNil(o.Locations)
	if err != nil {
		return nil, err
	}
	languages, err := jsonOrNil(o.Languages)
	if err != nil {
		return nil, err
	}

	return pgx.NamedArgs{
		"id":               o.ID,
		"owner_id":         o.OwnerID,
		"title":            o.Title,
		"short_label":      nullable(o.ShortLabel),
		"description":      nullable(o.Description),
		"category_id":      string(o.CategoryID),
		"subcategory_id":   nullable(o.SubcategoryID),
		"service_name":     nullable(o.ServiceName),
		"locations":        locations,
		"languages":        languages,
		"original_price":   o.OriginalPrice,
		"discounted_price": o.DiscountedPrice,
		"valid_until":      o.ValidUntil,
		"highlight_tag":    nullable(string(o.Highlight)),
		"image_url":        nullable(o.ImageURL),
		"phone":            nullable(o.Phone),
		"contact_email":    nullable(o.Email),
		"website":          nullable(o.Website),
		"instagram":        nullable(o.Instagram),
		"facebook":         nullable(o.Facebook),
		"tiktok":           nullable(o.TikTok),
		"linkedin":         nullable(o.LinkedIn),
	}, nil
}

// CreateOffer inserts a new offer, assigning its id and creation time.
func (s *PostgresStore) CreateOffer(ctx context.Context, o *domain.Offer) error {
	if o.ID == "" {
		o.ID = uuid.NewString()
	}

	args, err := offerArgs(o)
	if err != nil {
		return err
	}

	if err := s.pool.QueryRow(ctx, queryCreateOffer, args).Scan(&o.CreatedAt); err != nil {
		return fmt.Errorf("creating offer: %w", err)
	}
	return nil
}

// UpdateOffer updates an offer owned by o.OwnerID.
func (s *PostgresStore) UpdateOffer(ctx context.Context, o *domain.Offer) error {
	args, err := offerArgs(o)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, queryUpdateOffer, args)
	if err != nil {
		return fmt.Errorf("updating offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteOffer deletes an offer owned by ownerID.
func (s *PostgresStore) DeleteOffer(ctx context.Context, ownerID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteOffer, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *PostgresStore) queryRawProperties(ctx context.Context, sql string, args []any) ([]directory.RawProperty, error) {
	rows, err := s.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("querying properties: %w", err)
	}
	defer rows.Close()

	var properties []directory.RawProperty
	for rows.Next() {
		var p directory.RawProperty
		if err := scanRawProperty(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning property: %w", err)
		}
		properties = append(properties, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating properties: %w", err)
	}
	return properties, nil
}

// ListActiveProperties returns the publicly listed properties, newest first.
func (s *PostgresStore) ListActiveProperties(ctx context.Context) ([]directory.RawProperty, error) {
	sql, args := newListQuery("properties", propertyColumns, "created_at DESC").
		Eq("status", string(domain.StatusActive)).
		SQL()
	return s.queryRawProperties(ctx, sql, args)
}

// ListPropertiesByOwner returns every property owned by ownerID regardless
// of status.
func (s *PostgresStore) ListPropertiesByOwner(ctx context.Context, ownerID string) ([]directory.RawProperty, error) {
	sql, args := newListQuery("properties", propertyColumns, "created_at DESC").
		Eq("owner_id", ownerID).
		SQL()
	return s.queryRawProperties(ctx, sql, args)
}

// GetProperty retrieves one property row by id.
func (s *PostgresStore) GetProperty(ctx context.Context, id string) (*directory.RawProperty, error) {
	sql, args := newListQuery("properties", propertyColumns, "").Eq("id", id).SQL()

	p := &directory.RawProperty{}
	err := scanRawProperty(s.pool.QueryRow(ctx, sql, args...), p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting property: %w", err)
	}
	return p, nil
}

func propertyArgs(p *domain.Property) (pgx.NamedArgs, error) {
	images, err := jsonOrNil(p.Images)
	if err != nil {
		return nil, err
	}

	return pgx.NamedArgs{
		"id":                  p.ID,
		"owner_id":            p.OwnerID,
		"status":              string(p.Status),
		"buy_rent":            string(p.BuyRent),
		"property_type":       string(p.Type),
		"title":               p.Title,
		"description":         nullable(p.Description),
		"price":               p.Price,
		"currency":            p.Currency,
		"location":            p.Location,
		"bedrooms":            p.Bedrooms,
		"bathrooms":           p.Bathrooms,
		"usable_area":         p.UsableArea,
		"gross_area":          p.GrossArea,
		"land_area":           p.LandArea,
		"condition":           nullable(p.Condition),
		"furnished":           nullable(string(p.Furnished)),
		"energy_certificate":  nullable(p.EnergyCertificate),
		"divisions":           p.Divisions,
		"images":              images,
		"is_price_negotiable": p.PriceNegotiable,
		"contact_name":        nullable(p.ContactName),
		"contact_email":       nullable(p.ContactEmail),
		"contact_phone":       nullable(p.ContactPhone),
	}, nil
}

// CreateProperty inserts a new property, assigning its id and creation time.
func (s *PostgresStore) CreateProperty(ctx context.Context, p *domain.Property) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Status == "" {
		p.Status = domain.StatusActive
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}

	args, err := propertyArgs(p)
	if err != nil {
		return err
	}

	if err := s.pool.QueryRow(ctx, queryCreateProperty, args).Scan(&p.CreatedAt); err != nil {
		return fmt.Errorf("creating property: %w", err)
	}
	return nil
}

// UpdateProperty updates a property owned by p.OwnerID.
func (s *PostgresStore) UpdateProperty(ctx context.Context, p *domain.Property) error {
	args, err := propertyArgs(p)
	if err != nil {
		return err
	}

	tag, err := s.pool.Exec(ctx, queryUpdateProperty, args)
	if err != nil {
		return fmt.Errorf("updating property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteProperty deletes a property owned by ownerID.
func (s *PostgresStore) DeleteProperty(ctx context.Context, ownerID, id string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteProperty, id, ownerID)
	if err != nil {
		return fmt.Errorf("deleting property: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// CreateSearchRequest stores a property search intake, assigning its id and
// creation time. The intake is write-only; nothing reads it back.
func (s *PostgresStore) CreateSearchRequest(ctx context.Context, r *domain.SearchRequest) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}

	args := pgx.NamedArgs{
		"id":        r.ID,
		"type":      string(r.Type),
		"name":      r.Name,
		"email":     r.Email,
		"phone":     nullable(r.Phone),
		"from_date": r.FromDate,
		"to_date":   r.ToDate,
		"min_size":  r.MinSize,
		"notes":     nullable(r.Notes),
	}

	if err := s.pool.QueryRow(ctx, queryCreateSearchRequest, args).Scan(&r.CreatedAt); err != nil {
		return fmt.Errorf("creating search request: %w", err)
	}
	return nil
}

// GetDirectoryStats returns the aggregate counts exported as gauges.
func (s *PostgresStore) GetDirectoryStats(ctx context.Context) (*domain.DirectoryStats, error) {
	stats := &domain.DirectoryStats{}
	err := s.pool.QueryRow(ctx, queryDirectoryStats).Scan(
		&stats.ServicesTotal, &stats.ServicesVisible, &stats.RatingsTotal,
		&stats.OffersTotal, &stats.OffersCurrent,
		&stats.PropertiesTotal, &stats.PropertiesActive, &stats.SearchRequests,
	)
	if err != nil {
		return nil, fmt.Errorf("getting directory stats: %w", err)
	}
	return stats, nil
}
