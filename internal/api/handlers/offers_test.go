package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Chiosap01/allcascais/internal/store"
	"github.com/Chiosap01/allcascais/pkg/directory"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

func rawOffer(id, title, category string) directory.RawOffer {
	return directory.RawOffer{
		ID:         id,
		OwnerID:    "u1",
		Title:      title,
		CategoryID: category,
		CreatedAt:  time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestOfferList(t *testing.T) {
	t.Parallel()

	yesterday := time.Now().AddDate(0, 0, -1)
	nextWeek := time.Now().AddDate(0, 0, 7)

	expired := rawOffer("o1", "Old Deal", "food")
	expired.ValidUntil = &yesterday

	cheap := rawOffer("o2", "Cheap Surf Lesson", "sports")
	cheapPrice := 25.0
	cheap.DiscountedPrice = &cheapPrice
	cheap.ValidUntil = &nextWeek
	highlight := "popular"
	cheap.HighlightTag = &highlight

	pricey := rawOffer("o3", "Sunset Cruise", "sports")
	priceyPrice := 120.0
	pricey.OriginalPrice = &priceyPrice

	raws := []directory.RawOffer{expired, cheap, pricey}

	tests := []struct {
		name     string
		path     string
		wantIDs  []string
		wantCode int
	}{
		{
			name:     "expired offers are dropped",
			path:     "/api/v1/offers",
			wantIDs:  []string{"o2", "o3"},
			wantCode: http.StatusOK,
		},
		{
			name:     "price ceiling uses effective price",
			path:     "/api/v1/offers?max_price=50",
			wantIDs:  []string{"o2"},
			wantCode: http.StatusOK,
		},
		{
			name:     "highlighted only",
			path:     "/api/v1/offers?highlighted_only=true",
			wantIDs:  []string{"o2"},
			wantCode: http.StatusOK,
		},
		{
			name:     "ascending price sort",
			path:     "/api/v1/offers?sort=price-asc",
			wantIDs:  []string{"o2", "o3"},
			wantCode: http.StatusOK,
		},
		{
			name:     "descending price sort",
			path:     "/api/v1/offers?sort=price-desc",
			wantIDs:  []string{"o3", "o2"},
			wantCode: http.StatusOK,
		},
		{
			name:     "bad price ceiling",
			path:     "/api/v1/offers?max_price=cheap",
			wantCode: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := &fakeStore{
				listOffers: func(context.Context) ([]directory.RawOffer, error) {
					return raws, nil
				},
			}
			e := newTestServer(fs, nil, 0)

			rec := doJSON(t, e, http.MethodGet, tt.path, "", "")
			require.Equal(t, tt.wantCode, rec.Code)
			if tt.wantCode != http.StatusOK {
				return
			}

			var got []domain.Offer
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
			ids := make([]string, len(got))
			for i, o := range got {
				ids[i] = o.ID
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestOfferListDerivesDiscount(t *testing.T) {
	t.Parallel()

	raw := rawOffer("o1", "Massage Package", "wellness")
	original, discounted := 100.0, 75.0
	raw.OriginalPrice = &original
	raw.DiscountedPrice = &discounted

	fs := &fakeStore{
		listOffers: func(context.Context) ([]directory.RawOffer, error) {
			return []directory.RawOffer{raw}, nil
		},
	}
	e := newTestServer(fs, nil, 0)

	rec := doJSON(t, e, http.MethodGet, "/api/v1/offers", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var got []domain.Offer
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	require.NotNil(t, got[0].DiscountPercent)
	assert.Equal(t, 25, *got[0].DiscountPercent)
	require.NotNil(t, got[0].DiscountAmount)
	assert.InDelta(t, 25.0, *got[0].DiscountAmount, 1e-9)
}

func TestOfferGet(t *testing.T) {
	t.Parallel()

	t.Run("expired offer stays fetchable", func(t *testing.T) {
		t.Parallel()

		yesterday := time.Now().AddDate(0, 0, -1)
		fs := &fakeStore{
			getOffer: func(_ context.Context, id string) (*directory.RawOffer, error) {
				raw := rawOffer(id, "Old Deal", "food")
				raw.ValidUntil = &yesterday
				return &raw, nil
			},
		}
		e := newTestServer(fs, nil, 0)

		rec := doJSON(t, e, http.MethodGet, "/api/v1/offers/o1", "", "")
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"Old Deal"`)
	})

	t.Run("not found", func(t *testing.T) {
		t.Parallel()

		fs := &fakeStore{
			getOffer: func(context.Context, string) (*directory.RawOffer, error) {
				return nil, store.ErrNotFound
			},
		}
		e := newTestServer(fs, nil, 0)

		rec := doJSON(t, e, http.MethodGet, "/api/v1/offers/missing", "", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestOfferCreate(t *testing.T) {
	t.Parallel()

	today := time.Now().Format("2006-01-02")
	tomorrow := time.Now().AddDate(0, 0, 1).Format("2006-01-02")

	tests := []struct {
		name       string
		userID     string
		body       string
		wantStatus int
		wantBody   string
	}{
		{
			name:       "valid offer",
			userID:     "u1",
			body:       `{"title":"Surf Lesson","category_id":"sports","original_price":50,"discounted_price":40}`,
			wantStatus: http.StatusCreated,
			wantBody:   `"discount_percent":20`,
		},
		{
			name:       "missing user header",
			userID:     "",
			body:       `{"title":"X","category_id":"food"}`,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "missing title",
			userID:     "u1",
			body:       `{"category_id":"food"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "title is required",
		},
		{
			name:       "negative price",
			userID:     "u1",
			body:       `{"title":"X","category_id":"food","original_price":-5}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "must not be negative",
		},
		{
			name:       "unknown highlight",
			userID:     "u1",
			body:       `{"title":"X","category_id":"food","highlight":"mega-deal"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "highlight must be one of",
		},
		{
			name:       "already expired on create",
			userID:     "u1",
			body:       `{"title":"X","category_id":"food","valid_until":"2020-01-01T00:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "valid_until must be after today",
		},
		{
			name:       "ending today rejected on create",
			userID:     "u1",
			body:       `{"title":"X","category_id":"food","valid_until":"` + today + `T00:00:00Z"}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   "valid_until must be after today",
		},
		{
			name:       "ending tomorrow accepted",
			userID:     "u1",
			body:       `{"title":"X","category_id":"food","valid_until":"` + tomorrow + `T00:00:00Z"}`,
			wantStatus: http.StatusCreated,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			fs := &fakeStore{
				createOffer: func(_ context.Context, o *domain.Offer) error {
					assert.Equal(t, tt.userID, o.OwnerID)
					return nil
				},
			}
			e := newTestServer(fs, nil, 0)

			rec := doJSON(t, e, http.MethodPost, "/api/v1/offers", tt.userID, tt.body)
			require.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantBody != "" {
				assert.Contains(t, rec.Body.String(), tt.wantBody)
			}
		})
	}
}

func TestOfferUpdateAndDelete(t *testing.T) {
	t.Parallel()

	t.Run("update keeps an already-past end date", func(t *testing.T) {
		t.Parallel()

		fs := &fakeStore{
			updateOffer: func(_ context.Context, o *domain.Offer) error {
				assert.Equal(t, "o1", o.ID)
				assert.Equal(t, "u1", o.OwnerID)
				return nil
			},
		}
		e := newTestServer(fs, nil, 0)

		rec := doJSON(t, e, http.MethodPut, "/api/v1/offers/o1", "u1",
			`{"title":"Old Deal","category_id":"food","valid_until":"2020-01-01T00:00:00Z"}`)
		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("delete someone else's offer is a 404", func(t *testing.T) {
		t.Parallel()

		fs := &fakeStore{
			deleteOffer: func(context.Context, string, string) error {
				return store.ErrNotFound
			},
		}
		e := newTestServer(fs, nil, 0)

		rec := doJSON(t, e, http.MethodDelete, "/api/v1/offers/o1", "intruder", "")
		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
