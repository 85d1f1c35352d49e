package directory

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "github.com/Chiosap01/allcascais/pkg/types"
)

func strPtr(s string) *string        { return &s }
func f64Ptr(v float64) *float64      { return &v }
func intPtr(v int) *int              { return &v }
func timePtr(t time.Time) *time.Time { return &t }

func TestDecodeStringList(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  json.RawMessage
		want []string
	}{
		{name: "json array", raw: json.RawMessage(`["pt","en"]`), want: []string{"pt", "en"}},
		{name: "comma string", raw: json.RawMessage(`"pt, en ,fr"`), want: []string{"pt", "en", "fr"}},
		{name: "single value string", raw: json.RawMessage(`"pt"`), want: []string{"pt"}},
		{name: "empty string", raw: json.RawMessage(`""`), want: nil},
		{name: "null", raw: json.RawMessage(`null`), want: nil},
		{name: "absent", raw: nil, want: nil},
		{name: "malformed", raw: json.RawMessage(`{42`), want: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, decodeStringList(tt.raw))
		})
	}
}

func TestMapService(t *testing.T) {
	t.Parallel()

	created := time.Date(2026, 1, 10, 8, 0, 0, 0, time.UTC)
	raw := RawService{
		ID:            "svc-1",
		OwnerID:       "owner-1",
		Name:          "Cascais Plumbing",
		Description:   strPtr("Fast fixes"),
		CategoryID:    "home-services",
		SubcategoryID: strPtr("plumber"),
		Location:      strPtr("Cascais Centro"),
		Phone:         strPtr("+351 912 000 000"),
		Instagram:     strPtr("@cascaisplumbing"),
		Languages:     json.RawMessage(`"pt,en"`),
		OpeningHours: json.RawMessage(`[
			{"dayKey":"mon","open":"09:00","close":"18:00","closed":false},
			{"dayKey":"tue","open":"09:00","close":"18:00","closed":false},
			{"dayKey":"wed","open":"09:00","close":"18:00","closed":false},
			{"dayKey":"thu","open":"09:00","close":"18:00","closed":false},
			{"dayKey":"fri","open":"09:00","close":"18:00","closed":false},
			{"dayKey":"sat","closed":true},
			{"dayKey":"sun","closed":true}
		]`),
		Visible:   true,
		CreatedAt: created,
	}

	got := MapService(raw, domain.LocaleEN)

	assert.Equal(t, "svc-1", got.ID)
	assert.Equal(t, domain.CategoryID("home-services"), got.CategoryID)
	assert.Equal(t, "plumber", got.SubcategoryID)
	assert.Equal(t, []string{"pt", "en"}, got.Languages)
	assert.Equal(t, "Mo–Fr 09:00-18:00", got.HoursText)
	assert.Len(t, got.Hours, 7)
	assert.True(t, got.Visible)
	assert.Empty(t, got.Website)
	assert.Nil(t, got.UpdatedAt)
	assert.Nil(t, got.Rating)
}

func TestMapServiceMalformedHours(t *testing.T) {
	t.Parallel()

	raw := RawService{
		ID:           "svc-1",
		Name:         "Broken Hours",
		CategoryID:   "food",
		OpeningHours: json.RawMessage(`"mon-fri 9-6"`),
	}

	got := MapService(raw, domain.LocaleEN)

	// A present but undecodable schedule degrades to an all-closed week.
	require.Len(t, got.Hours, 7)
	for _, h := range got.Hours {
		assert.True(t, h.Closed)
	}
	assert.Empty(t, got.HoursText)
}

func TestMapServiceLocalePropagatesToHoursText(t *testing.T) {
	t.Parallel()

	raw := RawService{
		ID:         "svc-1",
		Name:       "Sábado Café",
		CategoryID: "food",
		OpeningHours: json.RawMessage(
			`[{"dayKey":"sat","open":"10:00","close":"14:00","closed":false}]`),
	}

	assert.Equal(t, "Sa 10:00-14:00", MapService(raw, domain.LocaleEN).HoursText)
	assert.Equal(t, "Sáb 10:00-14:00", MapService(raw, domain.LocalePT).HoursText)
}

func TestMapOffer(t *testing.T) {
	t.Parallel()

	until := time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC)
	raw := RawOffer{
		ID:              "off-1",
		OwnerID:         "owner-1",
		Title:           "Spring cleaning deal",
		CategoryID:      "home-services",
		SubcategoryID:   strPtr("cleaning"),
		Locations:       json.RawMessage(`["Estoril","Cascais Centro"]`),
		OriginalPrice:   f64Ptr(100),
		DiscountedPrice: f64Ptr(75),
		ValidUntil:      timePtr(until),
		HighlightTag:    strPtr("last-minute"),
		CreatedAt:       time.Now(),
	}

	got := MapOffer(raw)

	assert.Equal(t, "Estoril", got.Location())
	assert.Equal(t, domain.HighlightLastMinute, got.Highlight)
	require.NotNil(t, got.DiscountPercent)
	assert.Equal(t, 25, *got.DiscountPercent)
	require.NotNil(t, got.DiscountAmount)
	assert.InDelta(t, 25.0, *got.DiscountAmount, 1e-9)
}

func TestMapOfferUndefinedDiscount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  RawOffer
	}{
		{name: "no prices", raw: RawOffer{ID: "o", Title: "t", CategoryID: "food"}},
		{name: "only original", raw: RawOffer{ID: "o", Title: "t", CategoryID: "food", OriginalPrice: f64Ptr(50)}},
		{name: "only discounted", raw: RawOffer{ID: "o", Title: "t", CategoryID: "food", DiscountedPrice: f64Ptr(40)}},
		{name: "zero original", raw: RawOffer{ID: "o", Title: "t", CategoryID: "food", OriginalPrice: f64Ptr(0), DiscountedPrice: f64Ptr(0)}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got := MapOffer(tt.raw)
			assert.Nil(t, got.DiscountPercent)
			assert.Nil(t, got.DiscountAmount)
		})
	}
}

func TestMapOfferUnknownHighlight(t *testing.T) {
	t.Parallel()

	raw := RawOffer{ID: "o", Title: "t", CategoryID: "food", HighlightTag: strPtr("mega-deal")}
	assert.Equal(t, domain.Highlight(""), MapOffer(raw).Highlight)
}

func TestMapProperty(t *testing.T) {
	t.Parallel()

	raw := RawProperty{
		ID:         "prop-1",
		OwnerID:    "owner-1",
		Status:     "active",
		BuyRent:    "buy",
		Type:       "apartment",
		Title:      "T2 near the marina",
		Price:      f64Ptr(300000),
		Location:   "Cascais Centro",
		Bedrooms:   intPtr(2),
		Bathrooms:  intPtr(1),
		UsableArea: f64Ptr(150),
		Images:     json.RawMessage(`["a.jpg","b.jpg"]`),
		CreatedAt:  time.Now(),
	}

	got := MapProperty(raw)

	assert.Equal(t, domain.StatusActive, got.Status)
	assert.Equal(t, domain.PropertyApartment, got.Type)
	assert.Equal(t, "EUR", got.Currency)
	assert.Equal(t, []string{"a.jpg", "b.jpg"}, got.Images)
	require.NotNil(t, got.PricePerArea)
	assert.InDelta(t, 2000.0, *got.PricePerArea, 1e-9)
}

func TestMapPropertyLandUsesLandArea(t *testing.T) {
	t.Parallel()

	raw := RawProperty{
		ID:         "prop-2",
		Status:     "active",
		BuyRent:    "buy",
		Type:       "land",
		Title:      "Plot in Malveira",
		Price:      f64Ptr(250000),
		Location:   "Malveira da Serra",
		UsableArea: f64Ptr(10),
		LandArea:   f64Ptr(1000),
	}

	got := MapProperty(raw)
	require.NotNil(t, got.PricePerArea)
	assert.InDelta(t, 250.0, *got.PricePerArea, 1e-9)
}

func TestMapPropertyMissingNumericsStayNil(t *testing.T) {
	t.Parallel()

	raw := RawProperty{
		ID:       "prop-3",
		Status:   "active",
		BuyRent:  "rent",
		Type:     "studio",
		Title:    "Studio",
		Location: "Estoril",
	}

	got := MapProperty(raw)
	assert.Nil(t, got.Price)
	assert.Nil(t, got.Bedrooms)
	assert.Nil(t, got.UsableArea)
	assert.Nil(t, got.PricePerArea)
}
