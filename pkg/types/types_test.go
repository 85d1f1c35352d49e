package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }

func TestParseHighlight(t *testing.T) {
	t.Parallel()

	assert.Equal(t, HighlightNew, ParseHighlight("new"))
	assert.Equal(t, HighlightLastMinute, ParseHighlight("last-minute"))
	assert.Equal(t, HighlightPopular, ParseHighlight("popular"))
	assert.Equal(t, Highlight(""), ParseHighlight("featured"))
	assert.Equal(t, Highlight(""), ParseHighlight(""))
}

func TestOfferEffectivePrice(t *testing.T) {
	t.Parallel()

	o := Offer{OriginalPrice: f64(100), DiscountedPrice: f64(75)}
	require.NotNil(t, o.EffectivePrice())
	assert.InDelta(t, 75.0, *o.EffectivePrice(), 1e-9)

	o = Offer{OriginalPrice: f64(100)}
	require.NotNil(t, o.EffectivePrice())
	assert.InDelta(t, 100.0, *o.EffectivePrice(), 1e-9)

	o = Offer{}
	assert.Nil(t, o.EffectivePrice())
}

func TestOfferExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 15, 23, 30, 0, 0, time.UTC)

	tests := []struct {
		name  string
		until *time.Time
		want  bool
	}{
		{name: "no end date never expires", until: nil, want: false},
		{name: "yesterday expired", until: timep(time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)), want: true},
		{name: "today still valid", until: timep(time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)), want: false},
		{name: "today late evening still valid", until: timep(time.Date(2026, 3, 15, 23, 59, 0, 0, time.UTC)), want: false},
		{name: "tomorrow valid", until: timep(time.Date(2026, 3, 16, 0, 0, 0, 0, time.UTC)), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			o := Offer{ValidUntil: tt.until}
			assert.Equal(t, tt.want, o.Expired(now))
		})
	}
}

func timep(t time.Time) *time.Time { return &t }

func TestOfferLocation(t *testing.T) {
	t.Parallel()

	o := Offer{Locations: []string{"Estoril", "Cascais Centro"}}
	assert.Equal(t, "Estoril", o.Location())

	assert.Empty(t, (&Offer{}).Location())
}

func TestPropertyAreaForPricing(t *testing.T) {
	t.Parallel()

	p := Property{Type: PropertyLand, LandArea: f64(1000), UsableArea: f64(50)}
	require.NotNil(t, p.AreaForPricing())
	assert.InDelta(t, 1000.0, *p.AreaForPricing(), 1e-9)

	p = Property{Type: PropertyApartment, LandArea: f64(1000), UsableArea: f64(50)}
	require.NotNil(t, p.AreaForPricing())
	assert.InDelta(t, 50.0, *p.AreaForPricing(), 1e-9)

	p = Property{Type: PropertyLand}
	assert.Nil(t, p.AreaForPricing())
}
