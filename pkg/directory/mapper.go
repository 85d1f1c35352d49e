package directory

import (
	"encoding/json"
	"strings"
	"time"

	"github.com/Chiosap01/allcascais/pkg/derive"
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// RawService is a service row as fetched from the store. Flexible columns
// (languages, opening hours) arrive as raw JSON because legacy rows stored
// them in more than one shape.
type RawService struct {
	ID            string          `db:"id"`
	OwnerID       string          `db:"owner_id"`
	Name          string          `db:"service_name"`
	Description   *string         `db:"description"`
	CategoryID    string          `db:"category_id"`
	SubcategoryID *string         `db:"subcategory_id"`
	Location      *string         `db:"location"`
	Email         *string         `db:"contact_email"`
	Phone         *string         `db:"phone"`
	Website       *string         `db:"website"`
	Instagram     *string         `db:"instagram"`
	Facebook      *string         `db:"facebook"`
	TikTok        *string         `db:"tiktok"`
	LinkedIn      *string         `db:"linkedin"`
	Languages     json.RawMessage `db:"languages"`
	OpeningHours  json.RawMessage `db:"opening_hours"`
	Visible       bool            `db:"show_online"`
	AvatarURL     *string         `db:"provider_profile_image_url"`
	CreatedAt     time.Time       `db:"created_at"`
	UpdatedAt     *time.Time      `db:"updated_at"`
}

// RawOffer is an offer row as fetched from the store.
type RawOffer struct {
	ID              string          `db:"id"`
	OwnerID         string          `db:"owner_id"`
	Title           string          `db:"title"`
	ShortLabel      *string         `db:"short_label"`
	Description     *string         `db:"description"`
	CategoryID      string          `db:"category_id"`
	SubcategoryID   *string         `db:"subcategory_id"`
	ServiceName     *string         `db:"service_name"`
	Locations       json.RawMessage `db:"locations"`
	Languages       json.RawMessage `db:"languages"`
	OriginalPrice   *float64        `db:"original_price"`
	DiscountedPrice *float64        `db:"discounted_price"`
	ValidUntil      *time.Time      `db:"valid_until"`
	HighlightTag    *string         `db:"highlight_tag"`
	ImageURL        *string         `db:"image_url"`
	Phone           *string         `db:"phone"`
	Email           *string         `db:"contact_email"`
	Website         *string         `db:"website"`
	Instagram       *string         `db:"instagram"`
	Facebook        *string         `db:"facebook"`
	TikTok          *string         `db:"tiktok"`
	LinkedIn        *string         `db:"linkedin"`
	CreatedAt       time.Time       `db:"created_at"`
}

// RawProperty is a property row as fetched from the store.
type RawProperty struct {
	ID                string          `db:"id"`
	OwnerID           string          `db:"owner_id"`
	Status            string          `db:"status"`
	BuyRent           string          `db:"buy_rent"`
	Type              string          `db:"property_type"`
	Title             string          `db:"title"`
	Description       *string         `db:"description"`
	Price             *float64        `db:"price"`
	Currency          *string         `db:"currency"`
	Location          string          `db:"location"`
	Bedrooms          *int            `db:"bedrooms"`
	Bathrooms         *int            `db:"bathrooms"`
	UsableArea        *float64        `db:"usable_area"`
	GrossArea         *float64        `db:"gross_area"`
	LandArea          *float64        `db:"land_area"`
	Condition         *string         `db:"condition"`
	Furnished         *string         `db:"furnished"`
	EnergyCertificate *string         `db:"energy_certificate"`
	Divisions         *int            `db:"divisions"`
	Images            json.RawMessage `db:"images"`
	PriceNegotiable   bool            `db:"is_price_negotiable"`
	ContactName       *string         `db:"contact_name"`
	ContactEmail      *string         `db:"contact_email"`
	ContactPhone      *string         `db:"contact_phone"`
	CreatedAt         time.Time       `db:"created_at"`
}

// decodeStringList accepts the two shapes legacy rows use for list columns:
// a JSON array of strings, or a single comma-separated string. Anything else
// decodes to nil rather than failing the whole row.
func decodeStringList(raw json.RawMessage) []string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var list []string
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return nil
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

// decodeHours decodes a stored weekly schedule. Absent columns decode to no
// schedule; a present but malformed value degrades to an all-closed week so
// one bad row never breaks a listing page.
func decodeHours(raw json.RawMessage) []domain.OpeningHour {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var hours []domain.OpeningHour
	if err := json.Unmarshal(raw, &hours); err != nil {
		return DefaultWeek()
	}
	if len(hours) == 0 {
		return nil
	}
	return hours
}

func strOf(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

// MapService converts a raw service row into its display entity: flexible
// columns normalized, the weekly schedule compacted for the locale. Optional
// numeric and text fields stay empty when absent, never zero-filled.
func MapService(raw RawService, locale domain.Locale) domain.Service {
	hours := decodeHours(raw.OpeningHours)
	return domain.Service{
		ID:            raw.ID,
		OwnerID:       raw.OwnerID,
		Name:          raw.Name,
		Description:   strOf(raw.Description),
		CategoryID:    domain.CategoryID(raw.CategoryID),
		SubcategoryID: strOf(raw.SubcategoryID),
		Location:      strOf(raw.Location),
		Email:         strOf(raw.Email),
		Phone:         strOf(raw.Phone),
		Website:       strOf(raw.Website),
		Instagram:     strOf(raw.Instagram),
		Facebook:      strOf(raw.Facebook),
		TikTok:        strOf(raw.TikTok),
		LinkedIn:      strOf(raw.LinkedIn),
		Languages:     decodeStringList(raw.Languages),
		Hours:         hours,
		HoursText:     CompactHours(hours, locale),
		Visible:       raw.Visible,
		AvatarURL:     strOf(raw.AvatarURL),
		CreatedAt:     raw.CreatedAt,
		UpdatedAt:     raw.UpdatedAt,
	}
}

// MapServices maps a batch of raw rows, preserving order.
func MapServices(raws []RawService, locale domain.Locale) []domain.Service {
	out := make([]domain.Service, len(raws))
	for i, raw := range raws {
		out[i] = MapService(raw, locale)
	}
	return out
}

// MapOffer converts a raw offer row into its display entity, populating the
// derived discount fields. Unknown highlight tags map to no highlight.
func MapOffer(raw RawOffer) domain.Offer {
	return domain.Offer{
		ID:              raw.ID,
		OwnerID:         raw.OwnerID,
		Title:           raw.Title,
		ShortLabel:      strOf(raw.ShortLabel),
		Description:     strOf(raw.Description),
		CategoryID:      domain.CategoryID(raw.CategoryID),
		SubcategoryID:   strOf(raw.SubcategoryID),
		ServiceName:     strOf(raw.ServiceName),
		Locations:       decodeStringList(raw.Locations),
		Languages:       decodeStringList(raw.Languages),
		OriginalPrice:   raw.OriginalPrice,
		DiscountedPrice: raw.DiscountedPrice,
		ValidUntil:      raw.ValidUntil,
		Highlight:       domain.ParseHighlight(strOf(raw.HighlightTag)),
		DiscountPercent: derive.DiscountPercent(raw.OriginalPrice, raw.DiscountedPrice),
		DiscountAmount:  derive.DiscountAmount(raw.OriginalPrice, raw.DiscountedPrice),
		ImageURL:        strOf(raw.ImageURL),
		Phone:           strOf(raw.Phone),
		Email:           strOf(raw.Email),
		Website:         strOf(raw.Website),
		Instagram:       strOf(raw.Instagram),
		Facebook:        strOf(raw.Facebook),
		TikTok:          strOf(raw.TikTok),
		LinkedIn:        strOf(raw.LinkedIn),
		CreatedAt:       raw.CreatedAt,
	}
}

// MapOffers maps a batch of raw rows, preserving order.
func MapOffers(raws []RawOffer) []domain.Offer {
	out := make([]domain.Offer, len(raws))
	for i, raw := range raws {
		out[i] = MapOffer(raw)
	}
	return out
}

// MapProperty converts a raw property row into its display entity. The
// per-area price is derived against the land area for land listings and the
// usable area for everything else.
func MapProperty(raw RawProperty) domain.Property {
	p := domain.Property{
		ID:                raw.ID,
		OwnerID:           raw.OwnerID,
		Status:            domain.PropertyStatus(raw.Status),
		BuyRent:           domain.BuyRent(raw.BuyRent),
		Type:              domain.PropertyType(raw.Type),
		Title:             raw.Title,
		Description:       strOf(raw.Description),
		Price:             raw.Price,
		Currency:          strOf(raw.Currency),
		Location:          raw.Location,
		Bedrooms:          raw.Bedrooms,
		Bathrooms:         raw.Bathrooms,
		UsableArea:        raw.UsableArea,
		GrossArea:         raw.GrossArea,
		LandArea:          raw.LandArea,
		Condition:         strOf(raw.Condition),
		Furnished:         domain.Furnished(strOf(raw.Furnished)),
		EnergyCertificate: strOf(raw.EnergyCertificate),
		Divisions:         raw.Divisions,
		Images:            decodeStringList(raw.Images),
		PriceNegotiable:   raw.PriceNegotiable,
		ContactName:       strOf(raw.ContactName),
		ContactEmail:      strOf(raw.ContactEmail),
		ContactPhone:      strOf(raw.ContactPhone),
		CreatedAt:         raw.CreatedAt,
	}
	if p.Currency == "" {
		p.Currency = "EUR"
	}
	p.PricePerArea = derive.PricePerArea(p.Price, p.AreaForPricing())
	return p
}

// MapProperties maps a batch of raw rows, preserving order.
func MapProperties(raws []RawProperty) []domain.Property {
	out := make([]domain.Property, len(raws))
	for i, raw := range raws {
		out[i] = MapProperty(raw)
	}
	return out
}
