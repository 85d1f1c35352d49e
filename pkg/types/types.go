// Package domain defines the core business types for the allcascais directory.
package domain

import (
	"slices"
	"time"
)

// Locale selects the display language for localized output.
type Locale string

// Supported locales.
const (
	LocaleEN Locale = "en"
	LocalePT Locale = "pt"
)

// CategoryID identifies a top-level service category.
type CategoryID string

// CategoryAll is the sentinel "no category filter" value.
const CategoryAll CategoryID = "all"

// SubcategoryAll is the sentinel "no subcategory filter" value.
const SubcategoryAll = "all"

// DayKey identifies one of the seven weekdays in a schedule.
type DayKey string

// Day key constants, Monday through Sunday.
const (
	DayMon DayKey = "mon"
	DayTue DayKey = "tue"
	DayWed DayKey = "wed"
	DayThu DayKey = "thu"
	DayFri DayKey = "fri"
	DaySat DayKey = "sat"
	DaySun DayKey = "sun"
)

// WeekOrder is the canonical calendar order of day keys.
var WeekOrder = []DayKey{DayMon, DayTue, DayWed, DayThu, DayFri, DaySat, DaySun}

// OpeningHour is one day's entry in a service schedule. A schedule always
// carries exactly seven entries in WeekOrder.
type OpeningHour struct {
	Day    DayKey `json:"dayKey"`
	Open   string `json:"open,omitempty"`
	Close  string `json:"close,omitempty"`
	Closed bool   `json:"closed"`
}

// RatingSummary aggregates all ratings submitted for one service.
// A service with zero ratings carries no summary at all (nil pointer),
// never a zero-valued one.
type RatingSummary struct {
	WorkQuality float64   `json:"work_quality"`
	Punctuality float64   `json:"punctuality"`
	Overall     float64   `json:"overall"`
	Count       int       `json:"count"`
	LastComment string    `json:"last_comment,omitempty"`
	LastRatedAt time.Time `json:"last_rated_at"`
}

// Rating is a single user's rating of a service. At most one rating exists
// per (service, user) pair; the store enforces this.
type Rating struct {
	ServiceID   string    `json:"service_id"        db:"service_id"`
	UserID      string    `json:"user_id"           db:"user_id"`
	WorkQuality int       `json:"work_quality"      db:"work_quality"`
	Punctuality int       `json:"punctuality"       db:"punctuality"`
	Comment     string    `json:"comment,omitempty" db:"comment"`
	CreatedAt   time.Time `json:"created_at"        db:"created_at"`
}

// Service is a provider profile in the directory.
type Service struct {
	ID            string     `json:"id"`
	OwnerID       string     `json:"owner_id"`
	Name          string     `json:"name"`
	Description   string     `json:"description,omitempty"`
	CategoryID    CategoryID `json:"category_id"`
	SubcategoryID string     `json:"subcategory_id,omitempty"`
	Location      string     `json:"location,omitempty"`

	Email   string `json:"contact_email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`

	Languages []string      `json:"languages,omitempty"`
	Hours     []OpeningHour `json:"opening_hours,omitempty"`
	HoursText string        `json:"opening_hours_text,omitempty"`

	Visible   bool   `json:"visible"`
	AvatarURL string `json:"avatar_url,omitempty"`

	Rating *RatingSummary `json:"rating,omitempty"`

	CreatedAt time.Time  `json:"created_at"`
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// Highlight tags an offer with a promotional badge.
type Highlight string

// Highlight constants. The set is closed; anything else maps to no highlight.
const (
	HighlightNew        Highlight = "new"
	HighlightLastMinute Highlight = "last-minute"
	HighlightPopular    Highlight = "popular"
)

var validHighlights = []Highlight{HighlightNew, HighlightLastMinute, HighlightPopular}

// ParseHighlight returns the highlight for s, or "" when s is not in the
// closed highlight set.
func ParseHighlight(s string) Highlight {
	h := Highlight(s)
	if slices.Contains(validHighlights, h) {
		return h
	}
	return ""
}

// Offer is a promotional package or discount published by a provider.
type Offer struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id,omitempty"`

	Title         string     `json:"title"`
	ShortLabel    string     `json:"short_label,omitempty"`
	Description   string     `json:"description,omitempty"`
	CategoryID    CategoryID `json:"category_id"`
	SubcategoryID string     `json:"subcategory_id,omitempty"`
	ServiceName   string     `json:"service_name,omitempty"`

	Locations []string `json:"locations,omitempty"`
	Languages []string `json:"languages,omitempty"`

	OriginalPrice   *float64   `json:"original_price,omitempty"`
	DiscountedPrice *float64   `json:"discounted_price,omitempty"`
	ValidUntil      *time.Time `json:"valid_until,omitempty"`
	Highlight       Highlight  `json:"highlight,omitempty"`

	// Derived; absent whenever the inputs are undefined.
	DiscountPercent *int     `json:"discount_percent,omitempty"`
	DiscountAmount  *float64 `json:"discount_amount,omitempty"`

	ImageURL string `json:"image_url,omitempty"`

	Phone   string `json:"phone,omitempty"`
	Email   string `json:"contact_email,omitempty"`
	Website string `json:"website,omitempty"`

	Instagram string `json:"instagram,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	TikTok    string `json:"tiktok,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// Location returns the first location for single-location display.
func (o *Offer) Location() string {
	if len(o.Locations) == 0 {
		return ""
	}
	return o.Locations[0]
}

// EffectivePrice is the price a buyer would pay: the discounted price when
// set, otherwise the original price. Nil when neither is known.
func (o *Offer) EffectivePrice() *float64 {
	if o.DiscountedPrice != nil {
		return o.DiscountedPrice
	}
	return o.OriginalPrice
}

// Expired reports whether the offer's validity ended strictly before today.
// Offers without an end date never expire. The comparison is date-only.
func (o *Offer) Expired(now time.Time) bool {
	if o.ValidUntil == nil {
		return false
	}
	y, m, d := now.Date()
	today := time.Date(y, m, d, 0, 0, 0, 0, now.Location())
	vy, vm, vd := o.ValidUntil.Date()
	until := time.Date(vy, vm, vd, 0, 0, 0, 0, now.Location())
	return until.Before(today)
}

// PropertyStatus is the lifecycle state of a property listing.
type PropertyStatus string

// Property status constants.
const (
	StatusActive PropertyStatus = "active"
	StatusSold   PropertyStatus = "sold"
	StatusRented PropertyStatus = "rented"
)

// BuyRent distinguishes sale listings from rental listings.
type BuyRent string

// BuyRent constants.
const (
	BuyRentBuy  BuyRent = "buy"
	BuyRentRent BuyRent = "rent"
)

// PropertyType is the closed enumeration of property kinds.
type PropertyType string

// Property type constants.
const (
	PropertyApartment  PropertyType = "apartment"
	PropertyHouse      PropertyType = "house"
	PropertyVilla      PropertyType = "villa"
	PropertyStudio     PropertyType = "studio"
	PropertyLand       PropertyType = "land"
	PropertyCommercial PropertyType = "commercial"
	PropertyWarehouse  PropertyType = "warehouse"
	PropertyGarage     PropertyType = "garage"
)

// PropertyTypes lists every valid property type.
var PropertyTypes = []PropertyType{
	PropertyApartment, PropertyHouse, PropertyVilla, PropertyStudio,
	PropertyLand, PropertyCommercial, PropertyWarehouse, PropertyGarage,
}

// Furnished describes the furnishing state of a property.
type Furnished string

// Furnished constants.
const (
	FurnishedYes     Furnished = "yes"
	FurnishedNo      Furnished = "no"
	FurnishedPartial Furnished = "partial"
)

// Property is a real-estate listing.
type Property struct {
	ID      string `json:"id"`
	OwnerID string `json:"owner_id"`

	Status  PropertyStatus `json:"status"`
	BuyRent BuyRent        `json:"buy_rent"`
	Type    PropertyType   `json:"property_type"`

	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Currency    string   `json:"currency"`
	Location    string   `json:"location"`

	Bedrooms  *int `json:"bedrooms,omitempty"`
	Bathrooms *int `json:"bathrooms,omitempty"`

	UsableArea *float64 `json:"usable_area,omitempty"`
	GrossArea  *float64 `json:"gross_area,omitempty"`
	LandArea   *float64 `json:"land_area,omitempty"`

	Condition         string    `json:"condition,omitempty"`
	Furnished         Furnished `json:"furnished,omitempty"`
	EnergyCertificate string    `json:"energy_certificate,omitempty"`
	Divisions         *int      `json:"divisions,omitempty"`

	Images          []string `json:"images,omitempty"`
	PriceNegotiable bool     `json:"is_price_negotiable"`

	// Derived; absent when price or area is unknown.
	PricePerArea *float64 `json:"price_per_area,omitempty"`

	ContactName  string `json:"contact_name,omitempty"`
	ContactEmail string `json:"contact_email,omitempty"`
	ContactPhone string `json:"contact_phone,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// AreaForPricing is the area the per-area price is computed against:
// the land area for land, the usable area for everything else.
func (p *Property) AreaForPricing() *float64 {
	if p.Type == PropertyLand {
		return p.LandArea
	}
	return p.UsableArea
}

// SearchRequest is a write-only property search intake. Nothing in the
// directory reads these back; they exist for manual follow-up.
type SearchRequest struct {
	ID       string     `json:"id"`
	Type     BuyRent    `json:"type"`
	Name     string     `json:"name"`
	Email    string     `json:"email"`
	Phone    string     `json:"phone,omitempty"`
	FromDate *time.Time `json:"from_date,omitempty"`
	ToDate   *time.Time `json:"to_date,omitempty"`
	MinSize  *float64   `json:"min_size,omitempty"`
	Notes    string     `json:"notes,omitempty"`

	CreatedAt time.Time `json:"created_at"`
}

// DirectoryStats holds a snapshot of aggregate directory counts.
type DirectoryStats struct {
	ServicesTotal    int `json:"services_total"    db:"services_total"`
	ServicesVisible  int `json:"services_visible"  db:"services_visible"`
	RatingsTotal     int `json:"ratings_total"     db:"ratings_total"`
	OffersTotal      int `json:"offers_total"      db:"offers_total"`
	OffersCurrent    int `json:"offers_current"    db:"offers_current"`
	PropertiesTotal  int `json:"properties_total"  db:"properties_total"`
	PropertiesActive int `json:"properties_active" db:"properties_active"`
	SearchRequests   int `json:"search_requests"   db:"search_requests"`
}
