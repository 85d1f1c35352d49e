package domain

// RatingFilterMode selects how the rating predicate treats services.
// The three modes are mutually exclusive.
type RatingFilterMode string

// Rating filter modes.
const (
	RatingAny  RatingFilterMode = "any"       // no rating predicate
	RatingNone RatingFilterMode = "no-rating" // only services without ratings
	RatingMin  RatingFilterMode = "min"       // overall mean >= MinRating
)

// ServiceFilters defines the composable predicates for the service directory.
// Zero values and sentinel "all" ids disable individual predicates; all active
// predicates AND together.
type ServiceFilters struct {
	Category    CategoryID
	Subcategory string
	RatingMode  RatingFilterMode
	MinRating   float64 // used only when RatingMode == RatingMin
}

// Match checks whether a service satisfies every active predicate.
func (f *ServiceFilters) Match(s *Service) bool {
	if !f.matchCategory(s.CategoryID, s.SubcategoryID) {
		return false
	}
	return f.matchRating(s)
}

func (f *ServiceFilters) matchCategory(cat CategoryID, sub string) bool {
	if f.Category != "" && f.Category != CategoryAll && cat != f.Category {
		return false
	}
	if f.Subcategory != "" && f.Subcategory != SubcategoryAll && sub != f.Subcategory {
		return false
	}
	return true
}

func (f *ServiceFilters) matchRating(s *Service) bool {
	switch f.RatingMode {
	case RatingNone:
		return s.Rating == nil
	case RatingMin:
		// A service with no ratings cannot meet a minimum threshold.
		return s.Rating != nil && s.Rating.Overall >= f.MinRating
	default:
		return true
	}
}

// OfferFilters defines the composable predicates for the offers page.
// The mandatory soft-expiry rule is not part of this set; it is applied
// unconditionally before any user-selected filter.
type OfferFilters struct {
	Category        CategoryID
	Subcategory     string
	Location        *string
	MaxPrice        *float64
	HighlightedOnly bool
}

// Match checks whether an offer satisfies every active predicate.
// An offer with no known price fails an active price ceiling: an unknown
// price cannot be confirmed to fit the budget.
func (f *OfferFilters) Match(o *Offer) bool {
	if f.Category != "" && f.Category != CategoryAll && o.CategoryID != f.Category {
		return false
	}
	if f.Subcategory != "" && f.Subcategory != SubcategoryAll && o.SubcategoryID != f.Subcategory {
		return false
	}
	if f.Location != nil && o.Location() != *f.Location {
		return false
	}
	if f.MaxPrice != nil {
		price := o.EffectivePrice()
		if price == nil || *price > *f.MaxPrice {
			return false
		}
	}
	if f.HighlightedOnly && o.Highlight == "" {
		return false
	}
	return true
}

// PropertyFilters defines the composable predicates for the real-estate page.
type PropertyFilters struct {
	BuyRent      BuyRent
	Type         PropertyType
	Location     *string
	MinBedrooms  *int
	MinBathrooms *int
	MaxPrice     *float64
	MinArea      *float64 // inclusive
	MaxArea      *float64 // inclusive
}

// Match checks whether a property satisfies every active predicate.
// Unknown price fails an active ceiling; unknown area fails an active
// area bound.
func (f *PropertyFilters) Match(p *Property) bool {
	if !f.matchKind(p) {
		return false
	}
	if !f.matchRooms(p) {
		return false
	}
	if f.MaxPrice != nil && (p.Price == nil || *p.Price > *f.MaxPrice) {
		return false
	}
	return f.matchArea(p)
}

func (f *PropertyFilters) matchKind(p *Property) bool {
	if f.BuyRent != "" && p.BuyRent != f.BuyRent {
		return false
	}
	if f.Type != "" && p.Type != f.Type {
		return false
	}
	if f.Location != nil && p.Location != *f.Location {
		return false
	}
	return true
}

func (f *PropertyFilters) matchRooms(p *Property) bool {
	if f.MinBedrooms != nil && (p.Bedrooms == nil || *p.Bedrooms < *f.MinBedrooms) {
		return false
	}
	if f.MinBathrooms != nil && (p.Bathrooms == nil || *p.Bathrooms < *f.MinBathrooms) {
		return false
	}
	return true
}

func (f *PropertyFilters) matchArea(p *Property) bool {
	if f.MinArea == nil && f.MaxArea == nil {
		return true
	}
	area := p.UsableArea
	if area == nil {
		return false
	}
	if f.MinArea != nil && *area < *f.MinArea {
		return false
	}
	if f.MaxArea != nil && *area > *f.MaxArea {
		return false
	}
	return true
}

// PriceSort selects the optional price comparator.
type PriceSort string

// Price sort options. SortNone preserves retrieval order, which is
// most-recent-first from the store.
const (
	SortNone      PriceSort = ""
	SortPriceAsc  PriceSort = "price-asc"
	SortPriceDesc PriceSort = "price-desc"
)

// ParsePriceSort maps a query value to a PriceSort; unknown values sort none.
func ParsePriceSort(s string) PriceSort {
	switch PriceSort(s) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	default:
		return SortNone
	}
}
