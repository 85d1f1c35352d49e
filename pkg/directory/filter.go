package directory

import (
	"sort"
	"time"

	domain "github.com/Chiosap01/allcascais/pkg/types"
)

// FilterServices returns the services matching every active predicate,
// preserving input order. The input slice is never mutated; an empty result
// is a valid outcome, not an error.
func FilterServices(services []domain.Service, f domain.ServiceFilters) []domain.Service {
	out := make([]domain.Service, 0, len(services))
	for i := range services {
		if f.Match(&services[i]) {
			out = append(out, services[i])
		}
	}
	return out
}

// FilterOffers drops expired offers unconditionally, then applies the
// user-selected predicates and the optional price sort. Expiry is evaluated
// against now before anything else; no filter combination can resurface an
// expired offer.
func FilterOffers(offers []domain.Offer, f domain.OfferFilters, sortBy domain.PriceSort, now time.Time) []domain.Offer {
	out := make([]domain.Offer, 0, len(offers))
	for i := range offers {
		if offers[i].Expired(now) {
			continue
		}
		if f.Match(&offers[i]) {
			out = append(out, offers[i])
		}
	}
	sortByPrice(out, sortBy, func(o *domain.Offer) *float64 { return o.EffectivePrice() })
	return out
}

// FilterProperties returns the properties matching every active predicate,
// then applies the optional price sort. The input slice is never mutated.
func FilterProperties(properties []domain.Property, f domain.PropertyFilters, sortBy domain.PriceSort) []domain.Property {
	out := make([]domain.Property, 0, len(properties))
	for i := range properties {
		if f.Match(&properties[i]) {
			out = append(out, properties[i])
		}
	}
	sortByPrice(out, sortBy, func(p *domain.Property) *float64 { return p.Price })
	return out
}

// sortByPrice stably sorts the already-copied result slice. Entries without
// a price sort after all priced entries in both directions, keeping their
// relative order.
func sortByPrice[T any](items []T, sortBy domain.PriceSort, price func(*T) *float64) {
	if sortBy != domain.SortPriceAsc && sortBy != domain.SortPriceDesc {
		return
	}
	sort.SliceStable(items, func(i, j int) bool {
		pi, pj := price(&items[i]), price(&items[j])
		if pi == nil || pj == nil {
			return pi != nil && pj == nil
		}
		if sortBy == domain.SortPriceAsc {
			return *pi < *pj
		}
		return *pi > *pj
	})
}
