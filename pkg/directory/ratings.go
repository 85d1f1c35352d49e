package directory

import (
	domain "github.com/Chiosap01/allcascais/pkg/types"
)

type ratingAccumulator struct {
	sumWork  int
	sumPunct int
	count    int
	latest   domain.Rating
}

// AggregateRatings folds individual ratings into one summary per service in
// a single pass. The overall score is the mean of the two per-criterion
// means. The latest comment wins by strictly greater created_at, so ties
// keep the first one seen. Services absent from the result have no ratings.
func AggregateRatings(ratings []domain.Rating) map[string]*domain.RatingSummary {
	acc := make(map[string]*ratingAccumulator)
	for _, r := range ratings {
		a, ok := acc[r.ServiceID]
		if !ok {
			a = &ratingAccumulator{}
			acc[r.ServiceID] = a
		}
		a.sumWork += r.WorkQuality
		a.sumPunct += r.Punctuality
		a.count++
		if a.count == 1 || r.CreatedAt.After(a.latest.CreatedAt) {
			a.latest = r
		}
	}

	out := make(map[string]*domain.RatingSummary, len(acc))
	for id, a := range acc {
		avgWork := float64(a.sumWork) / float64(a.count)
		avgPunct := float64(a.sumPunct) / float64(a.count)
		out[id] = &domain.RatingSummary{
			WorkQuality: avgWork,
			Punctuality: avgPunct,
			Overall:     (avgWork + avgPunct) / 2,
			Count:       a.count,
			LastComment: a.latest.Comment,
			LastRatedAt: a.latest.CreatedAt,
		}
	}
	return out
}

// MergeRatings attaches aggregated summaries to their services in place.
// Services without an entry keep a nil summary; a zero-valued summary is
// never attached.
func MergeRatings(services []domain.Service, summaries map[string]*domain.RatingSummary) {
	for i := range services {
		services[i].Rating = summaries[services[i].ID]
	}
}
