package handlers

import "github.com/oksasatya/home-hero-api/internal/domain/entity"

// listingView adds read-time rating aggregates to a listing.
type listingView struct {
	entity.Listing
	ReviewCount   int     `json:"reviewCount"`
	AverageRating float64 `json:"averageRating"`
}

func newListingView(l *entity.Listing) listingView {
	v := listingView{Listing: *l, ReviewCount: len(l.Reviews), AverageRating: l.AverageRating()}
	if v.Reviews == nil {
		v.Reviews = []entity.Review{}
	}
	return v
}

func newListingViews(ls []entity.Listing) []listingView {
	out := make([]listingView, 0, len(ls))
	for i := range ls {
		out = append(out, newListingView(&ls[i]))
	}
	return out
}
