package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
)

// ReviewService appends customer reviews to listings. Any caller may review;
// there is no ownership check and no way to edit or remove a review.
type ReviewService struct {
	Listings repo.ListingRepository
	Search   ListingSearcher
	Logger   *logrus.Logger
	Now      func() time.Time
}

func NewReviewService(listings repo.ListingRepository, search ListingSearcher, logger *logrus.Logger) *ReviewService {
	return &ReviewService{Listings: listings, Search: search, Logger: logger, Now: func() time.Time { return time.Now().UTC() }}
}

type ReviewInput struct {
	UserEmail string
	Rating    *float64
	Comment   string
}

// Append pushes the review onto the listing in one atomic store operation
// and returns the updated listing.
func (s *ReviewService) Append(ctx context.Context, rawListingID string, in ReviewInput) (*entity.Listing, error) {
	id, err := parseID(rawListingID, "service")
	if err != nil {
		return nil, err
	}
	email := entity.NormalizeEmail(in.UserEmail)
	if email == "" {
		return nil, validationError("userEmail is required")
	}
	if in.Rating == nil {
		return nil, validationError("rating is required")
	}

	l, err := s.Listings.PushReview(ctx, id, entity.Review{
		UserEmail: email,
		Rating:    *in.Rating,
		Comment:   strings.TrimSpace(in.Comment),
		CreatedAt: s.Now(),
	})
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, storeError("append review", err)
	}
	// rating aggregates in the index are advisory; the review is already stored
	if s.Search != nil {
		if err := s.Search.Put(ctx, l); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("service_id", l.ID.Hex()).Warn("search reindex after review failed")
		}
	}
	return l, nil
}
