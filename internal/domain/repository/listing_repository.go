package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

// ListingRepository defines the storage operations of the services collection.
type ListingRepository interface {
	Create(ctx context.Context, l *entity.Listing) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Listing, error)
	List(ctx context.Context, f entity.ListingFilter) ([]entity.Listing, error)
	// UpdateOwned sets fields on the listing matching both id and owner in
	// a single conditional write. ErrNoMatch when nothing matched.
	UpdateOwned(ctx context.Context, id primitive.ObjectID, owner string, fields map[string]any) (*entity.Listing, error)
	// DeleteOwned removes the listing matching both id and owner.
	// ErrNoMatch when nothing matched.
	DeleteOwned(ctx context.Context, id primitive.ObjectID, owner string) error
	// PushReview appends r to the listing's reviews without reading the
	// document first. ErrNotFound when the listing is absent.
	PushReview(ctx context.Context, id primitive.ObjectID, r entity.Review) (*entity.Listing, error)
}
