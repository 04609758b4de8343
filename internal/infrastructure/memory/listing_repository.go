package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/domain/repository"
)

type ListingRepository struct {
	mu       sync.RWMutex
	listings []entity.Listing
}

func NewListingRepository() *ListingRepository {
	return &ListingRepository{}
}

func (r *ListingRepository) Create(_ context.Context, l *entity.Listing) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if l.Reviews == nil {
		l.Reviews = []entity.Review{}
	}
	l.ID = primitive.NewObjectID()
	r.listings = append(r.listings, cloneListing(*l))
	return nil
}

func (r *ListingRepository) GetByID(_ context.Context, id primitive.ObjectID) (*entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexByID(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	l := cloneListing(r.listings[i])
	return &l, nil
}

func (r *ListingRepository) List(_ context.Context, f entity.ListingFilter) ([]entity.Listing, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := []entity.Listing{}
	add := func(l *entity.Listing) bool {
		if !f.Match(l) {
			return true
		}
		out = append(out, cloneListing(*l))
		return f.Limit <= 0 || int64(len(out)) < f.Limit
	}
	// Slice order is insertion order; provider views walk it backwards.
	if f.ProviderScoped() {
		for i := len(r.listings) - 1; i >= 0; i-- {
			if !add(&r.listings[i]) {
				break
			}
		}
	} else {
		for i := range r.listings {
			if !add(&r.listings[i]) {
				break
			}
		}
	}
	return out, nil
}

func (r *ListingRepository) UpdateOwned(_ context.Context, id primitive.ObjectID, owner string, fields map[string]any) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOwned(id, owner)
	if i < 0 {
		return nil, repository.ErrNoMatch
	}
	applyListingFields(&r.listings[i], fields)
	l := cloneListing(r.listings[i])
	return &l, nil
}

func (r *ListingRepository) DeleteOwned(_ context.Context, id primitive.ObjectID, owner string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexOwned(id, owner)
	if i < 0 {
		return repository.ErrNoMatch
	}
	r.listings = append(r.listings[:i], r.listings[i+1:]...)
	return nil
}

func (r *ListingRepository) PushReview(_ context.Context, id primitive.ObjectID, review entity.Review) (*entity.Listing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByID(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	r.listings[i].Reviews = append(r.listings[i].Reviews, review)
	l := cloneListing(r.listings[i])
	return &l, nil
}

func (r *ListingRepository) indexByID(id primitive.ObjectID) int {
	for i := range r.listings {
		if r.listings[i].ID == id {
			return i
		}
	}
	return -1
}

func (r *ListingRepository) indexOwned(id primitive.ObjectID, owner string) int {
	i := r.indexByID(id)
	if i < 0 || r.listings[i].Email != owner {
		return -1
	}
	return i
}

func cloneListing(l entity.Listing) entity.Listing {
	reviews := make([]entity.Review, len(l.Reviews))
	copy(reviews, l.Reviews)
	l.Reviews = reviews
	return l
}

func applyListingFields(l *entity.Listing, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "serviceName":
			l.ServiceName, _ = v.(string)
		case "category":
			l.Category, _ = v.(string)
		case "description":
			l.Description, _ = v.(string)
		case "image":
			l.Image, _ = v.(string)
		case "providerName":
			l.ProviderName, _ = v.(string)
		case "area":
			l.Area, _ = v.(string)
		case "price":
			l.Price, _ = v.(float64)
		case "updatedAt":
			l.UpdatedAt, _ = v.(time.Time)
		}
	}
}
