package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

type TestimonialRepository struct {
	mu    sync.RWMutex
	items []entity.Testimonial
}

func NewTestimonialRepository() *TestimonialRepository {
	return &TestimonialRepository{}
}

func (r *TestimonialRepository) Create(_ context.Context, t entity.Testimonial) (entity.Testimonial, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	doc := make(entity.Testimonial, len(t)+1)
	for k, v := range t {
		doc[k] = v
	}
	doc["_id"] = primitive.NewObjectID()
	r.items = append(r.items, doc)
	return doc, nil
}

func (r *TestimonialRepository) List(_ context.Context) ([]entity.Testimonial, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.Testimonial, len(r.items))
	copy(out, r.items)
	return out, nil
}
