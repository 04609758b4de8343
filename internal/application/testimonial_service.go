package application

import (
	"context"
	"time"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
)

// TestimonialService is the public testimonial feed. Entries are free-form
// and have no owner.
type TestimonialService struct {
	Repo repo.TestimonialRepository
	Now  func() time.Time
}

func NewTestimonialService(r repo.TestimonialRepository) *TestimonialService {
	return &TestimonialService{Repo: r, Now: func() time.Time { return time.Now().UTC() }}
}

func (s *TestimonialService) Append(ctx context.Context, payload map[string]any) (entity.Testimonial, error) {
	doc := entity.Testimonial(payload).Sanitized()
	if len(doc) == 0 {
		return nil, validationError("testimonial must not be empty")
	}
	doc["createdAt"] = s.Now()
	out, err := s.Repo.Create(ctx, doc)
	if err != nil {
		return nil, storeError("create testimonial", err)
	}
	return out, nil
}

func (s *TestimonialService) ListAll(ctx context.Context) ([]entity.Testimonial, error) {
	out, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeError("list testimonials", err)
	}
	return out, nil
}
