package repository

import (
	"context"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

type TestimonialRepository interface {
	// Create stores t and returns the stored document including its id.
	Create(ctx context.Context, t entity.Testimonial) (entity.Testimonial, error)
	List(ctx context.Context) ([]entity.Testimonial, error)
}
