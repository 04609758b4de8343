package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

type BookingRepository interface {
	Create(ctx context.Context, b *entity.Booking) error
	List(ctx context.Context, f entity.BookingFilter) ([]entity.Booking, error)
	// Delete removes the booking and returns what was removed.
	// ErrNotFound when no booking had the id.
	Delete(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error)
	Exists(ctx context.Context, userEmail, serviceID string) (bool, error)
}
