package memory

import (
	"context"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/domain/repository"
)

type BookingRepository struct {
	mu       sync.RWMutex
	bookings []entity.Booking
}

func NewBookingRepository() *BookingRepository {
	return &BookingRepository{}
}

func (r *BookingRepository) Create(_ context.Context, b *entity.Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	b.ID = primitive.NewObjectID()
	r.bookings = append(r.bookings, *b)
	return nil
}

func (r *BookingRepository) List(_ context.Context, f entity.BookingFilter) ([]entity.Booking, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := []entity.Booking{}
	for i := range r.bookings {
		if f.Match(&r.bookings[i]) {
			out = append(out, r.bookings[i])
		}
	}
	return out, nil
}

func (r *BookingRepository) Delete(_ context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.bookings {
		if r.bookings[i].ID == id {
			b := r.bookings[i]
			r.bookings = append(r.bookings[:i], r.bookings[i+1:]...)
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *BookingRepository) Exists(_ context.Context, userEmail, serviceID string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for i := range r.bookings {
		if r.bookings[i].UserEmail == userEmail && r.bookings[i].ServiceID == serviceID {
			return true, nil
		}
	}
	return false, nil
}
