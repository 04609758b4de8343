// Package memory keeps every collection in process memory. Each repository
// guards its data with a mutex, which gives the same per-document atomicity
// the MongoDB repositories get from the server. It backs the test suites and
// STORE_DRIVER=memory for local runs without a database.
package memory

import (
	"github.com/oksasatya/home-hero-api/internal/domain/repository"
)

// Store groups one repository per collection.
type Store struct {
	Users        *UserRepository
	Listings     *ListingRepository
	Bookings     *BookingRepository
	Testimonials *TestimonialRepository
}

func NewStore() *Store {
	return &Store{
		Users:        NewUserRepository(),
		Listings:     NewListingRepository(),
		Bookings:     NewBookingRepository(),
		Testimonials: NewTestimonialRepository(),
	}
}

var (
	_ repository.UserRepository        = (*UserRepository)(nil)
	_ repository.ListingRepository     = (*ListingRepository)(nil)
	_ repository.BookingRepository     = (*BookingRepository)(nil)
	_ repository.TestimonialRepository = (*TestimonialRepository)(nil)
)
