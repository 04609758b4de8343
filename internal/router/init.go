package router

import (
	"github.com/oksasatya/home-hero-api/internal/application"
	"github.com/oksasatya/home-hero-api/internal/container"
	"github.com/oksasatya/home-hero-api/internal/infrastructure/search"
	handlers "github.com/oksasatya/home-hero-api/internal/interface/http"
	"github.com/oksasatya/home-hero-api/internal/router/modules"
)

// Handlers groups every HTTP handler the modules mount.
type Handlers struct {
	Users        *handlers.UserHandler
	Listings     *handlers.ListingHandler
	Bookings     *handlers.BookingHandler
	Testimonials *handlers.TestimonialHandler
}

// optional adapters are converted to nil interfaces when absent so the
// services can tell "not configured" apart from a failing backend.
func searcher() application.ListingSearcher {
	es := container.GetES()
	if es == nil {
		return nil
	}
	return search.NewListingIndex(es, container.GetConfig().ESServicesIndex)
}

func imageStore() application.ImageStore {
	if b := container.GetGCSBucket(); b != nil {
		return b
	}
	return nil
}

func jobPublisher() application.JobPublisher {
	if p := container.GetRabbitPub(); p != nil {
		return p
	}
	return nil
}

func buildHandlers() Handlers {
	cfg := container.GetConfig()
	logger := container.GetLogger()
	repos := container.GetRepositories()
	idx := searcher()

	users := application.NewUserService(repos.Users, logger)
	listings := application.NewListingService(repos.Listings, idx, imageStore(), logger, cfg.BrowseLimit)
	reviews := application.NewReviewService(repos.Listings, idx, logger)
	bookings := application.NewBookingService(repos.Bookings, jobPublisher(), logger)
	testimonials := application.NewTestimonialService(repos.Testimonials)

	return Handlers{
		Users:        handlers.NewUserHandler(users, logger),
		Listings:     handlers.NewListingHandler(listings, reviews, logger),
		Bookings:     handlers.NewBookingHandler(bookings, logger),
		Testimonials: handlers.NewTestimonialHandler(testimonials, logger),
	}
}

// InitModules wires every feature module from the container singletons.
// Call once at startup after the container is populated.
func InitModules(r *Registry) {
	h := buildHandlers()
	r.Add(
		modules.NewSystemModule(),
		modules.NewUserModule(h.Users),
		modules.NewListingModule(h.Listings),
		modules.NewBookingModule(h.Bookings),
		modules.NewTestimonialModule(h.Testimonials),
		modules.NewDebugModule(),
	)
}
