package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
	"github.com/oksasatya/home-hero-api/pkg/mailer"
	mailtpl "github.com/oksasatya/home-hero-api/pkg/mailer/templates"
)

// BookingService is the booking ledger.
//
// Creation does not reject duplicates. Clients call Exists first; that
// check-then-create sequence is best-effort and two concurrent requests can
// both pass the check.
type BookingService struct {
	Repo   repo.BookingRepository
	Jobs   JobPublisher
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewBookingService(r repo.BookingRepository, jobs JobPublisher, logger *logrus.Logger) *BookingService {
	return &BookingService{Repo: r, Jobs: jobs, Logger: logger, Now: func() time.Time { return time.Now().UTC() }}
}

type CreateBookingInput struct {
	UserEmail     string
	ServiceID     string
	ServiceName   string
	ProviderEmail string
	Price         float64
	BookingDate   string
	Address       string
	Instruction   string
}

func (s *BookingService) Create(ctx context.Context, in CreateBookingInput) (*entity.Booking, error) {
	email, err := requireEmail(in.UserEmail, "userEmail")
	if err != nil {
		return nil, err
	}
	serviceID := strings.TrimSpace(in.ServiceID)
	if serviceID == "" {
		return nil, validationError("serviceId is required")
	}
	provider := entity.NormalizeEmail(in.ProviderEmail)
	if provider != "" {
		if provider, err = requireEmail(provider, "providerEmail"); err != nil {
			return nil, err
		}
	}

	b := &entity.Booking{
		UserEmail:     email,
		ServiceID:     serviceID,
		ServiceName:   strings.TrimSpace(in.ServiceName),
		ProviderEmail: provider,
		Price:         in.Price,
		BookingDate:   strings.TrimSpace(in.BookingDate),
		Address:       strings.TrimSpace(in.Address),
		Instruction:   strings.TrimSpace(in.Instruction),
		CreatedAt:     s.Now(),
	}
	if err := s.Repo.Create(ctx, b); err != nil {
		return nil, storeError("create booking", err)
	}
	s.notify(ctx, mailtpl.BookingCreated, b)
	return b, nil
}

type BookingQuery struct {
	UserEmail     string
	ProviderEmail string
}

func (s *BookingService) List(ctx context.Context, q BookingQuery) ([]entity.Booking, error) {
	out, err := s.Repo.List(ctx, entity.BookingFilter{
		UserEmail:     entity.NormalizeEmail(q.UserEmail),
		ProviderEmail: entity.NormalizeEmail(q.ProviderEmail),
	})
	if err != nil {
		return nil, storeError("list bookings", err)
	}
	return out, nil
}

// Delete removes a booking. Deleting an absent booking is reported as
// not found rather than succeeding silently.
func (s *BookingService) Delete(ctx context.Context, rawID string) error {
	id, err := parseID(rawID, "booking")
	if err != nil {
		return err
	}
	b, err := s.Repo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrBookingNotFound
		}
		return storeError("delete booking", err)
	}
	s.notify(ctx, mailtpl.BookingCancelled, b)
	return nil
}

// Exists reports whether userEmail already booked serviceID. The answer can
// be stale by the time the caller acts on it.
func (s *BookingService) Exists(ctx context.Context, userEmail, serviceID string) (bool, error) {
	email := entity.NormalizeEmail(userEmail)
	serviceID = strings.TrimSpace(serviceID)
	if email == "" || serviceID == "" {
		return false, validationError("userEmail and serviceId are required")
	}
	ok, err := s.Repo.Exists(ctx, email, serviceID)
	if err != nil {
		return false, storeError("check booking", err)
	}
	return ok, nil
}

// notify enqueues a mail job. Failures are logged and never fail the request.
func (s *BookingService) notify(ctx context.Context, template string, b *entity.Booking) {
	if s.Jobs == nil || b.UserEmail == "" {
		if s.Logger != nil {
			s.Logger.WithFields(logrus.Fields{"booking_id": b.ID.Hex(), "template": template}).Debug("booking notification skipped")
		}
		return
	}
	job := mailer.EmailJob{
		To:       b.UserEmail,
		Template: template,
		Data: map[string]any{
			"BookingID":     b.ID.Hex(),
			"ServiceID":     b.ServiceID,
			"ServiceName":   b.ServiceName,
			"ProviderEmail": b.ProviderEmail,
			"BookingDate":   b.BookingDate,
			"Price":         b.Price,
		},
	}
	if b.ProviderEmail != "" {
		job.CC = []string{b.ProviderEmail}
	}
	if err := s.Jobs.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("booking_id", b.ID.Hex()).Warn("failed to publish booking notification")
	}
}
