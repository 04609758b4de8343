package application

import (
	"context"
	"errors"
	"io"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
)

// DefaultBrowseLimit caps the unfiltered browse listing.
const DefaultBrowseLimit = 6

// ListingService is the listing store. Mutations are owner-scoped: the
// caller's normalized email must equal the stored owner email, and the
// comparison happens inside the store's conditional write.
type ListingService struct {
	Repo        repo.ListingRepository
	Search      ListingSearcher
	Images      ImageStore
	Logger      *logrus.Logger
	BrowseLimit int64
	Now         func() time.Time
}

func NewListingService(r repo.ListingRepository, search ListingSearcher, images ImageStore, logger *logrus.Logger, browseLimit int) *ListingService {
	if browseLimit <= 0 {
		browseLimit = DefaultBrowseLimit
	}
	return &ListingService{
		Repo:        r,
		Search:      search,
		Images:      images,
		Logger:      logger,
		BrowseLimit: int64(browseLimit),
		Now:         func() time.Time { return time.Now().UTC() },
	}
}

type CreateListingInput struct {
	Email        string
	ServiceName  string
	Category     string
	Description  string
	Image        string
	ProviderName string
	Area         string
	Price        *float64
}

func (s *ListingService) Create(ctx context.Context, in CreateListingInput) (*entity.Listing, error) {
	email, err := requireEmail(in.Email, "email")
	if err != nil {
		return nil, err
	}
	name := strings.TrimSpace(in.ServiceName)
	if name == "" {
		return nil, validationError("serviceName is required")
	}
	if in.Price == nil {
		return nil, validationError("price is required")
	}
	if *in.Price < 0 {
		return nil, validationError("price must not be negative")
	}

	now := s.Now()
	l := &entity.Listing{
		Email:        email,
		ServiceName:  name,
		Category:     strings.TrimSpace(in.Category),
		Description:  strings.TrimSpace(in.Description),
		Image:        strings.TrimSpace(in.Image),
		ProviderName: strings.TrimSpace(in.ProviderName),
		Area:         strings.TrimSpace(in.Area),
		Price:        *in.Price,
		Reviews:      []entity.Review{},
		CreatedAt:    now,
	}
	if err := s.Repo.Create(ctx, l); err != nil {
		return nil, storeError("create service", err)
	}
	s.reindex(ctx, l)
	return l, nil
}

func (s *ListingService) GetByID(ctx context.Context, rawID string) (*entity.Listing, error) {
	id, err := parseID(rawID, "service")
	if err != nil {
		return nil, err
	}
	l, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, storeError("get service", err)
	}
	return l, nil
}

type ListingQuery struct {
	Email    string
	MinPrice *float64
	MaxPrice *float64
}

// List browses listings. Without any filter the result is capped to the
// browse limit; provider-scoped results come newest-first.
func (s *ListingService) List(ctx context.Context, q ListingQuery) ([]entity.Listing, error) {
	if q.MinPrice != nil && q.MaxPrice != nil && *q.MinPrice > *q.MaxPrice {
		return nil, validationError("minPrice must not exceed maxPrice")
	}
	f := entity.ListingFilter{
		Email:    entity.NormalizeEmail(q.Email),
		MinPrice: q.MinPrice,
		MaxPrice: q.MaxPrice,
	}
	if f.IsEmpty() {
		f.Limit = s.BrowseLimit
	}
	out, err := s.Repo.List(ctx, f)
	if err != nil {
		return nil, storeError("list services", err)
	}
	return out, nil
}

// ListForProvider returns every listing owned by email, newest-first.
func (s *ListingService) ListForProvider(ctx context.Context, email string) ([]entity.Listing, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, validationError("email is required")
	}
	out, err := s.Repo.List(ctx, entity.ListingFilter{Email: email})
	if err != nil {
		return nil, storeError("list provider services", err)
	}
	return out, nil
}

// Update applies the allow-listed patch when callerEmail owns the listing.
func (s *ListingService) Update(ctx context.Context, rawID, callerEmail string, patch entity.ListingPatch) (*entity.Listing, error) {
	id, err := parseID(rawID, "service")
	if err != nil {
		return nil, err
	}
	owner := entity.NormalizeEmail(callerEmail)
	if owner == "" {
		return nil, validationError("email is required")
	}
	if patch.Price != nil && *patch.Price < 0 {
		return nil, validationError("price must not be negative")
	}
	if patch.ServiceName != nil && strings.TrimSpace(*patch.ServiceName) == "" {
		return nil, validationError("serviceName must not be empty")
	}
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, validationError("no updatable fields supplied")
	}
	fields["updatedAt"] = s.Now()

	l, err := s.Repo.UpdateOwned(ctx, id, owner, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNoMatch) {
			return nil, s.explainMiss(ctx, id)
		}
		return nil, storeError("update service", err)
	}
	s.reindex(ctx, l)
	return l, nil
}

// Delete removes the listing when callerEmail owns it.
func (s *ListingService) Delete(ctx context.Context, rawID, callerEmail string) error {
	id, err := parseID(rawID, "service")
	if err != nil {
		return err
	}
	owner := entity.NormalizeEmail(callerEmail)
	if owner == "" {
		return validationError("email is required")
	}
	if err := s.Repo.DeleteOwned(ctx, id, owner); err != nil {
		if errors.Is(err, repo.ErrNoMatch) {
			return s.explainMiss(ctx, id)
		}
		return storeError("delete service", err)
	}
	if s.Search != nil {
		if err := s.Search.Remove(ctx, id.Hex()); err != nil {
			s.warn(err, id, "search remove failed")
		}
	}
	return nil
}

// explainMiss tells a missing listing apart from one owned by someone else
// after a conditional write matched nothing. The lookup is a separate read,
// so a concurrent delete can turn a Forbidden into a NotFound; the write
// itself was already refused either way.
func (s *ListingService) explainMiss(ctx context.Context, id primitive.ObjectID) error {
	if _, err := s.Repo.GetByID(ctx, id); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrListingNotFound
		}
		return storeError("get service", err)
	}
	return ErrNotOwner
}

// SearchListings runs a full-text query against the search index.
func (s *ListingService) SearchListings(ctx context.Context, q string, size int) ([]map[string]any, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, validationError("q is required")
	}
	if s.Search == nil {
		return []map[string]any{}, nil
	}
	out, err := s.Search.Search(ctx, q, size)
	if err != nil {
		return nil, storeError("search services", err)
	}
	return out, nil
}

// UploadImage stores a new image for the listing and points the listing at
// it. The ownership pre-check keeps strangers from writing objects; the
// final image update is still conditioned on ownership.
func (s *ListingService) UploadImage(ctx context.Context, rawID, callerEmail string, r io.Reader, filename, contentType string) (*entity.Listing, error) {
	id, err := parseID(rawID, "service")
	if err != nil {
		return nil, err
	}
	owner := entity.NormalizeEmail(callerEmail)
	if owner == "" {
		return nil, validationError("email is required")
	}
	if !strings.HasPrefix(contentType, "image/") {
		return nil, validationError("file must be an image")
	}
	if s.Images == nil {
		return nil, storeError("upload image", errors.New("image storage not configured"))
	}

	current, err := s.Repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrListingNotFound
		}
		return nil, storeError("get service", err)
	}
	if !current.OwnedBy(owner) {
		return nil, ErrNotOwner
	}

	ext := strings.ToLower(path.Ext(filename))
	objectPath := path.Join("services", id.Hex(), uuid.NewString()+ext)
	url, err := s.Images.Upload(ctx, objectPath, contentType, r)
	if err != nil {
		return nil, storeError("upload image", err)
	}

	l, err := s.Repo.UpdateOwned(ctx, id, owner, map[string]any{"image": url, "updatedAt": s.Now()})
	if err != nil {
		if errors.Is(err, repo.ErrNoMatch) {
			return nil, s.explainMiss(ctx, id)
		}
		return nil, storeError("update service image", err)
	}
	s.reindex(ctx, l)
	return l, nil
}

func (s *ListingService) reindex(ctx context.Context, l *entity.Listing) {
	if s.Search == nil {
		return
	}
	if err := s.Search.Put(ctx, l); err != nil {
		s.warn(err, l.ID, "search index failed")
	}
}

func (s *ListingService) warn(err error, id primitive.ObjectID, msg string) {
	if s.Logger != nil {
		s.Logger.WithError(err).WithField("service_id", id.Hex()).Warn(msg)
	}
}
