package application

import (
	"context"
	"errors"
	"io"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
)

func ptr[T any](v T) *T { return &v }

var errBoom = errors.New("boom")

// touchyListings fails every call; used to prove a request never reached
// the store.
type touchyListings struct {
	repo.ListingRepository
	calls int
}

func (t *touchyListings) touch() error { t.calls++; return errBoom }

func (t *touchyListings) GetByID(context.Context, primitive.ObjectID) (*entity.Listing, error) {
	return nil, t.touch()
}

func (t *touchyListings) UpdateOwned(context.Context, primitive.ObjectID, string, map[string]any) (*entity.Listing, error) {
	return nil, t.touch()
}

func (t *touchyListings) DeleteOwned(context.Context, primitive.ObjectID, string) error {
	return t.touch()
}

func (t *touchyListings) PushReview(context.Context, primitive.ObjectID, entity.Review) (*entity.Listing, error) {
	return nil, t.touch()
}

func (t *touchyListings) List(context.Context, entity.ListingFilter) ([]entity.Listing, error) {
	return nil, t.touch()
}

type fakeSearcher struct {
	mu      sync.Mutex
	put     []string
	removed []string
	hits    []map[string]any
	putErr  error
}

func (f *fakeSearcher) Put(_ context.Context, l *entity.Listing) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.put = append(f.put, l.ID.Hex())
	return f.putErr
}

func (f *fakeSearcher) Remove(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeSearcher) Search(context.Context, string, int) ([]map[string]any, error) {
	return f.hits, nil
}

type fakeImages struct {
	paths []string
	body  string
}

func (f *fakeImages) Upload(_ context.Context, objectPath, _ string, r io.Reader) (string, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.paths = append(f.paths, objectPath)
	f.body = string(b)
	return "https://img.test/" + objectPath, nil
}

type fakeJobs struct {
	mu   sync.Mutex
	jobs []any
	err  error
}

func (f *fakeJobs) PublishJSON(_ context.Context, body any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.jobs = append(f.jobs, body)
	return nil
}
