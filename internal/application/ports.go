package application

import (
	"context"
	"io"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

// ListingSearcher keeps a search index in step with the listing store.
type ListingSearcher interface {
	Put(ctx context.Context, l *entity.Listing) error
	Remove(ctx context.Context, id string) error
	Search(ctx context.Context, q string, size int) ([]map[string]any, error)
}

// ImageStore persists uploaded objects and returns their public URL.
type ImageStore interface {
	Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error)
}

// JobPublisher enqueues a JSON job for a background worker.
type JobPublisher interface {
	PublishJSON(ctx context.Context, body any) error
}
