package helpers

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
	"google.golang.org/api/option"
)

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// GCSBucket uploads objects into one bucket.
type GCSBucket struct {
	Client *storage.Client
	Bucket string
}

func NewGCSBucket(client *storage.Client, bucket string) *GCSBucket {
	return &GCSBucket{Client: client, Bucket: bucket}
}

// Upload copies r into objectPath and returns the object's public URL.
func (b *GCSBucket) Upload(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := b.Client.Bucket(b.Bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.ChunkSize = 0 // small files, single request
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return PublicURL(b.Bucket, objectPath), nil
}

// PublicURL builds a public URL for an object (assuming public read access)
func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("https://storage.googleapis.com/%s/%s", bucket, objectPath)
}
