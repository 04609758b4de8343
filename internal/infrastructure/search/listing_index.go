package search

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/elastic/go-elasticsearch/v8/esapi"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

const (
	defaultSize = 10
	maxSize     = 50
)

// ListingIndex mirrors listings into an Elasticsearch index for full-text
// search. The document store stays the source of truth.
type ListingIndex struct {
	ES    *elasticsearch.Client
	Index string
}

func NewListingIndex(es *elasticsearch.Client, index string) *ListingIndex {
	return &ListingIndex{ES: es, Index: index}
}

func (i *ListingIndex) enabled() bool {
	return i != nil && i.ES != nil && i.Index != ""
}

func listingDocument(l *entity.Listing) map[string]any {
	return map[string]any{
		"id":            l.ID.Hex(),
		"email":         l.Email,
		"serviceName":   l.ServiceName,
		"category":      l.Category,
		"description":   l.Description,
		"image":         l.Image,
		"providerName":  l.ProviderName,
		"area":          l.Area,
		"price":         l.Price,
		"reviewCount":   len(l.Reviews),
		"averageRating": l.AverageRating(),
		"createdAt":     l.CreatedAt.Format(time.RFC3339Nano),
	}
}

// Put indexes (or re-indexes) a listing.
func (i *ListingIndex) Put(ctx context.Context, l *entity.Listing) error {
	if !i.enabled() {
		return nil
	}
	b, err := json.Marshal(listingDocument(l))
	if err != nil {
		return err
	}
	req := esapi.IndexRequest{Index: i.Index, DocumentID: l.ID.Hex(), Body: strings.NewReader(string(b)), Refresh: "false"}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return fmt.Errorf("index listing %s: %s", l.ID.Hex(), res.Status())
	}
	return nil
}

// Remove drops a listing from the index. A missing document is not an error.
func (i *ListingIndex) Remove(ctx context.Context, id string) error {
	if !i.enabled() {
		return nil
	}
	req := esapi.DeleteRequest{Index: i.Index, DocumentID: id}
	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()
	res, err := req.Do(c, i.ES)
	if err != nil {
		return err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() && res.StatusCode != 404 {
		return fmt.Errorf("remove listing %s: %s", id, res.Status())
	}
	return nil
}

// ClampSize bounds a requested result size to [1, maxSize].
func ClampSize(size int) int {
	if size <= 0 {
		return defaultSize
	}
	if size > maxSize {
		return maxSize
	}
	return size
}

func searchQuery(q string, size int) map[string]any {
	return map[string]any{
		"query": map[string]any{
			"multi_match": map[string]any{
				"query":     q,
				"fields":    []string{"serviceName^3", "category^2", "description", "area"},
				"fuzziness": "AUTO",
			},
		},
		"size": ClampSize(size),
	}
}

// Search runs a multi_match query and returns the stored documents.
func (i *ListingIndex) Search(ctx context.Context, q string, size int) ([]map[string]any, error) {
	if !i.enabled() {
		return []map[string]any{}, nil
	}
	b, err := json.Marshal(searchQuery(q, size))
	if err != nil {
		return nil, err
	}

	c, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	res, err := i.ES.Search(
		i.ES.Search.WithContext(c),
		i.ES.Search.WithIndex(i.Index),
		i.ES.Search.WithBody(strings.NewReader(string(b))),
	)
	if err != nil {
		return nil, err
	}
	defer func() { _ = res.Body.Close() }()
	if res.IsError() {
		return nil, fmt.Errorf("search listings: %s", res.Status())
	}

	var parsed struct {
		Hits struct {
			Hits []struct {
				Source map[string]any `json:"_source"`
			} `json:"hits"`
		} `json:"hits"`
	}
	if err := json.NewDecoder(res.Body).Decode(&parsed); err != nil {
		return nil, err
	}
	out := make([]map[string]any, 0, len(parsed.Hits.Hits))
	for _, h := range parsed.Hits.Hits {
		out = append(out, h.Source)
	}
	return out, nil
}
