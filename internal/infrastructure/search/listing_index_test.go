package search

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/elastic/go-elasticsearch/v8"
	qt "github.com/frankban/quicktest"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

type recorded struct {
	method, path string
	body         map[string]any
}

// fakeES answers like an Elasticsearch node and records what it was sent.
func fakeES(c *qt.C, status int, reply string) (*elasticsearch.Client, *[]recorded) {
	var (
		mu  sync.Mutex
		got []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rec := recorded{method: r.Method, path: r.URL.Path}
		if b, _ := io.ReadAll(r.Body); len(b) > 0 {
			_ = json.Unmarshal(b, &rec.body)
		}
		mu.Lock()
		got = append(got, rec)
		mu.Unlock()
		w.Header().Set("X-Elastic-Product", "Elasticsearch")
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	c.Cleanup(srv.Close)

	es, err := elasticsearch.NewClient(elasticsearch.Config{Addresses: []string{srv.URL}})
	c.Assert(err, qt.IsNil)
	return es, &got
}

func TestClampSize(t *testing.T) {
	c := qt.New(t)
	c.Assert(ClampSize(0), qt.Equals, 10)
	c.Assert(ClampSize(-3), qt.Equals, 10)
	c.Assert(ClampSize(7), qt.Equals, 7)
	c.Assert(ClampSize(500), qt.Equals, 50)
}

func TestSearchQuery(t *testing.T) {
	c := qt.New(t)
	q := searchQuery("deep clean", 0)
	c.Assert(q["size"], qt.Equals, 10)
	mm := q["query"].(map[string]any)["multi_match"].(map[string]any)
	c.Assert(mm["query"], qt.Equals, "deep clean")
	c.Assert(mm["fields"], qt.DeepEquals, []string{"serviceName^3", "category^2", "description", "area"})
}

func TestDisabledIndexIsNoop(t *testing.T) {
	c := qt.New(t)
	var idx *ListingIndex
	c.Assert(idx.Put(context.Background(), &entity.Listing{}), qt.IsNil)
	c.Assert(idx.Remove(context.Background(), "x"), qt.IsNil)
	out, err := NewListingIndex(nil, "services").Search(context.Background(), "x", 5)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.HasLen, 0)
}

func TestPutSendsListingDocument(t *testing.T) {
	c := qt.New(t)
	es, got := fakeES(c, http.StatusCreated, `{"result":"created"}`)
	idx := NewListingIndex(es, "services")
	l := &entity.Listing{
		ID:          primitive.NewObjectID(),
		Email:       "p@x.io",
		ServiceName: "Plumbing",
		Price:       25,
		Reviews:     []entity.Review{{Rating: 4}, {Rating: 2}},
	}

	c.Assert(idx.Put(context.Background(), l), qt.IsNil)
	c.Assert(*got, qt.HasLen, 1)
	rec := (*got)[0]
	c.Assert(rec.method, qt.Equals, http.MethodPut)
	c.Assert(rec.path, qt.Equals, "/services/_doc/"+l.ID.Hex())
	c.Assert(rec.body["serviceName"], qt.Equals, "Plumbing")
	c.Assert(rec.body["reviewCount"], qt.Equals, 2.0)
	c.Assert(rec.body["averageRating"], qt.Equals, 3.0)
}

func TestRemoveIgnoresMissingDocument(t *testing.T) {
	c := qt.New(t)
	es, _ := fakeES(c, http.StatusNotFound, `{"result":"not_found"}`)
	c.Assert(NewListingIndex(es, "services").Remove(context.Background(), "abc"), qt.IsNil)

	es, _ = fakeES(c, http.StatusInternalServerError, `{}`)
	err := NewListingIndex(es, "services").Remove(context.Background(), "abc")
	c.Assert(err, qt.Not(qt.IsNil))
}

func TestSearchReturnsSources(t *testing.T) {
	c := qt.New(t)
	reply := `{"hits":{"hits":[{"_source":{"id":"a","serviceName":"Plumbing"}},{"_source":{"id":"b","serviceName":"Pool care"}}]}}`
	es, got := fakeES(c, http.StatusOK, reply)

	out, err := NewListingIndex(es, "services").Search(context.Background(), "p", 99)
	c.Assert(err, qt.IsNil)
	c.Assert(out, qt.HasLen, 2)
	c.Assert(out[1]["serviceName"], qt.Equals, "Pool care")
	c.Assert(strings.HasSuffix((*got)[0].path, "/services/_search"), qt.IsTrue)
	c.Assert((*got)[0].body["size"], qt.Equals, 50.0)
}
