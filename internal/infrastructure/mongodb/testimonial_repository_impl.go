package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/domain/repository"
)

type TestimonialRepository struct {
	base
}

func NewTestimonialRepository(conn *Connector, timeout time.Duration) *TestimonialRepository {
	return &TestimonialRepository{base: newBase(conn, TestimonialsCollection, timeout)}
}

func (r *TestimonialRepository) Create(ctx context.Context, t entity.Testimonial) (entity.Testimonial, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	doc := bson.M(t)
	res, err := coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, err
	}
	out := make(entity.Testimonial, len(t)+1)
	for k, v := range t {
		out[k] = v
	}
	out["_id"] = res.InsertedID
	return out, nil
}

func (r *TestimonialRepository) List(ctx context.Context) ([]entity.Testimonial, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	var docs []bson.M
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}
	out := make([]entity.Testimonial, 0, len(docs))
	for _, d := range docs {
		out = append(out, entity.Testimonial(d))
	}
	return out, nil
}

var _ repository.TestimonialRepository = (*TestimonialRepository)(nil)
