package mongodb

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/domain/repository"
)

type ListingRepository struct {
	base
}

func NewListingRepository(conn *Connector, timeout time.Duration) *ListingRepository {
	return &ListingRepository{base: newBase(conn, ServicesCollection, timeout)}
}

func (r *ListingRepository) Create(ctx context.Context, l *entity.Listing) error {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	if l.Reviews == nil {
		l.Reviews = []entity.Review{}
	}
	res, err := coll.InsertOne(ctx, l)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		l.ID = id
	}
	return nil
}

func (r *ListingRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*entity.Listing, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	l := &entity.Listing{}
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(l); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// listingQuery translates a filter into a find filter and options.
func listingQuery(f entity.ListingFilter) (bson.M, *options.FindOptions) {
	q := bson.M{}
	if f.Email != "" {
		q["email"] = f.Email
	}
	price := bson.M{}
	if f.MinPrice != nil {
		price["$gte"] = *f.MinPrice
	}
	if f.MaxPrice != nil {
		price["$lte"] = *f.MaxPrice
	}
	if len(price) > 0 {
		q["price"] = price
	}

	opts := options.Find()
	if f.ProviderScoped() {
		opts.SetSort(bson.D{{Key: "createdAt", Value: -1}, {Key: "_id", Value: -1}})
	} else {
		opts.SetSort(bson.D{{Key: "_id", Value: 1}})
	}
	if f.Limit > 0 {
		opts.SetLimit(f.Limit)
	}
	return q, opts
}

func (r *ListingRepository) List(ctx context.Context, f entity.ListingFilter) ([]entity.Listing, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	q, opts := listingQuery(f)
	cur, err := coll.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	out := []entity.Listing{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ListingRepository) UpdateOwned(ctx context.Context, id primitive.ObjectID, owner string, fields map[string]any) (*entity.Listing, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	l := &entity.Listing{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = coll.FindOneAndUpdate(ctx, ownedFilter(id, owner), bson.M{"$set": bson.M(fields)}, opts).Decode(l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNoMatch
		}
		return nil, err
	}
	return l, nil
}

func (r *ListingRepository) DeleteOwned(ctx context.Context, id primitive.ObjectID, owner string) error {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	res, err := coll.DeleteOne(ctx, ownedFilter(id, owner))
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repository.ErrNoMatch
	}
	return nil
}

func (r *ListingRepository) PushReview(ctx context.Context, id primitive.ObjectID, review entity.Review) (*entity.Listing, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	l := &entity.Listing{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err = coll.FindOneAndUpdate(ctx, bson.M{"_id": id}, bson.M{"$push": bson.M{"reviews": review}}, opts).Decode(l)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return l, nil
}

// ownedFilter matches a listing only when both the id and the owner agree,
// so the ownership check and the write happen in one server-side step.
func ownedFilter(id primitive.ObjectID, owner string) bson.M {
	return bson.M{"_id": id, "email": owner}
}

var _ repository.ListingRepository = (*ListingRepository)(nil)
