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

type BookingRepository struct {
	base
}

func NewBookingRepository(conn *Connector, timeout time.Duration) *BookingRepository {
	return &BookingRepository{base: newBase(conn, BookingsCollection, timeout)}
}

func (r *BookingRepository) Create(ctx context.Context, b *entity.Booking) error {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return err
	}
	defer cancel()

	res, err := coll.InsertOne(ctx, b)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		b.ID = id
	}
	return nil
}

func bookingQuery(f entity.BookingFilter) bson.M {
	q := bson.M{}
	if f.UserEmail != "" {
		q["userEmail"] = f.UserEmail
	}
	if f.ProviderEmail != "" {
		q["providerEmail"] = f.ProviderEmail
	}
	return q
}

func (r *BookingRepository) List(ctx context.Context, f entity.BookingFilter) ([]entity.Booking, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cur, err := coll.Find(ctx, bookingQuery(f), options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []entity.Booking{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *BookingRepository) Delete(ctx context.Context, id primitive.ObjectID) (*entity.Booking, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	b := &entity.Booking{}
	if err := coll.FindOneAndDelete(ctx, bson.M{"_id": id}).Decode(b); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return b, nil
}

func (r *BookingRepository) Exists(ctx context.Context, userEmail, serviceID string) (bool, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return false, err
	}
	defer cancel()

	n, err := coll.CountDocuments(ctx,
		bson.M{"userEmail": userEmail, "serviceId": serviceID},
		options.Count().SetLimit(1),
	)
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

var _ repository.BookingRepository = (*BookingRepository)(nil)
