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

type UserRepository struct {
	base
}

func NewUserRepository(conn *Connector, timeout time.Duration) *UserRepository {
	return &UserRepository{base: newBase(conn, UsersCollection, timeout)}
}

func (r *UserRepository) CreateIfAbsent(ctx context.Context, u *entity.User) (bool, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return false, err
	}
	defer cancel()

	res, err := coll.UpdateOne(ctx,
		bson.M{"email": u.Email},
		bson.M{"$setOnInsert": u},
		options.Update().SetUpsert(true),
	)
	if err != nil {
		// Two concurrent upserts can both miss the filter; the unique index
		// rejects the loser, which means the account exists.
		if mongo.IsDuplicateKeyError(err) {
			return false, nil
		}
		return false, err
	}
	if res.UpsertedID == nil {
		return false, nil
	}
	if id, ok := res.UpsertedID.(primitive.ObjectID); ok {
		u.ID = id
	}
	return true, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	return r.findOne(ctx, bson.M{"email": email})
}

func (r *UserRepository) findOne(ctx context.Context, filter bson.M) (*entity.User, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	u := &entity.User{}
	if err := coll.FindOne(ctx, filter).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) UpdateByEmail(ctx context.Context, email string, fields map[string]any) (*entity.User, error) {
	return r.findOneAndSet(ctx, bson.M{"email": email}, fields)
}

func (r *UserRepository) UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*entity.User, error) {
	return r.findOneAndSet(ctx, bson.M{"_id": id}, map[string]any{"role": role, "updatedAt": time.Now().UTC()})
}

func (r *UserRepository) findOneAndSet(ctx context.Context, filter bson.M, fields map[string]any) (*entity.User, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	u := &entity.User{}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	if err := coll.FindOneAndUpdate(ctx, filter, bson.M{"$set": bson.M(fields)}, opts).Decode(u); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}
	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]entity.User, error) {
	coll, ctx, cancel, err := r.collection(ctx)
	if err != nil {
		return nil, err
	}
	defer cancel()

	cur, err := coll.Find(ctx, bson.M{}, options.Find().SetSort(bson.D{{Key: "_id", Value: 1}}))
	if err != nil {
		return nil, err
	}
	out := []entity.User{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

var _ repository.UserRepository = (*UserRepository)(nil)
