package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
)

// UserRepository defines the storage operations of the users collection.
type UserRepository interface {
	// CreateIfAbsent inserts u unless a user with u.Email already exists, as
	// one atomic operation. It reports whether u was inserted and sets u.ID
	// when it was.
	CreateIfAbsent(ctx context.Context, u *entity.User) (bool, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	// UpdateByEmail merges fields into the user and returns the result.
	UpdateByEmail(ctx context.Context, email string, fields map[string]any) (*entity.User, error)
	UpdateRole(ctx context.Context, id primitive.ObjectID, role string) (*entity.User, error)
	List(ctx context.Context) ([]entity.User, error)
}
