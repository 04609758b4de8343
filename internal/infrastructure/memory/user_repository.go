package memory

import (
	"context"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/domain/repository"
)

type UserRepository struct {
	mu    sync.RWMutex
	users []entity.User
}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) CreateIfAbsent(_ context.Context, u *entity.User) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.indexByEmail(u.Email) >= 0 {
		return false, nil
	}
	u.ID = primitive.NewObjectID()
	r.users = append(r.users, *u)
	return true, nil
}

func (r *UserRepository) GetByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	i := r.indexByEmail(email)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	u := r.users[i]
	return &u, nil
}

func (r *UserRepository) UpdateByEmail(_ context.Context, email string, fields map[string]any) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByEmail(email)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	applyUserFields(&r.users[i], fields)
	u := r.users[i]
	return &u, nil
}

func (r *UserRepository) UpdateRole(_ context.Context, id primitive.ObjectID, role string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	i := r.indexByID(id)
	if i < 0 {
		return nil, repository.ErrNotFound
	}
	r.users[i].Role = role
	r.users[i].UpdatedAt = time.Now().UTC()
	u := r.users[i]
	return &u, nil
}

func (r *UserRepository) List(_ context.Context) ([]entity.User, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entity.User, len(r.users))
	copy(out, r.users)
	return out, nil
}

func (r *UserRepository) indexByEmail(email string) int {
	for i := range r.users {
		if r.users[i].Email == email {
			return i
		}
	}
	return -1
}

func (r *UserRepository) indexByID(id primitive.ObjectID) int {
	for i := range r.users {
		if r.users[i].ID == id {
			return i
		}
	}
	return -1
}

func applyUserFields(u *entity.User, fields map[string]any) {
	for k, v := range fields {
		switch k {
		case "name":
			u.Name, _ = v.(string)
		case "photoURL":
			u.PhotoURL, _ = v.(string)
		case "phone":
			u.Phone, _ = v.(string)
		case "address":
			u.Address, _ = v.(string)
		case "updatedAt":
			u.UpdatedAt, _ = v.(time.Time)
		}
	}
}
