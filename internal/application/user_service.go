package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
)

// UserService is the identity registry: one account per normalized email,
// plus admin-only role administration.
type UserService struct {
	Repo   repo.UserRepository
	Logger *logrus.Logger
	Now    func() time.Time
}

func NewUserService(r repo.UserRepository, logger *logrus.Logger) *UserService {
	return &UserService{Repo: r, Logger: logger, Now: func() time.Time { return time.Now().UTC() }}
}

type RegisterInput struct {
	Email    string
	Name     string
	PhotoURL string
	Phone    string
	Address  string
}

// Register creates the account for in.Email unless one already exists. New
// accounts always start as plain users; promotion goes through SetRole. The
// second return value is false when an account was already present; that
// case is a no-op, not an error.
func (s *UserService) Register(ctx context.Context, in RegisterInput) (*entity.User, bool, error) {
	email, err := requireEmail(in.Email, "email")
	if err != nil {
		return nil, false, err
	}

	u := &entity.User{
		Email:     email,
		Name:      strings.TrimSpace(in.Name),
		PhotoURL:  strings.TrimSpace(in.PhotoURL),
		Phone:     strings.TrimSpace(in.Phone),
		Address:   strings.TrimSpace(in.Address),
		Role:      entity.RoleUser,
		CreatedAt: s.Now(),
	}
	created, err := s.Repo.CreateIfAbsent(ctx, u)
	if err != nil {
		return nil, false, storeError("register user", err)
	}
	if !created {
		return nil, false, nil
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "role": u.Role}).Info("user registered")
	}
	return u, true, nil
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, validationError("email is required")
	}
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("get user", err)
	}
	return u, nil
}

// UpdateByEmail merges the patch into the account and returns the result.
func (s *UserService) UpdateByEmail(ctx context.Context, email string, patch entity.UserPatch) (*entity.User, error) {
	email = entity.NormalizeEmail(email)
	if email == "" {
		return nil, validationError("email is required")
	}
	fields := patch.Fields()
	if len(fields) == 0 {
		return nil, validationError("no updatable fields supplied")
	}
	fields["updatedAt"] = s.Now()

	u, err := s.Repo.UpdateByEmail(ctx, email, fields)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("update user", err)
	}
	return u, nil
}

// ListAll returns every account. Only admins may call it.
func (s *UserService) ListAll(ctx context.Context, callerEmail string) ([]entity.User, error) {
	if err := s.requireAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}
	users, err := s.Repo.List(ctx)
	if err != nil {
		return nil, storeError("list users", err)
	}
	return users, nil
}

// SetRole changes the role of the user with targetID. Only admins may call it.
func (s *UserService) SetRole(ctx context.Context, targetID, role, callerEmail string) (*entity.User, error) {
	id, err := parseID(targetID, "user")
	if err != nil {
		return nil, err
	}
	role = strings.TrimSpace(role)
	if !entity.ValidRole(role) {
		return nil, validationError("role must be %q or %q", entity.RoleUser, entity.RoleAdmin)
	}
	if err := s.requireAdmin(ctx, callerEmail); err != nil {
		return nil, err
	}

	u, err := s.Repo.UpdateRole(ctx, id, role)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, storeError("set role", err)
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID.Hex(), "role": role}).Info("user role changed")
	}
	return u, nil
}

// requireAdmin resolves the caller's account. A missing or unknown caller is
// treated the same as a non-admin one.
func (s *UserService) requireAdmin(ctx context.Context, callerEmail string) error {
	email := entity.NormalizeEmail(callerEmail)
	if email == "" {
		return ErrNotAdmin
	}
	caller, err := s.Repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return ErrNotAdmin
		}
		return storeError("resolve caller", err)
	}
	if !caller.IsAdmin() {
		return ErrNotAdmin
	}
	return nil
}
