package application

import (
	"context"
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/oksasatya/home-hero-api/internal/domain/entity"
	"github.com/oksasatya/home-hero-api/internal/infrastructure/memory"
)

func newUserService() *UserService {
	return NewUserService(memory.NewUserRepository(), nil)
}

// registerAdmin registers email and promotes it straight through the store,
// the same way the seed command bootstraps the first admin.
func registerAdmin(c *qt.C, svc *UserService, email string) *entity.User {
	u, created, err := svc.Register(context.Background(), RegisterInput{Email: email})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)
	c.Assert(u.Role, qt.Equals, entity.RoleUser)
	u, err = svc.Repo.UpdateRole(context.Background(), u.ID, entity.RoleAdmin)
	c.Assert(err, qt.IsNil)
	return u
}

func TestRegisterIsIdempotentByEmail(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := newUserService()

	u, created, err := svc.Register(ctx, RegisterInput{Email: " Jane@Example.com ", Name: "Jane"})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsTrue)
	c.Assert(u.Email, qt.Equals, "jane@example.com")
	c.Assert(u.Role, qt.Equals, entity.RoleUser)

	_, created, err = svc.Register(ctx, RegisterInput{Email: "jane@example.com", Name: "Other"})
	c.Assert(err, qt.IsNil)
	c.Assert(created, qt.IsFalse)

	got, err := svc.GetByEmail(ctx, "JANE@example.com")
	c.Assert(err, qt.IsNil)
	c.Assert(got.Name, qt.Equals, "Jane")
}

func TestRegisterConcurrentSameEmail(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := newUserService()

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		created int
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, ok, err := svc.Register(ctx, RegisterInput{Email: "race@x.io"})
			if err == nil && ok {
				mu.Lock()
				created++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	c.Assert(created, qt.Equals, 1)
}

func TestRegisterValidation(t *testing.T) {
	c := qt.New(t)
	svc := newUserService()
	for _, email := range []string{"  ", "jane", "jane@", "@x.io", "ja ne@x.io", " <jane@x.io>"} {
		_, _, err := svc.Register(context.Background(), RegisterInput{Email: email})
		c.Assert(KindOf(err), qt.Equals, KindValidation, qt.Commentf("email %q", email))
	}
	users, err := svc.Repo.List(context.Background())
	c.Assert(err, qt.IsNil)
	c.Assert(users, qt.HasLen, 0)
}

func TestGetByEmailNotFound(t *testing.T) {
	c := qt.New(t)
	_, err := newUserService().GetByEmail(context.Background(), "nobody@x.io")
	c.Assert(err, qt.Equals, ErrUserNotFound)
}

func TestUpdateByEmailMergesProfile(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := newUserService()
	_, _, err := svc.Register(ctx, RegisterInput{Email: "a@x.io", Name: "A", Phone: "1"})
	c.Assert(err, qt.IsNil)

	u, err := svc.UpdateByEmail(ctx, "A@x.io", entity.UserPatch{Address: ptr("Road 1")})
	c.Assert(err, qt.IsNil)
	c.Assert(u.Name, qt.Equals, "A")
	c.Assert(u.Phone, qt.Equals, "1")
	c.Assert(u.Address, qt.Equals, "Road 1")
	c.Assert(u.Role, qt.Equals, entity.RoleUser)

	_, err = svc.UpdateByEmail(ctx, "a@x.io", entity.UserPatch{})
	c.Assert(KindOf(err), qt.Equals, KindValidation)
	_, err = svc.UpdateByEmail(ctx, "ghost@x.io", entity.UserPatch{Name: ptr("G")})
	c.Assert(err, qt.Equals, ErrUserNotFound)
}

func TestAdminGating(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := newUserService()
	registerAdmin(c, svc, "boss@x.io")
	plain, _, err := svc.Register(ctx, RegisterInput{Email: "joe@x.io"})
	c.Assert(err, qt.IsNil)

	for _, caller := range []string{"", "joe@x.io", "stranger@x.io"} {
		_, err := svc.ListAll(ctx, caller)
		c.Assert(err, qt.Equals, ErrNotAdmin, qt.Commentf("caller %q", caller))
		_, err = svc.SetRole(ctx, plain.ID.Hex(), entity.RoleAdmin, caller)
		c.Assert(err, qt.Equals, ErrNotAdmin, qt.Commentf("caller %q", caller))
	}

	users, err := svc.ListAll(ctx, "BOSS@x.io")
	c.Assert(err, qt.IsNil)
	c.Assert(users, qt.HasLen, 2)

	u, err := svc.SetRole(ctx, plain.ID.Hex(), entity.RoleAdmin, "boss@x.io")
	c.Assert(err, qt.IsNil)
	c.Assert(u.Role, qt.Equals, entity.RoleAdmin)
}

func TestSetRoleInputErrors(t *testing.T) {
	c := qt.New(t)
	ctx := context.Background()
	svc := newUserService()
	registerAdmin(c, svc, "boss@x.io")

	_, err := svc.SetRole(ctx, "not-an-id", entity.RoleUser, "boss@x.io")
	c.Assert(KindOf(err), qt.Equals, KindValidation)
	_, err = svc.SetRole(ctx, "507f1f77bcf86cd799439011", "owner", "boss@x.io")
	c.Assert(KindOf(err), qt.Equals, KindValidation)
	_, err = svc.SetRole(ctx, "507f1f77bcf86cd799439011", entity.RoleUser, "boss@x.io")
	c.Assert(err, qt.Equals, ErrUserNotFound)
}
