package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// ValidRole reports whether r is one of the roles the registry understands.
func ValidRole(r string) bool {
	return r == RoleUser || r == RoleAdmin
}

// User is an account in the marketplace. Email is the identity key and is
// always stored normalized; at most one User exists per email.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email     string             `bson:"email" json:"email"`
	Name      string             `bson:"name,omitempty" json:"name,omitempty"`
	PhotoURL  string             `bson:"photoURL,omitempty" json:"photoURL,omitempty"`
	Phone     string             `bson:"phone,omitempty" json:"phone,omitempty"`
	Address   string             `bson:"address,omitempty" json:"address,omitempty"`
	Role      string             `bson:"role" json:"role"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

func (u *User) IsAdmin() bool { return u != nil && u.Role == RoleAdmin }

// UserPatch lists the profile fields that may be merged into an existing
// account. Identity (email), role and timestamps are not part of it.
type UserPatch struct {
	Name     *string
	PhotoURL *string
	Phone    *string
	Address  *string
}

// Fields returns the set fields keyed by their stored names.
func (p UserPatch) Fields() map[string]any {
	out := map[string]any{}
	setString(out, "name", p.Name)
	setString(out, "photoURL", p.PhotoURL)
	setString(out, "phone", p.Phone)
	setString(out, "address", p.Address)
	return out
}

func setString(m map[string]any, key string, v *string) {
	if v != nil {
		m[key] = *v
	}
}
