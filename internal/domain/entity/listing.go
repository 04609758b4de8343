package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Listing is a service offering published by a provider. Email identifies
// the owner and is only ever compared, never patched.
type Listing struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	ServiceName  string             `bson:"serviceName" json:"serviceName"`
	Category     string             `bson:"category,omitempty" json:"category,omitempty"`
	Description  string             `bson:"description,omitempty" json:"description,omitempty"`
	Image        string             `bson:"image,omitempty" json:"image,omitempty"`
	ProviderName string             `bson:"providerName,omitempty" json:"providerName,omitempty"`
	Area         string             `bson:"area,omitempty" json:"area,omitempty"`
	Price        float64            `bson:"price" json:"price"`
	Reviews      []Review           `bson:"reviews" json:"reviews"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt,omitempty" json:"updatedAt,omitempty"`
}

// Review is a customer rating embedded in a Listing. Reviews are append-only.
type Review struct {
	UserEmail string    `bson:"userEmail" json:"userEmail"`
	Rating    float64   `bson:"rating" json:"rating"`
	Comment   string    `bson:"comment,omitempty" json:"comment,omitempty"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// OwnedBy reports whether email identifies the listing's provider.
func (l *Listing) OwnedBy(email string) bool {
	return l != nil && SameEmail(l.Email, email)
}

// AverageRating is the mean of all review ratings, or 0 without reviews.
func (l *Listing) AverageRating() float64 {
	if l == nil || len(l.Reviews) == 0 {
		return 0
	}
	var sum float64
	for _, r := range l.Reviews {
		sum += r.Rating
	}
	return sum / float64(len(l.Reviews))
}

// ListingPatch is the allow-list of fields an owner may change.
type ListingPatch struct {
	ServiceName  *string
	Category     *string
	Description  *string
	Image        *string
	ProviderName *string
	Area         *string
	Price        *float64
}

// Fields returns the set fields keyed by their stored names.
func (p ListingPatch) Fields() map[string]any {
	out := map[string]any{}
	setString(out, "serviceName", p.ServiceName)
	setString(out, "category", p.Category)
	setString(out, "description", p.Description)
	setString(out, "image", p.Image)
	setString(out, "providerName", p.ProviderName)
	setString(out, "area", p.Area)
	if p.Price != nil {
		out["price"] = *p.Price
	}
	return out
}

// ListingFilter constrains a listing query. Nil price bounds are unbounded;
// both bounds are inclusive.
type ListingFilter struct {
	Email    string
	MinPrice *float64
	MaxPrice *float64
	Limit    int64
}

// ProviderScoped queries are ordered newest-first.
func (f ListingFilter) ProviderScoped() bool { return f.Email != "" }

func (f ListingFilter) IsEmpty() bool {
	return f.Email == "" && f.MinPrice == nil && f.MaxPrice == nil
}

// Match reports whether l satisfies the filter.
func (f ListingFilter) Match(l *Listing) bool {
	if f.Email != "" && l.Email != f.Email {
		return false
	}
	if f.MinPrice != nil && l.Price < *f.MinPrice {
		return false
	}
	if f.MaxPrice != nil && l.Price > *f.MaxPrice {
		return false
	}
	return true
}
