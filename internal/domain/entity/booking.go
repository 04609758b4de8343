package entity

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking records a customer's request for a listing. ServiceID references
// a Listing id but is stored as given and never resolved.
type Booking struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserEmail     string             `bson:"userEmail" json:"userEmail"`
	ServiceID     string             `bson:"serviceId" json:"serviceId"`
	ServiceName   string             `bson:"serviceName,omitempty" json:"serviceName,omitempty"`
	ProviderEmail string             `bson:"providerEmail,omitempty" json:"providerEmail,omitempty"`
	Price         float64            `bson:"price,omitempty" json:"price,omitempty"`
	BookingDate   string             `bson:"bookingDate,omitempty" json:"bookingDate,omitempty"`
	Address       string             `bson:"address,omitempty" json:"address,omitempty"`
	Instruction   string             `bson:"instruction,omitempty" json:"instruction,omitempty"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
}

type BookingFilter struct {
	UserEmail     string
	ProviderEmail string
}

func (f BookingFilter) Match(b *Booking) bool {
	if f.UserEmail != "" && b.UserEmail != f.UserEmail {
		return false
	}
	if f.ProviderEmail != "" && b.ProviderEmail != f.ProviderEmail {
		return false
	}
	return true
}
