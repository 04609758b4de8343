package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	UsersCollection        = "users"
	ServicesCollection     = "services"
	BookingsCollection     = "bookings"
	TestimonialsCollection = "testimonials"
)

const defaultOpTimeout = 5 * time.Second

// base is embedded by every repository: it resolves the collection through
// the shared connector and bounds each store call with a timeout.
type base struct {
	conn    *Connector
	name    string
	timeout time.Duration
}

func newBase(conn *Connector, name string, timeout time.Duration) base {
	if timeout <= 0 {
		timeout = defaultOpTimeout
	}
	return base{conn: conn, name: name, timeout: timeout}
}

func (b base) collection(ctx context.Context) (*mongo.Collection, context.Context, context.CancelFunc, error) {
	ctx, cancel := context.WithTimeout(ctx, b.timeout)
	coll, err := b.conn.Collection(ctx, b.name)
	if err != nil {
		cancel()
		return nil, nil, nil, err
	}
	return coll, ctx, cancel, nil
}

// EnsureIndexes creates the indexes the repositories rely on. The unique
// email index backs the one-account-per-email rule.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if _, err := db.Collection(UsersCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true).SetName("users_email_unique"),
	}); err != nil {
		return err
	}
	if _, err := db.Collection(ServicesCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}, Options: options.Index().SetName("services_owner")},
		{Keys: bson.D{{Key: "price", Value: 1}}, Options: options.Index().SetName("services_price")},
	}); err != nil {
		return err
	}
	_, err := db.Collection(BookingsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "userEmail", Value: 1}, {Key: "serviceId", Value: 1}}, Options: options.Index().SetName("bookings_user_service")},
		{Keys: bson.D{{Key: "providerEmail", Value: 1}}, Options: options.Index().SetName("bookings_provider")},
	})
	return err
}
