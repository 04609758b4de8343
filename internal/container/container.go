package container

import (
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/oksasatya/home-hero-api/config"
	repo "github.com/oksasatya/home-hero-api/internal/domain/repository"
	"github.com/oksasatya/home-hero-api/internal/infrastructure/memory"
	"github.com/oksasatya/home-hero-api/internal/infrastructure/mongodb"
	"github.com/oksasatya/home-hero-api/pkg/helpers"
)

// app-level container to share constructed components across packages.
// The router auto-wires modules from these singletons.

// Repositories is the storage capability handed to every component. All of
// them sit on the same underlying connection.
type Repositories struct {
	Users        repo.UserRepository
	Listings     repo.ListingRepository
	Bookings     repo.BookingRepository
	Testimonials repo.TestimonialRepository
}

// MongoRepositories builds the repositories on one lazy connector.
func MongoRepositories(conn *mongodb.Connector, timeout time.Duration) Repositories {
	return Repositories{
		Users:        mongodb.NewUserRepository(conn, timeout),
		Listings:     mongodb.NewListingRepository(conn, timeout),
		Bookings:     mongodb.NewBookingRepository(conn, timeout),
		Testimonials: mongodb.NewTestimonialRepository(conn, timeout),
	}
}

// MemoryRepositories builds the repositories on a fresh in-process store.
func MemoryRepositories() Repositories {
	s := memory.NewStore()
	return Repositories{Users: s.Users, Listings: s.Listings, Bookings: s.Bookings, Testimonials: s.Testimonials}
}

var (
	cfg         *config.Config
	logger      *logrus.Logger
	repos       Repositories
	redisClient *redis.Client
	gcsBucket   *helpers.GCSBucket
	rabbitPub   *helpers.RabbitPublisher
	esClient    *elasticsearch.Client
)

func SetConfig(c *config.Config)              { cfg = c }
func GetConfig() *config.Config               { return cfg }
func SetLogger(l *logrus.Logger)              { logger = l }
func GetLogger() *logrus.Logger               { return logger }
func SetRepositories(r Repositories)          { repos = r }
func GetRepositories() Repositories           { return repos }
func SetRedis(r *redis.Client)                { redisClient = r }
func GetRedis() *redis.Client                 { return redisClient }
func SetGCSBucket(b *helpers.GCSBucket)       { gcsBucket = b }
func GetGCSBucket() *helpers.GCSBucket        { return gcsBucket }
func SetRabbitPub(p *helpers.RabbitPublisher) { rabbitPub = p }
func GetRabbitPub() *helpers.RabbitPublisher  { return rabbitPub }
func SetES(c *elasticsearch.Client)           { esClient = c }
func GetES() *elasticsearch.Client            { return esClient }
