package app

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/you/homestay/domain"
	"github.com/you/homestay/internal/config"
	"github.com/you/homestay/internal/infrastructure/audit"
	"github.com/you/homestay/internal/infrastructure/auth"
	"github.com/you/homestay/internal/infrastructure/repositories"
	"github.com/you/homestay/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	Logger *logrus.Logger
	Audit  domain.AuditLogger

	// Repositories
	UserRepo       domain.UserRepository
	HomestayRepo   domain.HomestayRepository
	AttractionRepo domain.AttractionRepository
	TourRepo       domain.TourRepository
	BookingRepo    domain.BookingRepository

	// Services
	PasswordSvc domain.PasswordService
	SessionSvc  domain.SessionService
	DemoSvc     domain.DemoSelector
	PolicySvc   domain.PolicyService
	RouterSvc   domain.ViewRouter
	BookingSvc  domain.BookingService
}

// NewContainer creates and initializes all dependencies, seeding the mock
// collections.
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	container.initLogger()

	if err := container.initRepositories(ctx); err != nil {
		return nil, err
	}
	if err := container.initServices(); err != nil {
		return nil, err
	}

	return container, nil
}

func (c *Container) initLogger() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(c.Config.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)

	c.Logger = log
	c.Audit = audit.NewLogrusAuditLogger(log)
}

func (c *Container) initRepositories(ctx context.Context) error {
	c.PasswordSvc = auth.NewPasswordService(c.Config.BcryptCost)

	userRepo := repositories.NewMemoryUserRepository()
	if err := repositories.SeedUsers(ctx, userRepo, c.PasswordSvc); err != nil {
		return err
	}

	c.UserRepo = userRepo
	c.HomestayRepo = repositories.NewMemoryHomestayRepository(repositories.SeedHomestays())
	c.AttractionRepo = repositories.NewMemoryAttractionRepository(repositories.SeedAttractions())
	c.TourRepo = repositories.NewMemoryTourRepository(repositories.SeedTours())
	c.BookingRepo = repositories.NewMemoryBookingRepository(repositories.SeedBookings())
	return nil
}

func (c *Container) initServices() error {
	policySvc, err := services.NewPolicyService()
	if err != nil {
		return err
	}
	c.PolicySvc = policySvc

	c.SessionSvc = services.NewSessionService(c.UserRepo, c.PasswordSvc, c.Audit, c.Config.AuthLatency)
	c.DemoSvc = services.NewDemoSelector(repositories.DemoProfiles(), c.Audit)
	c.RouterSvc = services.NewViewRouter(c.PolicySvc, c.Audit)
	c.BookingSvc = services.NewBookingService(c.HomestayRepo, c.BookingRepo, c.Audit)
	return nil
}
