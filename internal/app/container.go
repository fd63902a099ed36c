package app

import (
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/you/phoneauthsvc/domain"
	"github.com/you/phoneauthsvc/internal/config"
	"github.com/you/phoneauthsvc/internal/infrastructure/auth"
	"github.com/you/phoneauthsvc/internal/infrastructure/database"
	"github.com/you/phoneauthsvc/internal/infrastructure/notifications"
	"github.com/you/phoneauthsvc/internal/infrastructure/repositories"
	"github.com/you/phoneauthsvc/internal/services"
)

// Container holds all dependencies
type Container struct {
	// Config
	Config *config.Config

	// Infrastructure
	DB          *gorm.DB
	RedisClient *redis.Client

	// Repositories
	UserRepo       domain.UserRepository
	ChallengeStore domain.ChallengeStore

	// Services
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	OTPSvc          domain.OTPService
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(cfg *config.Config) (*Container, error) {
	container := &Container{Config: cfg}

	if err := container.initDatabase(); err != nil {
		return nil, err
	}
	container.initRedis()
	container.initRepositories()
	container.initServices()

	return container, nil
}

func (c *Container) initDatabase() error {
	db, err := database.Open(c.Config.DSN)
	if err != nil {
		return err
	}

	if err := database.AutoMigrate(db); err != nil {
		return err
	}

	c.DB = db
	return nil
}

func (c *Container) initRedis() {
	c.RedisClient = database.NewRedis(c.Config.RedisAddr, c.Config.RedisPassword, c.Config.RedisDB).Client
}

func (c *Container) initRepositories() {
	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.ChallengeStore = repositories.NewChallengeStore(c.RedisClient)
}

func (c *Container) initServices() {
	c.TokenSvc = auth.NewJWTService(c.Config.JWTSecret, c.Config.JWTIssuer, c.Config.SessionTTL)
	c.NotificationSvc = notifications.NewTwilioService(
		c.Config.TwilioSID,
		c.Config.TwilioToken,
		c.Config.TwilioFrom,
	)

	c.OTPSvc = services.NewOTPService(c.NotificationSvc, c.ChallengeStore, services.OTPServiceConfig{
		TTL: c.Config.OTPTTL,
	})

	c.AuthSvc = services.NewAuthService(c.UserRepo, c.OTPSvc, c.TokenSvc, c.Config.SessionTTL)
}

// Close closes all connections
func (c *Container) Close() error {
	if c.RedisClient != nil {
		c.RedisClient.Close()
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}
