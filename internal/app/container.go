package app

import (
	"context"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/vaibhavpawarsdet/Developer-Space-LMS/domain"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/config"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/infrastructure/assets"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/infrastructure/auth"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/infrastructure/database"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/infrastructure/notifications"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/infrastructure/repositories"
	"github.com/vaibhavpawarsdet/Developer-Space-LMS/internal/services"
)

// Container holds all dependencies. Everything is constructed explicitly at
// startup so tests can substitute any collaborator.
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redis.Client

	UserRepo     domain.UserRepository
	SessionCache domain.SessionCache

	PasswordSvc     domain.PasswordService
	TokenSvc        domain.TokenService
	NotificationSvc domain.NotificationService
	AssetStore      domain.AssetStore
	Guard           domain.ActivationGuard
	AuthSvc         domain.AuthService
}

// NewContainer creates and initializes all dependencies
func NewContainer(ctx context.Context, cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	gdb, err := database.Open(cfg.DSN)
	if err != nil {
		return nil, err
	}
	if err := database.AutoMigrate(gdb); err != nil {
		return nil, err
	}
	c.DB = gdb

	c.RedisClient = database.NewRedis(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	if err := database.Ping(ctx, c.RedisClient); err != nil {
		return nil, err
	}

	c.UserRepo = repositories.NewUserRepository(c.DB)
	c.SessionCache = repositories.NewSessionCache(c.RedisClient)

	c.PasswordSvc = auth.NewPasswordService()
	c.TokenSvc = auth.NewJWTService(
		cfg.ActivationSecret,
		cfg.AccessSecret,
		cfg.RefreshSecret,
		cfg.ActivationTTL,
		cfg.AccessTTL,
		cfg.RefreshTTL,
	)

	c.NotificationSvc, err = notifications.NewSMTPService(
		cfg.SMTPHost,
		cfg.SMTPPort,
		cfg.SMTPFrom,
		cfg.SMTPUsername,
		cfg.SMTPPassword,
	)
	if err != nil {
		return nil, err
	}

	c.AssetStore, err = assets.NewS3Store(ctx, assets.S3Config{
		Region:        cfg.S3Region,
		Bucket:        cfg.S3Bucket,
		Endpoint:      cfg.S3Endpoint,
		PublicBaseURL: cfg.S3PublicBaseURL,
		AccessKey:     cfg.S3AccessKey,
		SecretKey:     cfg.S3SecretKey,
	})
	if err != nil {
		return nil, err
	}

	c.Guard = services.NewActivationGuard(c.RedisClient, services.ActivationGuardConfig{
		ResendWindow: cfg.ActivationResendWindow,
		MaxAttempts:  cfg.ActivationMaxAttempts,
		AttemptTTL:   cfg.ActivationTTL,
	})

	c.AuthSvc = services.NewAuthService(
		c.UserRepo,
		c.SessionCache,
		c.PasswordSvc,
		c.TokenSvc,
		c.NotificationSvc,
		c.AssetStore,
		c.Guard,
	)

	return c, nil
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
