package http

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/auth"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/cache"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/config"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/email"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/permission"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/pubsub"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/ratelimit"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/services"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/services/markdown"
)

// ============================================================
// Section 1: Infrastructure - Redis, Repositories, Basic Services
// ============================================================

// initInfrastructure sets up Redis (when enabled), repositories, the query
// cache with its invalidation fan-out, and the auth and permission services.
func (c *Container) initInfrastructure() error {
	cfg := c.cfg
	log := c.log

	if cfg.Redis.Enabled {
		client, err := initRedis(cfg, log)
		if err != nil {
			return err
		}
		c.redis = client
	}

	c.repos = newRepositories(c.db)
	c.txMgr = db.NewTransactionManager(c.db)
	c.renderer = markdown.NewRenderer()

	c.initQueryCache()

	enforcer, err := permission.NewEnforcer(c.db, cfg.Permission.ModelPath, log)
	if err != nil {
		return fmt.Errorf("failed to create permission enforcer: %w", err)
	}
	if err := enforcer.EnsureDefaultPolicies(); err != nil {
		return fmt.Errorf("failed to seed default policies: %w", err)
	}
	c.enforcer = enforcer

	c.jwtSvc = auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	c.hasher = auth.NewBcryptPasswordHasher(cfg.Auth.Password.BcryptCost)
	c.mailer = newMailer(cfg, log)

	return nil
}

// initQueryCache picks the Redis store when Redis is on and the in-process
// store otherwise. Invalidations always reach this instance's SSE clients and
// go through the Redis bus when there is one.
func (c *Container) initQueryCache() {
	cfg := c.cfg
	log := c.log

	c.hub = services.NewInvalidationHub(log.Named("invalidation-hub"), nil)

	var store cache.QueryStore
	publishers := cache.Publishers{c.hub}
	if c.redis != nil {
		store = cache.NewRedisQueryStore(c.redis, cfg.Query.KeyPrefix)
		c.bus = pubsub.NewRedisInvalidationBus(c.redis, cfg.Query.InvalidationChannel, log.Named("invalidation-bus"))
		publishers = append(publishers, c.bus)
	} else {
		store = cache.NewMemoryQueryStore()
	}

	c.queryClient = cache.NewQueryClient(store, cfg.Query.StaleTime(), log.Named("query"))
	c.queryClient.SetPublisher(publishers)
}

// initRedis creates and tests the Redis client connection.
func initRedis(cfg *config.Config, log logger.Interface) (*redis.Client, error) {
	redisClient := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.GetAddr(),
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		_ = redisClient.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	log.Infow("Redis connection established successfully", "addr", cfg.Redis.GetAddr())

	return redisClient, nil
}

// newMailer sends over SMTP when email is enabled and only logs the
// confirmation link otherwise.
func newMailer(cfg *config.Config, log logger.Interface) email.Sender {
	if !cfg.Email.Enabled {
		return email.NewLogSender(cfg.Server.BaseURL, log.Named("mailer"))
	}
	return email.NewSMTPEmailService(email.SMTPConfig{
		Host:        cfg.Email.SMTPHost,
		Port:        cfg.Email.SMTPPort,
		Username:    cfg.Email.SMTPUser,
		Password:    cfg.Email.SMTPPassword,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		BaseURL:     cfg.Server.BaseURL,
	})
}

// ============================================================
// Section 3: Middlewares
// ============================================================

func (c *Container) initMiddlewares() {
	cfg := c.cfg
	log := c.log

	c.authMiddleware = middleware.NewAuthMiddleware(c.jwtSvc, c.ucs.resolveSession, log)
	c.permissionMiddleware = middleware.NewPermissionMiddleware(c.enforcer, log)

	var limiter ratelimit.Limiter
	if c.redis != nil {
		limiter = ratelimit.NewRedisRateLimiter(c.redis, ratelimit.Config{
			Limit:  cfg.Auth.RateLimit.Requests,
			Window: cfg.Auth.RateLimit.Window(),
		})
	}
	c.rateLimiter = middleware.NewRateLimiter(limiter, log)
}
