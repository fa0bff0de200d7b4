package http

import (
	"context"
	"errors"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/appmaster-hq/appmaster/internal/infrastructure/auth"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/cache"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/config"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/email"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/permission"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/pubsub"
	"github.com/appmaster-hq/appmaster/internal/infrastructure/services"
	"github.com/appmaster-hq/appmaster/internal/interfaces/http/middleware"
	"github.com/appmaster-hq/appmaster/internal/shared/db"
	"github.com/appmaster-hq/appmaster/internal/shared/goroutine"
	"github.com/appmaster-hq/appmaster/internal/shared/logger"
	"github.com/appmaster-hq/appmaster/internal/shared/query"
	"github.com/appmaster-hq/appmaster/internal/shared/services/markdown"
)

// Container holds the infrastructure components, repositories, use cases and
// handlers, wires them together and tears them down on Shutdown.
type Container struct {
	// Core infrastructure
	engine *gin.Engine
	db     *gorm.DB
	cfg    *config.Config
	log    logger.Interface
	redis  *redis.Client

	repos *repositories
	ucs   *allUseCases
	hdlrs *allHandlers

	// Middlewares
	authMiddleware       *middleware.AuthMiddleware
	permissionMiddleware *middleware.PermissionMiddleware
	rateLimiter          *middleware.RateLimiter

	// Services shared across sections
	jwtSvc      *auth.JWTService
	hasher      *auth.BcryptPasswordHasher
	mailer      email.Sender
	enforcer    *permission.Enforcer
	renderer    markdown.Renderer
	txMgr       *db.TransactionManager
	queryClient *cache.QueryClient

	// Invalidation fan-out: the bus relays between instances, the hub pushes
	// to browsers of this instance.
	hub          *services.InvalidationHub
	bus          *pubsub.RedisInvalidationBus
	busCancel    context.CancelFunc
	busCancelMu  sync.Mutex
	shutdownOnce sync.Once
}

// NewContainer creates a Container with all dependencies wired together.
func NewContainer(gdb *gorm.DB, cfg *config.Config, log logger.Interface) (*Container, error) {
	c := &Container{
		engine: gin.New(),
		db:     gdb,
		cfg:    cfg,
		log:    log,
	}

	// Section 1: Infrastructure - Redis, repositories, query cache, auth services
	if err := c.initInfrastructure(); err != nil {
		return nil, err
	}

	// Section 2: Use cases
	c.ucs = c.newUseCases()

	// Section 3: Middlewares that depend on use cases
	c.initMiddlewares()

	// Section 4: Handlers
	c.hdlrs = c.newHandlers()

	return c, nil
}

// StartBackground subscribes to invalidations published by other instances.
// It is a no-op without Redis.
func (c *Container) StartBackground(ctx context.Context) {
	if c.bus == nil {
		return
	}

	busCtx, cancel := context.WithCancel(ctx)
	c.busCancelMu.Lock()
	c.busCancel = cancel
	c.busCancelMu.Unlock()

	goroutine.SafeGo(c.log, "invalidation-subscriber", func() {
		err := c.bus.Subscribe(busCtx, func(ctx context.Context, keys []query.Key) {
			c.queryClient.ApplyRemoteInvalidation(ctx, keys)
			c.hub.Broadcast(keys)
		})
		logSubscriberExit(c.log, "invalidation subscriber", err)
	})
}

// Shutdown stops background work and closes the event streams. Safe to call
// more than once.
func (c *Container) Shutdown() {
	c.shutdownOnce.Do(func() {
		c.busCancelMu.Lock()
		if c.busCancel != nil {
			c.busCancel()
		}
		c.busCancelMu.Unlock()

		if c.hub != nil {
			c.hub.Shutdown()
		}

		if c.redis != nil {
			if err := c.redis.Close(); err != nil {
				c.log.Warnw("failed to close redis client", "error", err)
			}
		}
	})
}

// logSubscriberExit logs cancellation during shutdown at INFO and anything
// else at ERROR.
func logSubscriberExit(log logger.Interface, name string, err error) {
	if err == nil || errors.Is(err, context.Canceled) {
		log.Infow(name+" stopped", "reason", "context canceled")
		return
	}
	log.Errorw(name+" failed", "error", err)
}
