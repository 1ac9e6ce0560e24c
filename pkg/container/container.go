package container

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"boighor-backend/internal/config"
	bookhandler "boighor-backend/internal/domains/book/handler"
	bookrepo "boighor-backend/internal/domains/book/repository"
	bookservice "boighor-backend/internal/domains/book/service"
	categoryhandler "boighor-backend/internal/domains/category/handler"
	categoryrepo "boighor-backend/internal/domains/category/repository"
	categoryservice "boighor-backend/internal/domains/category/service"
	shophandler "boighor-backend/internal/domains/shop/handler"
	shoprepo "boighor-backend/internal/domains/shop/repository"
	shopservice "boighor-backend/internal/domains/shop/service"
	userhandler "boighor-backend/internal/domains/user/handler"
	userrepo "boighor-backend/internal/domains/user/repository"
	userservice "boighor-backend/internal/domains/user/service"
	infracache "boighor-backend/internal/infrastructure/cache"
	"boighor-backend/internal/infrastructure/database"
	"boighor-backend/internal/shared/authz"
	"boighor-backend/internal/shared/revalidate"
	"boighor-backend/pkg/cache"
)

// Container is the root of the dependency graph. Everything in it is a
// singleton built once at startup, in dependency order: config,
// infrastructure, repositories, services, handlers.
type Container struct {
	Config      *config.Config
	DB          *database.PostgresDB
	Cache       cache.Cache
	Revalidator revalidate.Revalidator
	Authorizer  *authz.Authorizer

	ShopRepo     shoprepo.Repository
	CategoryRepo categoryrepo.Repository
	BookRepo     bookrepo.Repository
	UserRepo     userrepo.Repository

	ShopService     shopservice.Service
	CategoryService categoryservice.Service
	BookService     bookservice.Service
	UserService     userservice.Service

	ShopHandler     *shophandler.ShopHandler
	CategoryHandler *categoryhandler.CategoryHandler
	BookHandler     *bookhandler.BookHandler
	UserHandler     *userhandler.UserHandler

	redisCache *infracache.RedisCache
}

func NewContainer() (*Container, error) {
	c := &Container{}

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db := database.NewPostgresDB(cfg.Database)
	if err := db.Connect(ctx); err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	c.DB = db

	redisCache := infracache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)
	if err := redisCache.Connect(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.redisCache = redisCache
	c.Cache = redisCache

	c.Revalidator = revalidate.New(c.Cache)
	c.Authorizer = authz.NewAuthorizer(authz.NewPostgresResolver(db.Pool))

	c.ShopRepo = shoprepo.NewPostgresRepository(db.Pool)
	c.CategoryRepo = categoryrepo.NewPostgresRepository(db.Pool)
	c.BookRepo = bookrepo.NewPostgresRepository(db.Pool)
	c.UserRepo = userrepo.NewPostgresRepository(db.Pool)

	c.ShopService = shopservice.NewService(c.ShopRepo, c.BookRepo, c.CategoryRepo, c.Cache, c.Revalidator)
	c.CategoryService = categoryservice.NewService(c.CategoryRepo)
	c.BookService = bookservice.NewService(c.BookRepo, c.CategoryRepo, c.Authorizer, c.Revalidator)
	c.UserService = userservice.NewService(c.UserRepo, c.ShopRepo)

	c.ShopHandler = shophandler.NewShopHandler(c.ShopService)
	c.CategoryHandler = categoryhandler.NewCategoryHandler(c.CategoryService)
	c.BookHandler = bookhandler.NewBookHandler(c.BookService)
	c.UserHandler = userhandler.NewUserHandler(c.UserService)

	log.Info().Str("environment", cfg.App.Environment).Msg("container initialized")
	return c, nil
}

// Cleanup releases infrastructure connections. Safe to call once on
// shutdown.
func (c *Container) Cleanup() {
	if c.redisCache != nil {
		if err := c.redisCache.Close(); err != nil {
			log.Error().Err(err).Msg("redis close failed")
		}
	}
	if c.DB != nil {
		c.DB.Close()
	}
}
