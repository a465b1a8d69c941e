package provider

import (
	"time"

	"github.com/granit-next/internal/cache"
	"github.com/granit-next/internal/config"
	"github.com/granit-next/internal/constants"
	"github.com/granit-next/internal/logger"
	"github.com/granit-next/internal/models"
	"github.com/granit-next/internal/repository"
	"github.com/granit-next/internal/service"
)

// Container 依赖注入容器
type Container struct {
	Config *config.Config

	// Repositories
	CategoryRepo     repository.CategoryRepository
	ProductRepo      repository.ProductRepository
	CartSnapshotRepo repository.CartSnapshotRepository

	// Services
	CatalogService *service.CatalogService
	PricingService *service.PricingService
	CartService    *service.CartService
}

// NewContainer 初始化容器
func NewContainer(cfg *config.Config) *Container {
	// 初始化缓存
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	c := &Container{Config: cfg}

	// 1. 初始化 Repositories
	c.initRepositories()

	// 2. 初始化 Services
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.CategoryRepo = repository.NewCategoryRepository(db)
	c.ProductRepo = repository.NewProductRepository(db)
	c.CartSnapshotRepo = repository.NewCartSnapshotRepository(db)
}

func (c *Container) initServices() {
	c.PricingService = service.NewPricingService()
	catalog, err := service.NewCatalogService(c.CategoryRepo, c.ProductRepo)
	if err != nil {
		logger.Errorw("provider_load_catalog_failed", "error", err)
		panic(err)
	}
	c.CatalogService = catalog

	c.CartService = service.NewCartService(c.buildCartStore(), c.CatalogService, c.PricingService)
}

// buildCartStore 按配置选择购物车持久化后端，Redis 不可用时退回数据库
func (c *Container) buildCartStore() service.CartStore {
	if c.Config.Cart.Store == constants.CartStoreRedis {
		if cache.Enabled() {
			ttl := time.Duration(c.Config.Cart.SnapshotTTLSeconds) * time.Second
			return service.NewRedisCartStore(cache.Client(), c.Config.Redis.Prefix, ttl)
		}
		logger.Warnw("provider_cart_store_fallback", "from", constants.CartStoreRedis, "to", constants.CartStoreDB)
	}
	return service.NewDBCartStore(c.CartSnapshotRepo)
}
