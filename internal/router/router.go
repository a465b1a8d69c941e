package router

import (
	"fmt"
	"strings"

	"github.com/granit-next/internal/cache"
	"github.com/granit-next/internal/config"
	"github.com/granit-next/internal/constants"
	publichandlers "github.com/granit-next/internal/http/handlers/public"
	"github.com/granit-next/internal/logger"
	"github.com/granit-next/internal/provider"

	"github.com/gin-gonic/gin"
)

// SetupRouter 初始化路由
func SetupRouter(cfg *config.Config, c *provider.Container) *gin.Engine {
	log := logger.L
	if log == nil {
		log = logger.Init(cfg.Server.Mode, cfg.Log.ToLoggerOptions())
	}
	r := gin.New()

	publicHandler := publichandlers.New(c)

	redisPrefix := strings.TrimSpace(cfg.Redis.Prefix)
	if redisPrefix == "" {
		redisPrefix = constants.RedisPrefixDefault
	}
	redisClient := cache.Client()
	writeRule := RateLimitRule{
		Prefix:        fmt.Sprintf("%s:rate:cart_write", redisPrefix),
		WindowSeconds: cfg.Security.WriteRateLimit.WindowSeconds,
		MaxRequests:   cfg.Security.WriteRateLimit.MaxRequests,
	}

	// 中间件
	r.Use(gin.Recovery())
	r.Use(RequestIDMiddleware())
	r.Use(LoggerMiddleware(log))
	r.Use(CORSMiddleware(cfg.CORS))

	// 静态文件服务（商品图片）
	r.Static("/uploads", "./uploads")

	// API 路由组
	apiV1 := r.Group("/api/v1")
	{
		// 公开目录接口
		public := apiV1.Group("/public")
		{
			public.GET("/categories", publicHandler.GetCategories)
			public.GET("/products", publicHandler.GetProducts)
			public.GET("/products/:id", publicHandler.GetProductByID)
			public.GET("/product/:slug", publicHandler.GetProductBySlug)
			public.POST("/products/:id/price", publicHandler.QuotePrice)
		}

		// 购物车接口（会话 Cookie 标识，写接口限流）
		cart := apiV1.Group("/cart")
		{
			cart.GET("", publicHandler.GetCart)
			writes := cart.Group("")
			writes.Use(RateLimitMiddleware(redisClient, writeRule, KeyByIP))
			{
				writes.POST("/items", publicHandler.AddCartItem)
				writes.POST("/quick-add", publicHandler.QuickAddCartItem)
				writes.PUT("/items/:identity", publicHandler.UpdateCartItemQuantity)
				writes.DELETE("/items/:identity", publicHandler.DeleteCartItem)
				writes.DELETE("", publicHandler.ClearCart)
			}
		}
	}

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	return r
}
