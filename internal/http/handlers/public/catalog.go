package public

import (
	"strconv"
	"strings"
	"time"

	"github.com/granit-next/internal/cache"
	"github.com/granit-next/internal/http/response"
	"github.com/granit-next/internal/models"
	"github.com/granit-next/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	categoriesCacheKey = "public:categories"
	categoriesCacheTTL = 60 * time.Second
)

// GetCategories 获取分类列表（含商品数）
func (h *Handler) GetCategories(c *gin.Context) {
	var cached []service.CategoryView
	if hit, err := cache.GetJSON(c.Request.Context(), categoriesCacheKey, &cached); err == nil && hit {
		response.Success(c, cached)
		return
	}

	categories := h.CatalogService.Categories()
	_ = cache.SetJSON(c.Request.Context(), categoriesCacheKey, categories, categoriesCacheTTL)
	response.Success(c, categories)
}

// GetProducts 获取商品列表
func (h *Handler) GetProducts(c *gin.Context) {
	// 获取分页参数
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	page, pageSize = normalizePagination(page, pageSize)

	// 获取筛选参数
	var categoryID uint64
	if raw := strings.TrimSpace(c.Query("category_id")); raw != "" {
		var err error
		categoryID, err = strconv.ParseUint(raw, 10, 32)
		if err != nil || categoryID == 0 {
			respondError(c, response.CodeBadRequest, "invalid category id", nil)
			return
		}
		category, err := h.CategoryRepo.GetByID(strconv.FormatUint(categoryID, 10))
		if err != nil {
			respondError(c, response.CodeInternal, "category fetch failed", err)
			return
		}
		if category == nil {
			respondError(c, response.CodeNotFound, "category not found", nil)
			return
		}
	}
	search := strings.TrimSpace(c.Query("search"))

	products, total, err := h.CatalogService.Products(service.CatalogFilter{
		CategoryID: uint(categoryID),
		Search:     search,
		Page:       page,
		PageSize:   pageSize,
	})
	if err != nil {
		respondError(c, response.CodeInternal, "product list failed", err)
		return
	}

	pagination := response.Pagination{
		Page:      page,
		PageSize:  pageSize,
		Total:     total,
		TotalPage: (total + int64(pageSize) - 1) / int64(pageSize),
	}
	response.SuccessWithPage(c, products, pagination)
}

// GetProductByID 获取商品详情（含配置器选项表与默认配置）
func (h *Handler) GetProductByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	product, err := h.CatalogService.ProductByID(uint(id))
	if err != nil {
		respondProductError(c, err)
		return
	}

	h.respondProductDetail(c, product)
}

// GetProductBySlug 按 slug 获取商品详情
func (h *Handler) GetProductBySlug(c *gin.Context) {
	slug := strings.TrimSpace(c.Param("slug"))
	if slug == "" {
		respondError(c, response.CodeBadRequest, "invalid product slug", nil)
		return
	}

	product, err := h.CatalogService.ProductBySlug(slug)
	if err != nil {
		respondProductError(c, err)
		return
	}

	h.respondProductDetail(c, product)
}

func (h *Handler) respondProductDetail(c *gin.Context, product *models.Product) {
	defaults := h.PricingService.DefaultSelection(product)
	quote := h.PricingService.Quote(product, defaults)

	response.Success(c, gin.H{
		"product":           product,
		"article_number":    product.ArticleNumber(),
		"default_selection": defaults,
		"default_quote":     quote,
	})
}
