package service

import (
	"strconv"
	"sync"

	"github.com/granit-next/internal/models"
	"github.com/granit-next/internal/repository"
)

// CategoryView 分类及其商品数
type CategoryView struct {
	models.Category
	ProductCount int64 `json:"product_count"`
}

// CatalogFilter 目录查询条件
type CatalogFilter struct {
	CategoryID uint
	Search     string
	Page       int
	PageSize   int
}

// CatalogService 商品目录服务。
// 详情与购物车定价走启动时加载的内存快照，
// 列表与搜索走数据库查询（方言感知的模糊匹配 + 分页）。
type CatalogService struct {
	categoryRepo repository.CategoryRepository
	productRepo  repository.ProductRepository

	mu         sync.RWMutex
	categories []CategoryView
	products   []models.Product
	byID       map[uint]int
	bySlug     map[string]int
}

// NewCatalogService 创建目录服务并加载目录
func NewCatalogService(categoryRepo repository.CategoryRepository, productRepo repository.ProductRepository) (*CatalogService, error) {
	s := &CatalogService{
		categoryRepo: categoryRepo,
		productRepo:  productRepo,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload 重新加载目录快照
func (s *CatalogService) Reload() error {
	categories, err := s.categoryRepo.List()
	if err != nil {
		return err
	}
	products, err := s.productRepo.ListAll(true)
	if err != nil {
		return err
	}

	byID := make(map[uint]int, len(products))
	bySlug := make(map[string]int, len(products))
	for i := range products {
		byID[products[i].ID] = i
		bySlug[products[i].Slug] = i
	}

	views := make([]CategoryView, 0, len(categories))
	for _, category := range categories {
		count, err := s.categoryRepo.CountProducts(strconv.FormatUint(uint64(category.ID), 10))
		if err != nil {
			return err
		}
		views = append(views, CategoryView{
			Category:     category,
			ProductCount: count,
		})
	}

	s.mu.Lock()
	s.categories = views
	s.products = products
	s.byID = byID
	s.bySlug = bySlug
	s.mu.Unlock()
	return nil
}

// Categories 分类列表
func (s *CatalogService) Categories() []CategoryView {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]CategoryView, len(s.categories))
	copy(result, s.categories)
	return result
}

// Products 商品列表（过滤 + 模糊搜索 + 分页），返回当前页与总数
func (s *CatalogService) Products(filter CatalogFilter) ([]models.Product, int64, error) {
	listFilter := repository.ProductListFilter{
		Page:         filter.Page,
		PageSize:     filter.PageSize,
		Search:       filter.Search,
		OnlyActive:   true,
		WithCategory: true,
	}
	if filter.CategoryID != 0 {
		listFilter.CategoryID = strconv.FormatUint(uint64(filter.CategoryID), 10)
	}
	return s.productRepo.List(listFilter)
}

// ProductByID 根据 ID 获取商品
func (s *CatalogService) ProductByID(id uint) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	product := s.products[index]
	return &product, nil
}

// ProductBySlug 根据 slug 获取商品
func (s *CatalogService) ProductBySlug(slug string) (*models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	index, ok := s.bySlug[slug]
	if !ok {
		return nil, ErrNotFound
	}
	product := s.products[index]
	return &product, nil
}
