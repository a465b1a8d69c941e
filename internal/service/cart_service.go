package service

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"github.com/granit-next/internal/logger"
	"github.com/granit-next/internal/models"
)

// CartView 购物车视图（用于响应）
type CartView struct {
	Items         []models.LineItem `json:"items"`
	TotalQuantity int               `json:"total_quantity"`
	TotalPrice    models.Money      `json:"total_price"`
}

// AddItemInput 配置加购输入
type AddItemInput struct {
	ProductID uint      `json:"product_id"`
	Quantity  int       `json:"quantity"`
	Selection Selection `json:"selection"`
}

// CartService 购物车服务。
// 购物车整体以 JSON 快照持久化，读到损坏快照时降级为空车。
type CartService struct {
	store   CartStore
	catalog *CatalogService
	pricing *PricingService
}

// NewCartService 创建购物车服务
func NewCartService(store CartStore, catalog *CatalogService, pricing *PricingService) *CartService {
	return &CartService{
		store:   store,
		catalog: catalog,
		pricing: pricing,
	}
}

// Get 获取购物车
func (s *CartService) Get(ctx context.Context, sessionID string) (CartView, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}
	return buildView(items), nil
}

// AddConfigured 按配置加购。相同配置的行合并数量，保留首次快照的展示字段
func (s *CartService) AddConfigured(ctx context.Context, sessionID string, input AddItemInput) (CartView, error) {
	if input.Quantity == 0 {
		input.Quantity = 1
	}
	if input.Quantity < 0 {
		return CartView{}, ErrInvalidQuantity
	}

	product, err := s.catalog.ProductByID(input.ProductID)
	if err != nil {
		return CartView{}, ErrProductNotAvailable
	}

	quote := s.pricing.Quote(product, input.Selection)
	item := BuildLineItem(product, input.Selection, quote, input.Quantity)
	return s.merge(ctx, sessionID, item)
}

// QuickAdd 以标准配置快速加购，数量缺省为 1
func (s *CartService) QuickAdd(ctx context.Context, sessionID string, productID uint, quantity int) (CartView, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return CartView{}, ErrInvalidQuantity
	}

	product, err := s.catalog.ProductByID(productID)
	if err != nil {
		return CartView{}, ErrProductNotAvailable
	}

	item := BuildQuickAddLineItem(product)
	item.Quantity = quantity
	return s.merge(ctx, sessionID, item)
}

// UpdateQuantity 设置某行数量，0 及以下等同删除
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, identity string, quantity int) (CartView, error) {
	identity = strings.TrimSpace(identity)
	if identity == "" {
		return CartView{}, ErrItemNotFound
	}

	items, err := s.load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}

	found := false
	next := make([]models.LineItem, 0, len(items))
	for _, item := range items {
		if item.Identity != identity {
			next = append(next, item)
			continue
		}
		found = true
		if quantity <= 0 {
			continue
		}
		item.Quantity = quantity
		next = append(next, item)
	}
	if !found {
		return CartView{}, ErrItemNotFound
	}

	if err := s.save(ctx, sessionID, next); err != nil {
		return CartView{}, err
	}
	return buildView(next), nil
}

// RemoveItem 删除某行，目标行不存在时视为已删除
func (s *CartService) RemoveItem(ctx context.Context, sessionID, identity string) (CartView, error) {
	view, err := s.UpdateQuantity(ctx, sessionID, identity, 0)
	if errors.Is(err, ErrItemNotFound) {
		return s.Get(ctx, sessionID)
	}
	return view, err
}

// Clear 清空购物车
func (s *CartService) Clear(ctx context.Context, sessionID string) (CartView, error) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return CartView{}, err
	}
	return buildView(nil), nil
}

func (s *CartService) merge(ctx context.Context, sessionID string, item models.LineItem) (CartView, error) {
	items, err := s.load(ctx, sessionID)
	if err != nil {
		return CartView{}, err
	}

	merged := false
	for i := range items {
		if items[i].Identity == item.Identity {
			// 合并只累加数量，价格与摘要以首次加入为准
			items[i].Quantity += item.Quantity
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, item)
	}

	if err := s.save(ctx, sessionID, items); err != nil {
		return CartView{}, err
	}
	return buildView(items), nil
}

func (s *CartService) load(ctx context.Context, sessionID string) ([]models.LineItem, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return nil, ErrInvalidSession
	}
	blob, err := s.store.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(blob) == 0 {
		return []models.LineItem{}, nil
	}
	var items []models.LineItem
	if err := json.Unmarshal(blob, &items); err != nil {
		logger.Warnw("cart_snapshot_corrupt", "session_id", sessionID, "error", err)
		return []models.LineItem{}, nil
	}
	return items, nil
}

func (s *CartService) save(ctx context.Context, sessionID string, items []models.LineItem) error {
	blob, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.store.Save(ctx, sessionID, blob)
}

func buildView(items []models.LineItem) CartView {
	view := CartView{
		Items:      items,
		TotalPrice: models.NewMoneyFromInt(0),
	}
	if view.Items == nil {
		view.Items = []models.LineItem{}
	}
	for _, item := range view.Items {
		view.TotalQuantity += item.Quantity
		view.TotalPrice = view.TotalPrice.Add(item.Subtotal())
	}
	return view
}
