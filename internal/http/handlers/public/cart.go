package public

import (
	"github.com/granit-next/internal/http/response"
	"github.com/granit-next/internal/service"

	"github.com/gin-gonic/gin"
)

// quickAddRequest 快速加购请求体
type quickAddRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity"`
}

// updateQuantityRequest 行数量更新请求体
type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart 获取购物车
func (h *Handler) GetCart(c *gin.Context) {
	view, err := h.CartService.Get(c.Request.Context(), h.cartSession(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// AddCartItem 按配置加购
func (h *Handler) AddCartItem(c *gin.Context) {
	var input service.AddItemInput
	if !bindJSON(c, &input) {
		return
	}

	view, err := h.CartService.AddConfigured(c.Request.Context(), h.cartSession(c), input)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// QuickAddCartItem 标准配置快速加购
func (h *Handler) QuickAddCartItem(c *gin.Context) {
	var req quickAddRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.CartService.QuickAdd(c.Request.Context(), h.cartSession(c), req.ProductID, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// UpdateCartItemQuantity 更新行数量，0 及以下删除该行
func (h *Handler) UpdateCartItemQuantity(c *gin.Context) {
	identity := c.Param("identity")
	var req updateQuantityRequest
	if !bindJSON(c, &req) {
		return
	}

	view, err := h.CartService.UpdateQuantity(c.Request.Context(), h.cartSession(c), identity, req.Quantity)
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// DeleteCartItem 删除行
func (h *Handler) DeleteCartItem(c *gin.Context) {
	view, err := h.CartService.RemoveItem(c.Request.Context(), h.cartSession(c), c.Param("identity"))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}

// ClearCart 清空购物车
func (h *Handler) ClearCart(c *gin.Context) {
	view, err := h.CartService.Clear(c.Request.Context(), h.cartSession(c))
	if err != nil {
		respondCartError(c, err)
		return
	}
	response.Success(c, view)
}
