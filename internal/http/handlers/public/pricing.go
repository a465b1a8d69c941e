package public

import (
	"strconv"

	"github.com/granit-next/internal/http/response"
	"github.com/granit-next/internal/service"

	"github.com/gin-gonic/gin"
)

// QuotePrice 计算一次配置的价格
func (h *Handler) QuotePrice(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil || id == 0 {
		respondError(c, response.CodeBadRequest, "invalid product id", nil)
		return
	}

	var selection service.Selection
	if !bindJSON(c, &selection) {
		return
	}

	product, err := h.CatalogService.ProductByID(uint(id))
	if err != nil {
		respondProductError(c, err)
		return
	}

	quote := h.PricingService.Quote(product, selection)
	response.Success(c, gin.H{
		"quote":    quote,
		"identity": service.BuildIdentity(product.ID, selection),
	})
}
