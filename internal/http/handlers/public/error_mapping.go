package public

import (
	"errors"

	"github.com/granit-next/internal/http/response"
	"github.com/granit-next/internal/service"

	"github.com/gin-gonic/gin"
)

// mappedHandlerError 定义业务错误到接口错误响应的映射关系。
type mappedHandlerError struct {
	target error
	code   int
	msg    string
}

func respondWithMappedError(c *gin.Context, err error, rules []mappedHandlerError, fallbackCode int, fallbackMsg string) {
	for _, rule := range rules {
		if errors.Is(err, rule.target) {
			respondError(c, rule.code, rule.msg, nil)
			return
		}
	}
	respondError(c, fallbackCode, fallbackMsg, err)
}

var productErrorRules = []mappedHandlerError{
	{target: service.ErrNotFound, code: response.CodeNotFound, msg: "product not found"},
	{target: service.ErrProductNotAvailable, code: response.CodeNotFound, msg: "product not available"},
}

var cartErrorRules = []mappedHandlerError{
	{target: service.ErrProductNotAvailable, code: response.CodeBadRequest, msg: "product not available"},
	{target: service.ErrInvalidSelection, code: response.CodeBadRequest, msg: "invalid configuration"},
	{target: service.ErrInvalidQuantity, code: response.CodeBadRequest, msg: "invalid quantity"},
	{target: service.ErrInvalidSession, code: response.CodeBadRequest, msg: "invalid cart session"},
	{target: service.ErrItemNotFound, code: response.CodeNotFound, msg: "cart item not found"},
}

func respondProductError(c *gin.Context, err error) {
	respondWithMappedError(c, err, productErrorRules, response.CodeInternal, "product fetch failed")
}

func respondCartError(c *gin.Context, err error) {
	respondWithMappedError(c, err, cartErrorRules, response.CodeInternal, "cart operation failed")
}
