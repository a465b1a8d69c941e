package service

import "errors"

// 服务层哨兵错误，由 handler 层映射为响应码
var (
	ErrNotFound            = errors.New("resource not found")
	ErrProductNotAvailable = errors.New("product not available")
	ErrInvalidSelection    = errors.New("invalid configuration selection")
	ErrInvalidQuantity     = errors.New("invalid quantity")
	ErrInvalidSession      = errors.New("invalid cart session")
	ErrItemNotFound        = errors.New("cart item not found")
)
