package public

import (
	handlershared "github.com/granit-next/internal/http/handlers/shared"
	"github.com/granit-next/internal/http/response"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

func respondError(c *gin.Context, code int, msg string, err error) {
	handlershared.RespondError(c, code, msg, err)
}

func normalizePagination(page, pageSize int) (int, int) {
	return handlershared.NormalizePagination(page, pageSize)
}

// cartSession 读取会话 Cookie，缺失或非法时签发新的会话 ID。
func (h *Handler) cartSession(c *gin.Context) string {
	cookieName := h.Config.Cart.CookieName
	sessionID, err := c.Cookie(cookieName)
	if err == nil {
		if _, parseErr := uuid.Parse(sessionID); parseErr == nil {
			return sessionID
		}
	}

	sessionID = uuid.NewString()
	c.SetCookie(cookieName, sessionID, h.Config.Cart.CookieMaxAgeSeconds, "/", "", false, true)
	return sessionID
}

// bindJSON 统一处理请求体解析错误
func bindJSON(c *gin.Context, target interface{}) bool {
	if err := c.ShouldBindJSON(target); err != nil {
		respondError(c, response.CodeBadRequest, "invalid request body", err)
		return false
	}
	return true
}
