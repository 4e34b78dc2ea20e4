package middleware

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"

	"rsvp-http-service/internal/domain/services"
	"rsvp-http-service/internal/error/code"
	"rsvp-http-service/internal/error/response"
	"rsvp-http-service/pkg/logger"
)

// 会话令牌的Cookie名和备用请求头
const (
	SessionCookieName = "admin_token"
	AdminTokenHeader  = "X-Admin-Token"
)

// extractToken 按优先级提取候选令牌：Cookie、Authorization头、厂商头
// Authorization头带"Bearer "前缀时去掉前缀，否则按原值使用
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookieName); err == nil && cookie != "" {
		return cookie
	}

	if authHeader := c.GetHeader("Authorization"); authHeader != "" {
		if strings.HasPrefix(authHeader, "Bearer ") {
			return strings.TrimPrefix(authHeader, "Bearer ")
		}
		return authHeader
	}

	return c.GetHeader(AdminTokenHeader)
}

// RequireAdminSession 会话校验中间件，保护来宾数据的读取和导出
// 校验不通过时在到达存储层之前中断请求
func RequireAdminSession(store services.InterfaceSessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)

		if err := store.Verify(token); err != nil {
			if errors.Is(err, services.ErrMisconfigured) {
				// 服务端未配置密钥：拒绝所有受保护请求（fail closed）
				logger.Warning("会话密钥未配置，所有受保护路由将被拒绝")
				response.AbortFail(c, code.ErrMisconfigured)
				return
			}
			response.AbortFail(c, code.ErrUnauthorized)
			return
		}

		c.Next()
	}
}
