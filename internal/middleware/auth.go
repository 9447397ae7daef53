package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/internal/pkg/jwt"
)

// 请求上下文键
const (
	ContextAdminID    = "admin_id"
	ContextAdminEmail = "admin_email"
)

// Auth 登录校验：缺少 Bearer 头回 401，签名或有效期校验失败回 403
func Auth(j *jwt.JWT) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"error":   "authorization token required",
			})
			return
		}

		claims, err := j.ParseClaims(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"error":   "invalid or expired token",
			})
			return
		}

		// 设置信息传递，后面才能从 ctx 中获取到管理员信息
		c.Set(ContextAdminID, claims.ID)
		c.Set(ContextAdminEmail, claims.Email)
		c.Next()
	}
}

// AdminID 取出当前登录管理员 id，未登录时返回 nil
func AdminID(c *gin.Context) *uint {
	value, ok := c.Get(ContextAdminID)
	if !ok {
		return nil
	}
	id, ok := value.(uint)
	if !ok {
		return nil
	}
	return &id
}
