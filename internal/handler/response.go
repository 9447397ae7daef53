package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"k8s.io/klog/v2"

	"github.com/restaurantcms/backend/internal/repository"
	"github.com/restaurantcms/backend/internal/service"
)

// Response 统一响应信封
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
	Message string      `json:"message,omitempty"`
}

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Success: true, Message: message})
}

// respondError 按错误分类映射状态码。
// 未识别的内部错误只回一句笼统提示，原始错误进日志不出网。
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrValidation):
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: err.Error()})
	case errors.Is(err, service.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, Response{Success: false, Error: "Invalid credentials"})
	case errors.Is(err, service.ErrAccountInactive):
		c.JSON(http.StatusForbidden, Response{Success: false, Error: "Account inactive"})
	case errors.Is(err, service.ErrInvalidToken):
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "Invalid or expired token"})
	case errors.Is(err, service.ErrTokenExpired):
		c.JSON(http.StatusBadRequest, Response{Success: false, Error: "Token has expired"})
	case errors.Is(err, service.ErrEmailTaken):
		c.JSON(http.StatusConflict, Response{Success: false, Error: err.Error()})
	case errors.Is(err, repository.ErrNotFound):
		c.JSON(http.StatusNotFound, Response{Success: false, Error: "resource not found"})
	default:
		klog.Errorf("请求处理失败: %v", err)
		c.JSON(http.StatusInternalServerError, Response{Success: false, Error: "internal server error"})
	}
}

func respondBadRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, Response{Success: false, Error: message})
}
