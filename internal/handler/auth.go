package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/config"
	"github.com/restaurantcms/backend/internal/service"
)

// 无论邮箱是否存在，重置申请都返回同一句话，防止邮箱枚举
const resetRequestMessage = "If the email exists, a password reset link has been sent"

// AuthHandler 登录、密码重置与管理员账号维护
type AuthHandler struct {
	cfg     *config.Config
	service *service.AuthService
}

func NewAuthHandler(cfg *config.Config, service *service.AuthService) *AuthHandler {
	return &AuthHandler{cfg: cfg, service: service}
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req struct {
		Email    string `json:"email" binding:"required"`
		Password string `json:"password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	result, err := h.service.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, result)
}

func (h *AuthHandler) RequestReset(c *gin.Context) {
	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	token, err := h.service.RequestReset(c.Request.Context(), req.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	// 调试模式下回显令牌，方便联调；生产环境只走带外渠道送达
	if token != "" && h.cfg.Server.Mode != "release" {
		c.JSON(http.StatusOK, Response{
			Success: true,
			Message: resetRequestMessage,
			Data:    gin.H{"token": token},
		})
		return
	}
	respondMessage(c, http.StatusOK, resetRequestMessage)
}

func (h *AuthHandler) ConsumeReset(c *gin.Context) {
	var req struct {
		Token       string `json:"token" binding:"required"`
		NewPassword string `json:"newPassword" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.service.ConsumeReset(c.Request.Context(), req.Token, req.NewPassword); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "password has been reset")
}

func (h *AuthHandler) ListAdministrators(c *gin.Context) {
	admins, err := h.service.ListAdministrators(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, admins)
}

func (h *AuthHandler) CreateAdministrator(c *gin.Context) {
	var req service.AdministratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	admin, err := h.service.CreateAdministrator(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, admin)
}

func (h *AuthHandler) UpdateAdministrator(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.AdministratorRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	admin, err := h.service.UpdateAdministrator(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, admin)
}

func (h *AuthHandler) DeleteAdministrator(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteAdministrator(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "administrator deleted")
}
