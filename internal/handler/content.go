package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/internal/middleware"
	"github.com/restaurantcms/backend/internal/service"
)

// ContentHandler 聚合内容流与三类内容条目的增删改
type ContentHandler struct {
	service *service.ContentService
}

func NewContentHandler(service *service.ContentService) *ContentHandler {
	return &ContentHandler{service: service}
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		respondBadRequest(c, "invalid id")
		return 0, false
	}
	return uint(id), true
}

// List 聚合内容流，?active=true 时只返回可见条目
func (h *ContentHandler) List(c *gin.Context) {
	activeOnly := c.Query("active") == "true"

	items, err := h.service.ListAll(c.Request.Context(), activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, items)
}

// UpdateSettings 只改信封的排序与可见性
func (h *ContentHandler) UpdateSettings(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		Position int  `json:"position"`
		IsActive bool `json:"is_active"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.service.UpdateSettings(c.Request.Context(), id, req.Position, req.IsActive, middleware.AdminID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "content settings updated")
}

// Delete 删除内容条目
func (h *ContentHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id, middleware.AdminID(c)); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "content deleted")
}

func (h *ContentHandler) CreateChef(c *gin.Context) {
	var req service.ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.service.CreateChef(c.Request.Context(), &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *ContentHandler) UpdateChef(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ChefRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.service.UpdateChef(c.Request.Context(), id, &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *ContentHandler) CreateMenuItem(c *gin.Context) {
	var req service.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.service.CreateMenuItem(c.Request.Context(), &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *ContentHandler) UpdateMenuItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.service.UpdateMenuItem(c.Request.Context(), id, &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}

func (h *ContentHandler) CreatePageItem(c *gin.Context) {
	var req service.PageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.service.CreatePageItem(c.Request.Context(), &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, item)
}

func (h *ContentHandler) UpdatePageItem(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.PageItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	item, err := h.service.UpdatePageItem(c.Request.Context(), id, &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, item)
}
