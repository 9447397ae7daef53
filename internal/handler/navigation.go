package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/internal/middleware"
	"github.com/restaurantcms/backend/internal/service"
)

// NavigationHandler 导航节点维护与导航树读取
type NavigationHandler struct {
	service *service.NavigationService
}

func NewNavigationHandler(service *service.NavigationService) *NavigationHandler {
	return &NavigationHandler{service: service}
}

// List 平铺节点列表；?tree=true 时返回已组装的森林
func (h *NavigationHandler) List(c *gin.Context) {
	if c.Query("tree") == "true" {
		forest, err := h.service.Forest(c.Request.Context())
		if err != nil {
			respondError(c, err)
			return
		}
		respondData(c, http.StatusOK, forest)
		return
	}

	nodes, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, nodes)
}

func (h *NavigationHandler) Create(c *gin.Context) {
	var req service.NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	node, err := h.service.Create(c.Request.Context(), &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, node)
}

func (h *NavigationHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.NavigationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	node, err := h.service.Update(c.Request.Context(), id, &req, middleware.AdminID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, node)
}

func (h *NavigationHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "navigation node deleted")
}
