package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/internal/service"
)

// PageHandler 页面维护与页面-内容关联
type PageHandler struct {
	service *service.PageService
}

func NewPageHandler(service *service.PageService) *PageHandler {
	return &PageHandler{service: service}
}

func (h *PageHandler) List(c *gin.Context) {
	pages, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, pages)
}

func (h *PageHandler) GetBySlug(c *gin.Context) {
	page, err := h.service.GetBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (h *PageHandler) Create(c *gin.Context) {
	var req service.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	page, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, page)
}

func (h *PageHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	page, err := h.service.Update(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, page)
}

func (h *PageHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "page deleted")
}

func (h *PageHandler) GetContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	ids, err := h.service.GetContentIDs(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, ids)
}

// SetContent 以目标集合覆盖页面的内容关联，幂等
func (h *PageHandler) SetContent(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req struct {
		ContentIDs []uint `json:"content_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	if err := h.service.SetAssociations(c.Request.Context(), id, req.ContentIDs); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "page content associations updated")
}
