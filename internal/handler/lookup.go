package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/restaurantcms/backend/internal/service"
)

// LookupHandler 货币、联系方式类型、站点配置的字典维护
type LookupHandler struct {
	service *service.LookupService
}

func NewLookupHandler(service *service.LookupService) *LookupHandler {
	return &LookupHandler{service: service}
}

func (h *LookupHandler) ListCurrencies(c *gin.Context) {
	currencies, err := h.service.ListCurrencies(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, currencies)
}

func (h *LookupHandler) CreateCurrency(c *gin.Context) {
	var req service.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	currency, err := h.service.CreateCurrency(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, currency)
}

func (h *LookupHandler) UpdateCurrency(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.CurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	currency, err := h.service.UpdateCurrency(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, currency)
}

func (h *LookupHandler) DeleteCurrency(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteCurrency(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "currency deleted")
}

func (h *LookupHandler) ListContactTypes(c *gin.Context) {
	types, err := h.service.ListContactTypes(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, types)
}

func (h *LookupHandler) CreateContactType(c *gin.Context) {
	var req service.ContactTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	contactType, err := h.service.CreateContactType(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusCreated, contactType)
}

func (h *LookupHandler) UpdateContactType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req service.ContactTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	contactType, err := h.service.UpdateContactType(c.Request.Context(), id, &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, contactType)
}

func (h *LookupHandler) DeleteContactType(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteContactType(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "contact type deleted")
}

func (h *LookupHandler) ListConfiguration(c *gin.Context) {
	entries, err := h.service.ListConfiguration(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, entries)
}

func (h *LookupHandler) SetConfiguration(c *gin.Context) {
	var req service.ConfigurationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, err.Error())
		return
	}

	entry, err := h.service.SetConfiguration(c.Request.Context(), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondData(c, http.StatusOK, entry)
}

func (h *LookupHandler) DeleteConfiguration(c *gin.Context) {
	if err := h.service.DeleteConfiguration(c.Request.Context(), c.Param("key")); err != nil {
		respondError(c, err)
		return
	}
	respondMessage(c, http.StatusOK, "configuration entry deleted")
}
