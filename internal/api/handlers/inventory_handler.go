package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/inventorypro/insights/internal/inventory"
)

type InventoryHandler struct {
	service *inventory.Service
}

func NewInventoryHandler(service *inventory.Service) *InventoryHandler {
	return &InventoryHandler{service: service}
}

func (h *InventoryHandler) ListItems(c *gin.Context) {
	items, err := h.service.Items(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, items)
}

func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var in inventory.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.CreateItem(c.Request.Context(), in)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, item)
}

func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	var in inventory.ItemInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	item, err := h.service.UpdateItem(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, item)
}

func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	if err := h.service.DeleteItem(c.Request.Context(), c.Param("id")); err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

type sellRequest struct {
	Quantity int `json:"quantity"`
}

func (h *InventoryHandler) SellItem(c *gin.Context) {
	var req sellRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	sale, err := h.service.Sell(c.Request.Context(), c.Param("id"), req.Quantity)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, sale)
}

func (h *InventoryHandler) ListCategories(c *gin.Context) {
	cats, err := h.service.Categories(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, cats)
}

func (h *InventoryHandler) CreateCategory(c *gin.Context) {
	var in inventory.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cat, err := h.service.CreateCategory(c.Request.Context(), in)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusCreated, cat)
}

func (h *InventoryHandler) UpdateCategory(c *gin.Context) {
	var in inventory.CategoryInput
	if err := c.ShouldBindJSON(&in); err != nil {
		errorResponse(c, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	cat, err := h.service.UpdateCategory(c.Request.Context(), c.Param("id"), in)
	if err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.JSON(http.StatusOK, cat)
}

func (h *InventoryHandler) DeleteCategory(c *gin.Context) {
	if err := h.service.DeleteCategory(c.Request.Context(), c.Param("id")); err != nil {
		errorResponse(c, statusFor(err), err.Error())
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *InventoryHandler) ListSoldItems(c *gin.Context) {
	sold, err := h.service.SoldItems(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, sold)
}

func (h *InventoryHandler) GetSummary(c *gin.Context) {
	summary, err := h.service.Summary(c.Request.Context())
	if err != nil {
		errorResponse(c, http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, summary)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, inventory.ErrItemNotFound), errors.Is(err, inventory.ErrCategoryNotFound):
		return http.StatusNotFound
	case errors.Is(err, inventory.ErrCategoryInUse):
		return http.StatusConflict
	case errors.Is(err, inventory.ErrBlankName),
		errors.Is(err, inventory.ErrInvalidPrice),
		errors.Is(err, inventory.ErrInvalidQuantity),
		errors.Is(err, inventory.ErrInvalidSale):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}

func errorResponse(c *gin.Context, statusCode int, message string) {
	log.Error().Msg(message)
	c.JSON(statusCode, gin.H{"error": message})
}
