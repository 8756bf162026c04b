package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/lahermandad/internal/domain/catalog"
	"github.com/BruksfildServices01/lahermandad/internal/domain/fitting"
	"github.com/BruksfildServices01/lahermandad/internal/httperr"
	"github.com/BruksfildServices01/lahermandad/internal/httpresp"
	"github.com/BruksfildServices01/lahermandad/internal/middleware"
	"github.com/BruksfildServices01/lahermandad/internal/models"
)

type FittingRoomHandler struct {
	products catalog.ProductRepository
}

func NewFittingRoomHandler(products catalog.ProductRepository) *FittingRoomHandler {
	return &FittingRoomHandler{products: products}
}

type AddFittingItemRequest struct {
	ProductID uint   `json:"product_id" binding:"required"`
	Size      string `json:"size" binding:"required"`
}

type fittingRoomView struct {
	Items []models.FittingItem `json:"items"`
	Count int                  `json:"count"`
}

func viewOf(room *fitting.Room) fittingRoomView {
	if room == nil {
		return fittingRoomView{Items: []models.FittingItem{}}
	}
	items := room.Items()
	return fittingRoomView{Items: items, Count: len(items)}
}

func (h *FittingRoomHandler) Get(c *gin.Context) {
	httpresp.OK(c, viewOf(middleware.FittingRoom(c)))
}

func (h *FittingRoomHandler) AddItem(c *gin.Context) {
	var req AddFittingItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Escolha um produto e um tamanho.")
		return
	}
	size := strings.TrimSpace(req.Size)

	p, err := h.products.Get(c.Request.Context(), req.ProductID)
	if err != nil {
		writeError(c, "product_lookup_failed", err)
		return
	}
	if !p.HasSize(size) {
		writeError(c, "", catalog.ErrSizeUnavailable)
		return
	}

	room := middleware.OpenFittingRoom(c)
	item := room.Add(*p, size)

	httpresp.OK(c, gin.H{
		"item":    item,
		"message": "Adicionado à lista de prova!",
		"count":   room.Len(),
	})
}

func (h *FittingRoomHandler) RemoveItem(c *gin.Context) {
	room := middleware.FittingRoom(c)
	if room != nil {
		room.Remove(c.Param("fittingId"))
	}
	httpresp.OK(c, viewOf(room))
}

// Clear empties the room and releases it; the next add opens a new one.
func (h *FittingRoomHandler) Clear(c *gin.Context) {
	if room := middleware.FittingRoom(c); room != nil {
		room.Clear()
	}
	middleware.DiscardFittingRoom(c)
	httpresp.OK(c, viewOf(nil))
}
