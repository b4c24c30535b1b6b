package controllers

import (
	"errors"

	"github.com/luisgarciam27/demo-churre/pkg/resp"
	"github.com/luisgarciam27/demo-churre/services"
	"github.com/luisgarciam27/demo-churre/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type CartController struct{ Svc *services.CartService }

func NewCartController(s *services.CartService) *CartController { return &CartController{Svc: s} }

// GET /cart
func (h *CartController) Get(c *gin.Context) {
	key := utils.ClientKey(c)
	if key == "" {
		resp.BadRequest(c, "missing client key")
		return
	}

	cart, total, err := h.Svc.Get(key)
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cart": cart, "total": total})
}

// POST /cart/items
func (h *CartController) Add(c *gin.Context) {
	key := utils.ClientKey(c)
	if key == "" {
		resp.BadRequest(c, "missing client key")
		return
	}

	var req services.AddToCartIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.Add(key, &req); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "menu item not found")
			return
		}
		resp.BadRequest(c, err.Error())
		return
	}
	resp.Created(c, gin.H{"added": true})
}

// PATCH /cart/items/qty: delta con piso en 1, nunca borra la línea
func (h *CartController) UpdateQty(c *gin.Context) {
	key := utils.ClientKey(c)
	if key == "" {
		resp.BadRequest(c, "missing client key")
		return
	}

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
		Delta  int  `json:"delta" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.UpdateQty(key, body.ItemID, body.Delta); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "cart item not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"updated": true})
}

// DELETE /cart/items
func (h *CartController) RemoveItem(c *gin.Context) {
	key := utils.ClientKey(c)
	if key == "" {
		resp.BadRequest(c, "missing client key")
		return
	}

	var body struct {
		ItemID uint `json:"itemId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Svc.RemoveItem(key, body.ItemID); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"removed": true})
}

// DELETE /cart
func (h *CartController) Clear(c *gin.Context) {
	key := utils.ClientKey(c)
	if key == "" {
		resp.BadRequest(c, "missing client key")
		return
	}
	if err := h.Svc.Clear(key); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"cleared": true})
}
