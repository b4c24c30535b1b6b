package controllers

import (
	"errors"
	"strconv"

	"github.com/luisgarciam27/demo-churre/pkg/resp"
	"github.com/luisgarciam27/demo-churre/services"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type OrderController struct{ Svc *services.OrderService }

func NewOrderController(s *services.OrderService) *OrderController {
	return &OrderController{Svc: s}
}

// POST /checkout: pedido web + deep link de WhatsApp
func (h *OrderController) Checkout(c *gin.Context) {
	var req services.CheckoutReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	res, err := h.Svc.Checkout(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart),
			errors.Is(err, services.ErrBadName),
			errors.Is(err, services.ErrBadPhone),
			errors.Is(err, services.ErrBadAddress):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, res)
}

// GET /orders?status=Pendiente: cola de pedidos para el POS
func (h *OrderController) List(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	orders, err := h.Svc.List(c.Query("status"), limit)
	if err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	resp.OK(c, orders)
}

// GET /orders/:id
func (h *OrderController) Detail(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}
	o, err := h.Svc.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, o)
}

// PATCH /orders/:id/status
func (h *OrderController) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		resp.BadRequest(c, "invalid id")
		return
	}

	var body struct {
		Status string `json:"status" binding:"required,oneof=Preparando Completado Cancelado"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	switch body.Status {
	case "Preparando":
		err = h.Svc.MarkPreparando(uint(id))
	case "Completado":
		err = h.Svc.MarkCompletado(uint(id))
	case "Cancelado":
		err = h.Svc.MarkCancelado(uint(id))
	}
	if err != nil {
		if errors.Is(err, services.ErrInvalidStatus) {
			resp.Conflict(c, err.Error())
			return
		}
		if errors.Is(err, gorm.ErrRecordNotFound) {
			resp.NotFound(c, "order not found")
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, gin.H{"status": body.Status})
}
