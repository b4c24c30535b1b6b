package controllers

import (
	"errors"

	"github.com/luisgarciam27/demo-churre/pkg/resp"
	"github.com/luisgarciam27/demo-churre/services"

	"github.com/gin-gonic/gin"
)

// POS: apertura/cierre de turno, movimientos de caja y cobro de mostrador
type POSController struct {
	Cash   *services.CashService
	Orders *services.OrderService
}

func NewPOSController(cash *services.CashService, orders *services.OrderService) *POSController {
	return &POSController{Cash: cash, Orders: orders}
}

// POST /pos/session/open
func (h *POSController) OpenShift(c *gin.Context) {
	var req services.OpenShiftIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	session, err := h.Cash.OpenShift(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrSessionAlreadyOpen):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrMissingCashier), errors.Is(err, services.ErrBadAmount):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, session)
}

// GET /pos/session: sesión abierta actual (o data null si no hay turno)
func (h *POSController) ActiveSession(c *gin.Context) {
	session, err := h.Cash.ActiveSession()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, session)
}

// POST /pos/session/movements: entrada/salida manual de caja
func (h *POSController) RecordMovement(c *gin.Context) {
	var req services.MovementIn
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	movement, err := h.Cash.RecordMovement(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrNoOpenSession):
			resp.Conflict(c, err.Error())
		case errors.Is(err, services.ErrBadMovementType),
			errors.Is(err, services.ErrBadAmount),
			errors.Is(err, services.ErrMissingReason):
			resp.BadRequest(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, movement)
}

// POST /pos/session/close: arqueo y cierre del turno
func (h *POSController) CloseShift(c *gin.Context) {
	session, err := h.Cash.CloseShift()
	if err != nil {
		if errors.Is(err, services.ErrNoOpenSession) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, session)
}

// GET /pos/session/summary: dashboard del turno
func (h *POSController) Summary(c *gin.Context) {
	summary, err := h.Cash.Summary()
	if err != nil {
		if errors.Is(err, services.ErrNoOpenSession) {
			resp.Conflict(c, err.Error())
			return
		}
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, summary)
}

// POST /pos/cobro: venta directa de mostrador
func (h *POSController) Cobro(c *gin.Context) {
	var req services.CobroReq
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}

	order, err := h.Orders.Cobro(&req)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrEmptyCart):
			resp.BadRequest(c, err.Error())
		case errors.Is(err, services.ErrSessionNotOpen):
			resp.Conflict(c, err.Error())
		default:
			resp.ServerError(c, err)
		}
		return
	}
	resp.Created(c, order)
}
