package services

import (
	"errors"
	"log"
	"strings"

	"github.com/google/uuid"
	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

// Notifier avisa a las terminales POS conectadas que la cola de pedidos
// cambió; ellas responden recargando la lista completa (refetch idempotente).
type Notifier interface {
	OrderChanged(orderID uint, status string)
}

type StatusIDs struct {
	Pendiente  uint
	Preparando uint
	Completado uint
	Cancelado  uint
}

type OrderService struct {
	DB         *gorm.DB
	Repo       *repository.OrderRepository
	CartRepo   *repository.CartRepository
	CashRepo   *repository.CashRepository
	ConfigRepo *repository.ConfigRepository

	Status StatusIDs

	// número de contacto si app_config todavía no existe
	FallbackWhatsApp string

	Notify Notifier
}

func NewOrderService(
	db *gorm.DB,
	repo *repository.OrderRepository,
	cartRepo *repository.CartRepository,
	cashRepo *repository.CashRepository,
	configRepo *repository.ConfigRepository,
	fallbackWhatsApp string,
) *OrderService {
	s := &OrderService{
		DB: db, Repo: repo, CartRepo: cartRepo, CashRepo: cashRepo, ConfigRepo: configRepo,
		FallbackWhatsApp: fallbackWhatsApp,
	}

	if id, err := repo.GetStatusIDByName("Pendiente"); err == nil {
		s.Status.Pendiente = id
	}
	if id, err := repo.GetStatusIDByName("Preparando"); err == nil {
		s.Status.Preparando = id
	}
	if id, err := repo.GetStatusIDByName("Completado"); err == nil {
		s.Status.Completado = id
	}
	if id, err := repo.GetStatusIDByName("Cancelado"); err == nil {
		s.Status.Cancelado = id
	}

	return s
}

// ----- DTOs -----

type CheckoutReq struct {
	ClientKey     string `json:"clientKey" binding:"required"`
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`
	Modality      string `json:"modality" binding:"required,oneof=delivery pickup"`
	Address       string `json:"address"`
}

type CheckoutRes struct {
	OrderID      uint   `json:"orderId,omitempty"`
	Saved        bool   `json:"saved"`
	WhatsAppLink string `json:"whatsappLink"`
}

var (
	ErrEmptyCart      = errors.New("cart is empty")
	ErrBadName        = errors.New("customer name too short")
	ErrBadPhone       = errors.New("customer phone too short")
	ErrBadAddress     = errors.New("delivery address too short")
	ErrInvalidStatus  = errors.New("invalid_or_conflict")
	ErrSessionNotOpen = errors.New("no open session")
)

// Checkout convierte el carrito web en un pedido Pendiente y arma el deep link
// de WhatsApp con el resumen. Guardar y mandar son independientes a propósito:
// si la base falla igual devolvemos el link (mejor perder el registro que la
// venta); el carrito se limpia al final.
func (s *OrderService) Checkout(req *CheckoutReq) (*CheckoutRes, error) {
	if len(strings.TrimSpace(req.CustomerName)) <= 2 {
		return nil, ErrBadName
	}
	if len(strings.TrimSpace(req.CustomerPhone)) <= 6 {
		return nil, ErrBadPhone
	}
	address := "Recojo en tienda"
	if req.Modality == entity.ModalityDelivery {
		if len(strings.TrimSpace(req.Address)) <= 5 {
			return nil, ErrBadAddress
		}
		address = strings.TrimSpace(req.Address)
	}

	cart, total, err := s.cartLines(req.ClientKey)
	if err != nil {
		return nil, err
	}

	order := &entity.Order{
		CustomerName:  strings.TrimSpace(req.CustomerName),
		CustomerPhone: strings.TrimSpace(req.CustomerPhone),
		Items:         snapshotItems(cart.Items),
		Total:         total,
		Modality:      req.Modality,
		Address:       address,
		OrderStatusID: s.Status.Pendiente,
		Origin:        entity.OriginWeb,
	}

	res := &CheckoutRes{}
	if err := s.DB.Transaction(func(tx *gorm.DB) error {
		return s.Repo.CreateOrder(tx, order)
	}); err != nil {
		// best-effort: el pedido sigue hacia WhatsApp aunque no quede registrado
		log.Printf("checkout: order insert failed: %v", err)
	} else {
		res.OrderID = order.ID
		res.Saved = true
		if s.Notify != nil {
			s.Notify.OrderChanged(order.ID, "Pendiente")
		}
	}

	res.WhatsAppLink = BuildWhatsAppLink(s.whatsAppNumber(), order)

	if err := s.CartRepo.ClearCart(s.DB, req.ClientKey); err != nil {
		log.Printf("checkout: clear cart failed: %v", err)
	}
	return res, nil
}

// ----- Cobro (venta de mostrador) -----

type CobroReq struct {
	ClientKey     string `json:"clientKey" binding:"required"`
	SessionID     uint   `json:"sessionId" binding:"required"`
	PaymentMethod string `json:"paymentMethod" binding:"required,oneof=Efectivo Yape Plin Tarjeta"`
}

// Cobro registra la venta directa del POS: pedido Completado con origen Local
// y, en la MISMA transacción, el incremento de total_sales de la sesión.
// O entra todo o no entra nada; así la caja nunca sub-cuenta una venta.
func (s *OrderService) Cobro(req *CobroReq) (*entity.Order, error) {
	session, err := s.CashRepo.GetSession(req.SessionID)
	if err != nil {
		return nil, err
	}
	if session.Status != entity.SessionOpen {
		return nil, ErrSessionNotOpen
	}

	methodID, err := s.Repo.GetMethodIDByName(req.PaymentMethod)
	if err != nil {
		return nil, errors.New("unknown payment method")
	}

	cart, total, err := s.cartLines(req.ClientKey)
	if err != nil {
		return nil, err
	}

	sessionID := session.ID
	order := &entity.Order{
		CustomerName:    "Venta Directa",
		CustomerPhone:   "POS",
		Items:           snapshotItems(cart.Items),
		Total:           total,
		Modality:        entity.ModalityMostrador,
		Address:         "Mostrador",
		OrderStatusID:   s.Status.Completado,
		PaymentMethodID: &methodID,
		Origin:          entity.OriginLocal,
		CashSessionID:   &sessionID,
		ReceiptCode:     uuid.NewString(),
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, order); err != nil {
			return err
		}
		if err := s.CashRepo.IncrementSales(tx, sessionID, total); err != nil {
			return err
		}
		return s.CartRepo.ClearCart(tx, req.ClientKey)
	})
	if err != nil {
		return nil, err
	}

	if s.Notify != nil {
		s.Notify.OrderChanged(order.ID, "Completado")
	}
	return s.Repo.GetOrder(order.ID)
}

// ----- Cola de pedidos -----

func (s *OrderService) List(statusName string, limit int) ([]entity.Order, error) {
	var statusID uint
	if statusName != "" && statusName != "Todos" {
		id, err := s.Repo.GetStatusIDByName(statusName)
		if err != nil {
			return nil, errors.New("unknown status")
		}
		statusID = id
	}
	return s.Repo.List(statusID, limit)
}

func (s *OrderService) Get(orderID uint) (*entity.Order, error) {
	return s.Repo.GetOrder(orderID)
}

// ----- helpers -----

func (s *OrderService) cartLines(clientKey string) (*entity.Cart, decimal.Decimal, error) {
	cart, err := s.CartRepo.GetCartWithItems(clientKey)
	if err != nil {
		return nil, decimal.Zero, err
	}
	if len(cart.Items) == 0 {
		return nil, decimal.Zero, ErrEmptyCart
	}
	total := decimal.Zero
	for _, it := range cart.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return cart, total, nil
}

// snapshot denormalizado: el historial no depende de la carta viva
func snapshotItems(lines []entity.CartItem) []entity.OrderItem {
	out := make([]entity.OrderItem, 0, len(lines))
	for _, l := range lines {
		out = append(out, entity.OrderItem{
			Name:        l.ItemName,
			VariantName: l.VariantName,
			Qty:         l.Qty,
			UnitPrice:   l.UnitPrice,
			Total:       l.UnitPrice.Mul(decimal.NewFromInt(int64(l.Qty))),
		})
	}
	return out
}

func (s *OrderService) whatsAppNumber() string {
	if cfg, err := s.ConfigRepo.Get(); err == nil && cfg != nil && cfg.WhatsAppNumber != "" {
		return cfg.WhatsAppNumber
	}
	return s.FallbackWhatsApp
}
