package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	ModalityDelivery  = "delivery"
	ModalityPickup    = "pickup"
	ModalityMostrador = "mostrador"

	OriginWeb   = "Web"
	OriginLocal = "Local"
)

// Order guarda un snapshot denormalizado del pedido: los OrderItem copian
// nombre y precio al momento de la venta, así editar la carta después no
// reescribe la historia. Tras crearse solo muta el estado.
type Order struct {
	gorm.Model
	CustomerName  string `json:"customerName"`
	CustomerPhone string `json:"customerPhone"`

	Items []OrderItem     `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	Total decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`

	Modality string `json:"modality"` // delivery | pickup | mostrador
	Address  string `json:"address"`

	OrderStatusID uint        `json:"orderStatusId"`
	OrderStatus   OrderStatus `json:"orderStatus"`

	// nil para pedidos web: el pago se coordina por WhatsApp
	PaymentMethodID *uint          `json:"paymentMethodId"`
	PaymentMethod   *PaymentMethod `json:"paymentMethod"`

	Origin string `json:"origin"` // Web | Local

	// nil para pedidos web: esos no pasan por caja
	CashSessionID *uint        `json:"sessionId"`
	CashSession   *CashSession `json:"-"`

	// solo ventas de mostrador (cobro)
	ReceiptCode string `json:"receiptCode"`
}
