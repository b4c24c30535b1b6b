package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type OrderItem struct {
	gorm.Model
	OrderID uint  `json:"orderId"`
	Order   Order `json:"-"`

	// snapshot, sin FK al plato: la historia no cambia con la carta
	Name        string          `json:"name"`
	VariantName string          `json:"variantName"`
	Qty         int             `json:"qty"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`
	Total       decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
}
