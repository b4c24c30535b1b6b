package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// La identidad de una línea es el par (MenuItemID, VariantID); VariantID = 0
// significa sin variante. Dos agregados con el mismo par se fusionan sumando
// cantidad, cualquier otra combinación abre línea nueva.
type CartItem struct {
	gorm.Model
	CartID uint `json:"cartId"`
	Cart   Cart `json:"-"`

	MenuItemID uint     `json:"menuItemId"`
	MenuItem   MenuItem `json:"-"`
	VariantID  uint     `json:"variantId"`

	// snapshot para mostrar y totalizar sin re-consultar la carta
	ItemName    string          `json:"itemName"`
	VariantName string          `json:"variantName"`
	UnitPrice   decimal.Decimal `json:"unitPrice" gorm:"type:decimal(10,2)"`

	Qty   int             `json:"qty"`
	Total decimal.Decimal `json:"total" gorm:"type:decimal(10,2)"`
}
