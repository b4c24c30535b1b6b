package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// ItemVariant = presentación con precio propio (ej. tamaño, al plato / en pan).
// Si el cliente elige una, su precio reemplaza al del plato base.
type ItemVariant struct {
	gorm.Model
	MenuItemID uint            `json:"menuItemId"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`
}
