package entity

import (
	"gorm.io/gorm"
)

const MethodEfectivo = "Efectivo" // el único que mueve caja física

// Valores seed: Efectivo, Yape, Plin, Tarjeta
type PaymentMethod struct {
	gorm.Model
	MethodName string  `json:"methodName"`
	Orders     []Order `json:"-"`
}
