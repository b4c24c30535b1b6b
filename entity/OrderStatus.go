package entity

import (
	"gorm.io/gorm"
)

// Valores seed: Pendiente, Preparando, Completado, Cancelado
type OrderStatus struct {
	gorm.Model
	StatusName string `json:"statusName"`
	Orders     []Order `json:"-"`
}
