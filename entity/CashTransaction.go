package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	MovementEntry = "entry" // ingreso manual (ej. sencillo para vuelto)
	MovementExit  = "exit"  // salida manual (ej. compra de hielo)
)

// Bitácora append-only de movimientos manuales de caja. Nunca se edita ni borra.
type CashTransaction struct {
	gorm.Model
	CashSessionID uint        `json:"sessionId"`
	CashSession   CashSession `json:"-"`

	Type   string          `json:"type"` // entry | exit
	Amount decimal.Decimal `json:"amount" gorm:"type:decimal(10,2)"`
	Reason string          `json:"reason"`
}
