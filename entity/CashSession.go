package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

// CashSession = turno de caja. Se abre declarando un fondo inicial, acumula
// ventas y movimientos manuales, y se sella al cierre con el efectivo esperado.
// Solo puede haber una sesión open a la vez; nunca se borra ni se reabre.
type CashSession struct {
	gorm.Model
	OpenedAt time.Time  `json:"openedAt"`
	ClosedAt *time.Time `json:"closedAt,omitempty"`

	OpeningBalance decimal.Decimal `json:"openingBalance" gorm:"type:decimal(10,2)"`
	ClosingBalance decimal.Decimal `json:"closingBalance" gorm:"type:decimal(10,2)"`

	TotalSales decimal.Decimal `json:"totalSales" gorm:"type:decimal(10,2)"`
	TotalEntry decimal.Decimal `json:"totalEntry" gorm:"type:decimal(10,2)"`
	TotalExit  decimal.Decimal `json:"totalExit" gorm:"type:decimal(10,2)"`

	Status   string `json:"status" gorm:"index"` // open | closed
	UserName string `json:"userName"`            // cajero que abrió el turno

	Transactions []CashTransaction `json:"-" gorm:"foreignKey:CashSessionID"`
	Orders       []Order           `json:"-" gorm:"foreignKey:CashSessionID"`
}
