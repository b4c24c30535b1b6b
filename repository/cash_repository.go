package repository

import (
	"errors"
	"time"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type CashRepository struct {
	DB *gorm.DB
}

func NewCashRepository(db *gorm.DB) *CashRepository {
	return &CashRepository{DB: db}
}

// Sesión abierta actual; (nil, nil) si no hay turno en curso
func (r *CashRepository) GetOpenSession(tx *gorm.DB) (*entity.CashSession, error) {
	var s entity.CashSession
	err := tx.Where("status = ?", entity.SessionOpen).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CashRepository) GetSession(id uint) (*entity.CashSession, error) {
	var s entity.CashSession
	if err := r.DB.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *CashRepository) CreateSession(tx *gorm.DB, s *entity.CashSession) error {
	return tx.Create(s).Error
}

// Los incrementos reemplazan los RPC increment_session_* del hosting original.
// La suma se hace en Go con decimal, dentro de la transacción del caller: en
// sqlite las columnas decimal tienen afinidad NUMERIC y un `col + ?` en SQL
// acumula en flotante.

func (r *CashRepository) IncrementSales(tx *gorm.DB, sessionID uint, amount decimal.Decimal) error {
	return r.increment(tx, sessionID, "total_sales", amount)
}

func (r *CashRepository) IncrementEntry(tx *gorm.DB, sessionID uint, amount decimal.Decimal) error {
	return r.increment(tx, sessionID, "total_entry", amount)
}

func (r *CashRepository) IncrementExit(tx *gorm.DB, sessionID uint, amount decimal.Decimal) error {
	return r.increment(tx, sessionID, "total_exit", amount)
}

func (r *CashRepository) increment(tx *gorm.DB, sessionID uint, column string, amount decimal.Decimal) error {
	var s entity.CashSession
	err := tx.Where("id = ? AND status = ?", sessionID, entity.SessionOpen).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New("session not open")
	}
	if err != nil {
		return err
	}

	var current decimal.Decimal
	switch column {
	case "total_sales":
		current = s.TotalSales
	case "total_entry":
		current = s.TotalEntry
	case "total_exit":
		current = s.TotalExit
	default:
		return errors.New("unknown session column: " + column)
	}

	res := tx.Model(&entity.CashSession{}).
		Where("id = ? AND status = ?", sessionID, entity.SessionOpen).
		Update(column, current.Add(amount))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("session not open")
	}
	return nil
}

// Sella el turno: estado closed + saldo de cierre. Sin camino de vuelta.
func (r *CashRepository) CloseSession(tx *gorm.DB, sessionID uint, closingBalance decimal.Decimal, closedAt time.Time) error {
	res := tx.Model(&entity.CashSession{}).
		Where("id = ? AND status = ?", sessionID, entity.SessionOpen).
		Updates(map[string]any{
			"status":          entity.SessionClosed,
			"closing_balance": closingBalance,
			"closed_at":       closedAt,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("session not open")
	}
	return nil
}

func (r *CashRepository) CreateTransaction(tx *gorm.DB, t *entity.CashTransaction) error {
	return tx.Create(t).Error
}

func (r *CashRepository) ListTransactions(sessionID uint) ([]entity.CashTransaction, error) {
	var out []entity.CashTransaction
	err := r.DB.Where("cash_session_id = ?", sessionID).Order("id DESC").Find(&out).Error
	return out, err
}
