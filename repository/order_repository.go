package repository

import (
	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type OrderRepository struct {
	DB *gorm.DB
}

func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{DB: db}
}

func (r *OrderRepository) GetStatusIDByName(name string) (uint, error) {
	var st entity.OrderStatus
	if err := r.DB.Where("status_name = ?", name).First(&st).Error; err != nil {
		return 0, err
	}
	return st.ID, nil
}

func (r *OrderRepository) GetMethodIDByName(name string) (uint, error) {
	var m entity.PaymentMethod
	if err := r.DB.Where("method_name = ?", name).First(&m).Error; err != nil {
		return 0, err
	}
	return m.ID, nil
}

// ---------------- Orders ----------------

func (r *OrderRepository) CreateOrder(tx *gorm.DB, o *entity.Order) error {
	return tx.Create(o).Error
}

func (r *OrderRepository) GetOrder(orderID uint) (*entity.Order, error) {
	var o entity.Order
	err := r.DB.
		Preload("Items").
		Preload("OrderStatus").
		Preload("PaymentMethod").
		First(&o, orderID).Error
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Cola de pedidos del POS: filtro por estado opcional, lo último arriba
func (r *OrderRepository) List(statusID uint, limit int) ([]entity.Order, error) {
	if limit <= 0 {
		limit = 100
	}
	q := r.DB.
		Preload("Items").
		Preload("OrderStatus").
		Preload("PaymentMethod").
		Order("id DESC").Limit(limit)
	if statusID != 0 {
		q = q.Where("order_status_id = ?", statusID)
	}
	var out []entity.Order
	err := q.Find(&out).Error
	return out, err
}

// Cambio de estado con guard: solo pasa si el pedido sigue en `from`.
// affected == 0 significa transición inválida o carrera perdida.
func (r *OrderRepository) UpdateStatusGuard(tx *gorm.DB, orderID, from, to uint) (int64, error) {
	res := tx.Model(&entity.Order{}).
		Where("id = ? AND order_status_id = ?", orderID, from).
		Update("order_status_id", to)
	return res.RowsAffected, res.Error
}

// ---------------- Por sesión de caja ----------------

func (r *OrderRepository) ListBySession(sessionID uint) ([]entity.Order, error) {
	var out []entity.Order
	err := r.DB.
		Preload("Items").
		Preload("PaymentMethod").
		Where("cash_session_id = ?", sessionID).
		Order("id DESC").
		Find(&out).Error
	return out, err
}

// Suma de ventas de la sesión por método de pago (para el arqueo: solo
// "Efectivo" cuenta para el efectivo esperado en gaveta). Se suma en Go con
// decimal: un SUM de sqlite sobre columnas NUMERIC acumula en flotante.
func (r *OrderRepository) SumBySessionAndMethod(sessionID, methodID uint) (decimal.Decimal, error) {
	var totals []decimal.Decimal
	err := r.DB.Model(&entity.Order{}).
		Where("cash_session_id = ? AND payment_method_id = ?", sessionID, methodID).
		Pluck("total", &totals).Error
	if err != nil {
		return decimal.Zero, err
	}
	sum := decimal.Zero
	for _, t := range totals {
		sum = sum.Add(t)
	}
	return sum, nil
}
