package repository

import (
	"errors"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type CartRepository struct{ DB *gorm.DB }

func NewCartRepository(db *gorm.DB) *CartRepository { return &CartRepository{DB: db} }

// Devuelve el carrito del cliente; si no hay, uno vacío sin error para que
// el front pueda pintar "carrito vacío" sin caso especial.
func (r *CartRepository) GetCartWithItems(clientKey string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("client_key = ?", clientKey).
		Preload("Items").
		First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &entity.Cart{ClientKey: clientKey}, nil
	}
	return &c, err
}

func (r *CartRepository) GetOrCreateCart(clientKey string) (*entity.Cart, error) {
	var c entity.Cart
	err := r.DB.Where("client_key = ?", clientKey).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		c = entity.Cart{ClientKey: clientKey}
		if err := r.DB.Create(&c).Error; err != nil {
			return nil, err
		}
		return &c, nil
	}
	return &c, err
}

// Fusiona por (menu_item_id, variant_id): misma dupla suma cantidad, cualquier
// otra abre línea nueva.
func (r *CartRepository) UpsertItem(tx *gorm.DB, cartID uint, row *entity.CartItem) error {
	var exist entity.CartItem
	err := tx.Where("cart_id = ? AND menu_item_id = ? AND variant_id = ?",
		cartID, row.MenuItemID, row.VariantID).
		First(&exist).Error
	if err == nil {
		exist.Qty += row.Qty
		exist.Total = exist.UnitPrice.Mul(decimal.NewFromInt(int64(exist.Qty)))
		return tx.Save(&exist).Error
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return err
	}

	row.CartID = cartID
	return tx.Create(row).Error
}

// El total se calcula en Go con decimal; multiplicar en SQL sobre la columna
// NUMERIC de sqlite sale en flotante.
func (r *CartRepository) SetQty(tx *gorm.DB, clientKey string, itemID uint, qty int) error {
	var it entity.CartItem
	err := tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE client_key = ?)", itemID, clientKey).
		First(&it).Error
	if err != nil {
		return err
	}
	return tx.Model(&it).Updates(map[string]any{
		"qty":   qty,
		"total": it.UnitPrice.Mul(decimal.NewFromInt(int64(qty))),
	}).Error
}

func (r *CartRepository) GetItem(clientKey string, itemID uint) (*entity.CartItem, error) {
	var it entity.CartItem
	err := r.DB.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE client_key = ?)", itemID, clientKey).
		First(&it).Error
	if err != nil {
		return nil, err
	}
	return &it, nil
}

func (r *CartRepository) RemoveItem(tx *gorm.DB, clientKey string, itemID uint) error {
	return tx.
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE client_key = ?)", itemID, clientKey).
		Delete(&entity.CartItem{}).Error
}

func (r *CartRepository) ClearCart(tx *gorm.DB, clientKey string) error {
	var c entity.Cart
	if err := tx.Where("client_key = ?", clientKey).First(&c).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil
		}
		return err
	}
	return tx.Where("cart_id = ?", c.ID).Delete(&entity.CartItem{}).Error
}
