package services

import (
	"errors"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/shopspring/decimal"

	"gorm.io/gorm"
)

type CartService struct {
	DB       *gorm.DB
	CartRepo *repository.CartRepository
	MenuRepo *repository.MenuRepository
}

func NewCartService(db *gorm.DB, cr *repository.CartRepository, mr *repository.MenuRepository) *CartService {
	return &CartService{DB: db, CartRepo: cr, MenuRepo: mr}
}

type AddToCartIn struct {
	MenuItemID uint `json:"menuItemId" binding:"required"`
	VariantID  uint `json:"variantId"` // 0 = sin variante
	Qty        int  `json:"qty" binding:"min=0"`
}

// Get devuelve el carrito y su total. El total se recalcula SIEMPRE desde las
// líneas (precio unitario × cantidad), nunca se guarda un acumulado aparte.
func (s *CartService) Get(clientKey string) (*entity.Cart, decimal.Decimal, error) {
	c, err := s.CartRepo.GetCartWithItems(clientKey)
	if err != nil {
		return nil, decimal.Zero, err
	}
	total := decimal.Zero
	for _, it := range c.Items {
		total = total.Add(it.UnitPrice.Mul(decimal.NewFromInt(int64(it.Qty))))
	}
	return c, total, nil
}

func (s *CartService) Add(clientKey string, in *AddToCartIn) error {
	if in.Qty <= 0 {
		in.Qty = 1
	}

	c, err := s.CartRepo.GetOrCreateCart(clientKey)
	if err != nil {
		return err
	}

	m, err := s.MenuRepo.Get(in.MenuItemID)
	if err != nil {
		return err
	}

	// con variante: debe existir y su precio manda sobre el precio base
	variantName := ""
	if in.VariantID != 0 {
		found := false
		for _, v := range m.Variants {
			if v.ID == in.VariantID {
				variantName = v.Name
				found = true
				break
			}
		}
		if !found {
			return errors.New("invalid variant")
		}
	}
	unit := m.EffectivePrice(in.VariantID)

	line := &entity.CartItem{
		MenuItemID:  m.ID,
		VariantID:   in.VariantID,
		ItemName:    m.Name,
		VariantName: variantName,
		UnitPrice:   unit,
		Qty:         in.Qty,
		Total:       unit.Mul(decimal.NewFromInt(int64(in.Qty))),
	}

	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.UpsertItem(tx, c.ID, line)
	})
}

// UpdateQty aplica un delta con piso en 1: bajar de 1 no borra la línea,
// quitar un plato es siempre la acción explícita de RemoveItem. (La política
// es una sola para la carta web y el POS.)
func (s *CartService) UpdateQty(clientKey string, itemID uint, delta int) error {
	it, err := s.CartRepo.GetItem(clientKey, itemID)
	if err != nil {
		return err
	}
	qty := it.Qty + delta
	if qty < 1 {
		qty = 1
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.SetQty(tx, clientKey, itemID, qty)
	})
}

func (s *CartService) RemoveItem(clientKey string, itemID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.RemoveItem(tx, clientKey, itemID)
	})
}

func (s *CartService) Clear(clientKey string) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		return s.CartRepo.ClearCart(tx, clientKey)
	})
}
