package entity

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type MenuItem struct {
	gorm.Model
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price" gorm:"type:decimal(10,2)"`

	// Categoría por nombre (denormalizado): borrar la categoría NO borra sus platos
	Category string `json:"category" gorm:"index"`

	Image string `json:"image"`
	Note  string `json:"note"`

	IsPopular bool `json:"isPopular"`
	IsCombo   bool `json:"isCombo"`

	ComboItems []string `json:"comboItems" gorm:"serializer:json"`
	Tags       []string `json:"tags" gorm:"serializer:json"`

	// preload siempre: el precio efectivo depende de la variante elegida
	Variants []ItemVariant `json:"variants" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}

// EffectivePrice devuelve el precio de la variante si hay una seleccionada,
// si no el precio base del plato.
func (m *MenuItem) EffectivePrice(variantID uint) decimal.Decimal {
	if variantID != 0 {
		for _, v := range m.Variants {
			if v.ID == variantID {
				return v.Price
			}
		}
	}
	return m.Price
}

// HasTag reporta si el plato lleva el tag dado (ej. "desayuno").
func (m *MenuItem) HasTag(tag string) bool {
	for _, t := range m.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
