package entity

import (
	"gorm.io/gorm"
)

// Cart es scratch-state de un pedido en curso. El dueño real de los datos es
// la base; el carrito vive solo hasta el checkout/cobro y ahí se limpia.
// ClientKey identifica al cliente (sesión web anónima o terminal POS).
type Cart struct {
	gorm.Model
	ClientKey string `json:"clientKey" gorm:"uniqueIndex"`

	Items []CartItem `json:"items" gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
