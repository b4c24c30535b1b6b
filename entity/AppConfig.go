package entity

import (
	"time"
)

// AppConfig es un singleton (ID fijo = 1): branding, número de WhatsApp para
// el checkout por mensaje y datos del QR de pago. El panel admin lo reescribe
// completo; nunca hay más de una fila.
type AppConfig struct {
	ID uint `json:"-" gorm:"primaryKey"`

	Logo         string `json:"logo"`
	MenuLogo     string `json:"menuLogo"`
	SelectorLogo string `json:"selectorLogo"`
	AIAvatar     string `json:"aiAvatar"`

	SlideBackgrounds []string `json:"slideBackgrounds" gorm:"serializer:json"`
	MenuBackground   string   `json:"menuBackground"`

	WhatsAppNumber string `json:"whatsappNumber"`

	Facebook  string `json:"facebook"`
	Instagram string `json:"instagram"`
	TikTok    string `json:"tiktok"`

	PaymentQR   string `json:"paymentQr"`
	PaymentName string `json:"paymentName"`

	UpdatedAt time.Time `json:"-"`
}

const AppConfigID = 1
