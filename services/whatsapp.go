package services

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/luisgarciam27/demo-churre/entity"
)

// BuildWhatsAppLink arma el deep link wa.me con el resumen del pedido.
// Es un redirect fire-and-forget: nadie confirma que el mensaje llegó.
func BuildWhatsAppLink(number string, order *entity.Order) string {
	typeLabel := "🏠 RECOJO"
	addressInfo := ""
	if order.Modality == entity.ModalityDelivery {
		typeLabel = "🛵 DELIVERY"
		addressInfo = fmt.Sprintf("\n📍 *Dirección:* %s", order.Address)
	}

	var lines []string
	for _, it := range order.Items {
		line := fmt.Sprintf("- %dx %s", it.Qty, it.Name)
		if it.VariantName != "" {
			line += fmt.Sprintf(" (%s)", it.VariantName)
		}
		lines = append(lines, line)
	}

	message := fmt.Sprintf("¡Hola Churre! 🌶️\nPedido de: *%s*\nPara: *%s*%s\n\n%s\n\n💰 *Total: S/ %s*",
		order.CustomerName,
		typeLabel,
		addressInfo,
		strings.Join(lines, "\n"),
		order.Total.StringFixed(2),
	)

	return fmt.Sprintf("https://wa.me/%s?text=%s", cleanNumber(number), url.QueryEscape(message))
}

// solo dígitos, como exige wa.me
func cleanNumber(number string) string {
	var b strings.Builder
	for _, r := range number {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
