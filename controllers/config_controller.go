package controllers

import (
	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/pkg/resp"
	"github.com/luisgarciam27/demo-churre/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type ConfigController struct {
	Repo *repository.ConfigRepository

	// respaldo si la fila de config no existe todavía
	FallbackWhatsApp string
}

func NewConfigController(db *gorm.DB, fallbackWhatsApp string) *ConfigController {
	return &ConfigController{
		Repo:             repository.NewConfigRepository(db),
		FallbackWhatsApp: fallbackWhatsApp,
	}
}

// GET /config: branding, número de WhatsApp, QR de pago; con defaults si
// nadie configuró nada aún
func (h *ConfigController) Get(c *gin.Context) {
	cfg, err := h.Repo.Get()
	if err != nil {
		resp.ServerError(c, err)
		return
	}
	if cfg == nil {
		logo := "https://i.ibb.co/3mN9fL8/logo-churre.png"
		cfg = &entity.AppConfig{
			ID:               entity.AppConfigID,
			Logo:             logo,
			MenuLogo:         logo,
			SelectorLogo:     logo,
			AIAvatar:         logo,
			SlideBackgrounds: []string{"https://i.ibb.co/6P2T8F7/puesto-churre.jpg"},
			WhatsAppNumber:   h.FallbackWhatsApp,
		}
	}
	resp.OK(c, cfg)
}

// PUT /admin/config: el panel de diseño reescribe la fila completa
func (h *ConfigController) Update(c *gin.Context) {
	var req entity.AppConfig
	if err := c.ShouldBindJSON(&req); err != nil {
		resp.BadRequest(c, err.Error())
		return
	}
	if err := h.Repo.Upsert(&req); err != nil {
		resp.ServerError(c, err)
		return
	}
	resp.OK(c, req)
}
