package configs

import (
	"log"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// Crea el admin la primera vez
func SeedAdmin(cfg *Config) error {
	db := DB()
	if cfg.AdminEmail == "" || cfg.AdminPassword == "" {
		log.Println("⚠️ skip seeding admin: missing ADMIN_EMAIL/ADMIN_PASSWORD")
		return nil
	}

	var count int64
	db.Model(&entity.User{}).Where("email = ?", cfg.AdminEmail).Count(&count)
	if count > 0 {
		log.Println("ℹ️ admin already exists:", cfg.AdminEmail)
		return nil
	}

	hash, _ := bcrypt.GenerateFromPassword([]byte(cfg.AdminPassword), bcrypt.DefaultCost)
	admin := entity.User{
		Email:    cfg.AdminEmail,
		Password: string(hash),
		Name:     "Admin",
		Role:     "admin",
	}
	return db.Create(&admin).Error
}

// Seed de lookups de pedidos y métodos de pago
func SeedLookups() error {
	db := DB()

	// Estados de pedido
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Pendiente"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Preparando"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Completado"})
	db.FirstOrCreate(&entity.OrderStatus{}, entity.OrderStatus{StatusName: "Cancelado"})

	// Métodos de pago del POS
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Efectivo"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Yape"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Plin"})
	db.FirstOrCreate(&entity.PaymentMethod{}, entity.PaymentMethod{MethodName: "Tarjeta"})

	return nil
}

// Config de branding por defecto (fila única, id=1)
func SeedAppConfig(cfg *Config) error {
	db := DB()

	var count int64
	db.Model(&entity.AppConfig{}).Where("id = ?", entity.AppConfigID).Count(&count)
	if count > 0 {
		return nil
	}

	logo := "https://i.ibb.co/3mN9fL8/logo-churre.png"
	defaults := entity.AppConfig{
		ID:               entity.AppConfigID,
		Logo:             logo,
		MenuLogo:         logo,
		SelectorLogo:     logo,
		AIAvatar:         logo,
		SlideBackgrounds: []string{"https://i.ibb.co/6P2T8F7/puesto-churre.jpg"},
		WhatsAppNumber:   cfg.WhatsAppNumber,
	}
	return db.Create(&defaults).Error
}

// Carta inicial para que el local no arranque vacío
func SeedMenu() error {
	db := DB()

	var count int64
	db.Model(&entity.MenuItem{}).Count(&count)
	if count > 0 {
		return nil
	}

	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "SANGUCHES", SortOrder: 1})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "PLATOS", SortOrder: 2})
	db.FirstOrCreate(&entity.Category{}, entity.Category{Name: "BEBIDAS", SortOrder: 3})

	items := []entity.MenuItem{
		{
			Name:        "Pavo al Horno",
			Description: "Jugoso pavito al horno, acompañado de salsa criolla y mayonesa de la casa en pan francés.",
			Price:       decimal.NewFromInt(15),
			Category:    "SANGUCHES",
			Image:       "https://picsum.photos/seed/pavo/400/300",
			IsPopular:   true,
			Tags:        []string{"desayuno", "bajada", "clásico"},
		},
		{
			Name:        "Salchicha Huachana",
			Description: "Salchicha huachana al horno, con chimichurri y mayonesa casera en pan francés.",
			Price:       decimal.NewFromInt(12),
			Category:    "SANGUCHES",
			Image:       "https://picsum.photos/seed/huachana/400/300",
			IsPopular:   true,
			Tags:        []string{"desayuno", "favorito"},
		},
		{
			Name:        "Pan con Chicharrón",
			Description: "Chicharrón de chancho con sarsa criolla y camote frito en pan francés.",
			Price:       decimal.NewFromInt(14),
			Category:    "SANGUCHES",
			Image:       "https://picsum.photos/seed/chicharron/400/300",
			IsPopular:   true,
			Tags:        []string{"desayuno", "bajada", "norteño"},
		},
		{
			Name:        "Frito Piurano",
			Description: "Delicioso adobo de chanchito, acompañado de arroz amarillo, camote, plátano, tamal y encebollado.",
			Price:       decimal.NewFromInt(30),
			Category:    "PLATOS",
			Image:       "https://picsum.photos/seed/frito/400/300",
			Note:        "Solo los Domingos",
			Tags:        []string{"domingo", "desayuno", "norteño", "piurano"},
		},
		{
			Name:        "Carne Seca con Chifles",
			Description: "Lo mejor de Piura, su carne seca con chifles, acompañada de sarsa criollita.",
			Price:       decimal.NewFromInt(20),
			Category:    "PLATOS",
			Image:       "https://picsum.photos/seed/carneseca/400/300",
			Tags:        []string{"almuerzo", "piurano", "piqueo"},
			Variants: []entity.ItemVariant{
				{Name: "Personal", Price: decimal.NewFromInt(20)},
				{Name: "Para compartir", Price: decimal.NewFromInt(35)},
			},
		},
		{
			Name:        "Chicha de Jora",
			Description: "Chicha de jora tradicional, bien helada.",
			Price:       decimal.NewFromInt(5),
			Category:    "BEBIDAS",
			Image:       "https://picsum.photos/seed/chicha/400/300",
			Tags:        []string{"bebida", "norteño"},
			Variants: []entity.ItemVariant{
				{Name: "Vaso", Price: decimal.NewFromInt(5)},
				{Name: "Jarra", Price: decimal.NewFromInt(12)},
			},
		},
	}

	for i := range items {
		if err := db.Create(&items[i]).Error; err != nil {
			return err
		}
	}
	log.Println("🌱 seeded starter menu:", len(items), "items")
	return nil
}
