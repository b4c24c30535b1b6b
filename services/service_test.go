package services_test

import (
	"testing"

	"github.com/luisgarciam27/demo-churre/entity"
	"github.com/luisgarciam27/demo-churre/repository"
	"github.com/luisgarciam27/demo-churre/services"
	"github.com/shopspring/decimal"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// sqlite en memoria, una base por test (el nombre del test la aísla)
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}

	err = db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{}, &entity.ItemVariant{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.PaymentMethod{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CashSession{}, &entity.CashTransaction{},
		&entity.AppConfig{},
	)
	if err != nil {
		t.Fatalf("failed to auto-migrate: %v", err)
	}

	for _, name := range []string{"Pendiente", "Preparando", "Completado", "Cancelado"} {
		db.Create(&entity.OrderStatus{StatusName: name})
	}
	for _, name := range []string{"Efectivo", "Yape", "Plin", "Tarjeta"} {
		db.Create(&entity.PaymentMethod{MethodName: name})
	}

	return db
}

// carta chica para los tests: un sánguche simple y una bebida con variantes
func seedTestMenu(t *testing.T, db *gorm.DB) (sanguche entity.MenuItem, chicha entity.MenuItem) {
	t.Helper()

	sanguche = entity.MenuItem{
		Name:     "Pavo al Horno",
		Price:    decimal.NewFromInt(15),
		Category: "SANGUCHES",
		Tags:     []string{"desayuno", "bajada"},
	}
	if err := db.Create(&sanguche).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	chicha = entity.MenuItem{
		Name:     "Chicha de Jora",
		Price:    decimal.NewFromInt(5),
		Category: "BEBIDAS",
		Tags:     []string{"bebida"},
		Variants: []entity.ItemVariant{
			{Name: "Vaso", Price: decimal.NewFromInt(5)},
			{Name: "Jarra", Price: decimal.NewFromInt(12)},
		},
	}
	if err := db.Create(&chicha).Error; err != nil {
		t.Fatalf("seed menu: %v", err)
	}

	// recargar con variantes (IDs asignados)
	db.Preload("Variants").First(&chicha, chicha.ID)
	return sanguche, chicha
}

func newCartService(db *gorm.DB) *services.CartService {
	return services.NewCartService(db,
		repository.NewCartRepository(db),
		repository.NewMenuRepository(db),
	)
}

func newOrderService(db *gorm.DB) *services.OrderService {
	return services.NewOrderService(db,
		repository.NewOrderRepository(db),
		repository.NewCartRepository(db),
		repository.NewCashRepository(db),
		repository.NewConfigRepository(db),
		"51936494711",
	)
}

func newCashService(db *gorm.DB) *services.CashService {
	return services.NewCashService(db,
		repository.NewCashRepository(db),
		repository.NewOrderRepository(db),
	)
}
