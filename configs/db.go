package configs

import (
	"github.com/luisgarciam27/demo-churre/entity"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var db *gorm.DB

func DB() *gorm.DB {
	return db
}

func ConnectionDB(dsn string) {
	database, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		panic("failed to connect database")
	}
	db = database
}

func SetupDatabase() {

	// Migrate the schema
	db.AutoMigrate(
		&entity.User{},
		&entity.Category{}, &entity.MenuItem{}, &entity.ItemVariant{},
		&entity.Cart{}, &entity.CartItem{},
		&entity.OrderStatus{}, &entity.PaymentMethod{},
		&entity.Order{}, &entity.OrderItem{},
		&entity.CashSession{}, &entity.CashTransaction{},
		&entity.AppConfig{},
	)
}
