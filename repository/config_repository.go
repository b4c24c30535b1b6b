package repository

import (
	"errors"

	"github.com/luisgarciam27/demo-churre/entity"

	"gorm.io/gorm"
)

type ConfigRepository struct {
	DB *gorm.DB
}

func NewConfigRepository(db *gorm.DB) *ConfigRepository {
	return &ConfigRepository{DB: db}
}

// (nil, nil) si todavía no hay fila: el caller decide los defaults
func (r *ConfigRepository) Get() (*entity.AppConfig, error) {
	var c entity.AppConfig
	err := r.DB.First(&c, entity.AppConfigID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// El panel de diseño reescribe la fila completa
func (r *ConfigRepository) Upsert(c *entity.AppConfig) error {
	c.ID = entity.AppConfigID
	return r.DB.Save(c).Error
}
