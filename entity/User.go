package entity

import (
	"gorm.io/gorm"
)

// Personal del local (admin / cajero). Los comensales no tienen cuenta.
type User struct {
	gorm.Model
	Email    string `json:"email" gorm:"uniqueIndex"`
	Password string `json:"-"`
	Name     string `json:"name"`
	Role     string `json:"role"` // admin | cajero
}
