// product.go - Defines the Product model

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Product struct {
	ID          string `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	ProductName string `gorm:"not null" json:"product_name"`
	Description string `gorm:"not null" json:"description"`
}

func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	return nil
}
