// review.go - Defines the Review model

package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Review belongs to a product by id only; there is no foreign key, so reviews
// outlive the product they point to.
type Review struct {
	ID         string `gorm:"primaryKey;type:varchar(36)" json:"_id"`
	ProductID  string `gorm:"index;not null" json:"productId"`
	ReviewText string `gorm:"not null" json:"reviewText"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	return nil
}
