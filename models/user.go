// user.go - Defines the User model for the database

package models // Declares the package name

import (
	"github.com/google/uuid" // Store-generated ids
	"gorm.io/gorm"           // GORM hooks
)

type User struct { // User struct represents a user in the database
	ID           string `gorm:"primaryKey;type:varchar(36)" json:"_id"` // Unique user ID (primary key)
	Username     string `gorm:"not null" json:"username"`               // Display name
	Email        string `gorm:"index;not null" json:"email"`            // Login key, not unique
	PasswordHash string `gorm:"column:password;not null" json:"-"`      // bcrypt hash, never serialized
}

// BeforeCreate assigns a fresh id to new users.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	return nil
}
