// Package models contains data structures for the application's domain models.
package models

import (
	"time"

	"gorm.io/gorm"
)

// User represents a registered account. Email is the login identifier.
type User struct {
	ID        uint   `gorm:"primaryKey" json:"id"`
	Email     string `gorm:"unique;not null" json:"email"`
	Username  string `gorm:"unique;not null" json:"username"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Password  string `gorm:"not null" json:"-"`
	// IsSubscribed is computed relative to the requesting user at query time.
	// Always false for anonymous requests.
	IsSubscribed bool           `gorm:"->" json:"is_subscribed"`
	CreatedAt    time.Time      `json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"`
	Recipes      []Recipe       `gorm:"foreignKey:AuthorID" json:"recipes,omitempty"`
}
