// Package model contains the GORM-specific structs mapping the database schema.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel is the GORM-specific struct for the 'users' table.
// Preference lists are stored comma-joined, matching the legacy schema.
type UserModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email               string    `gorm:"type:varchar(255);not null;uniqueIndex"`
	Name                string    `gorm:"type:varchar(100);not null"`
	Allergies           string    `gorm:"type:text"`
	FavoriteMenus       string    `gorm:"type:text"`
	AllowNotifications  bool      `gorm:"not null;default:true"`
	AllowAllergyAlerts  bool      `gorm:"not null;default:true"`
	AllowFavoriteAlerts bool      `gorm:"not null;default:true"`
	CreatedAt           time.Time
	UpdatedAt           time.Time
	DeletedAt           gorm.DeletedAt `gorm:"index"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}
