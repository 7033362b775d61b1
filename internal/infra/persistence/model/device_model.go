package model

import (
	"time"

	"github.com/google/uuid"
)

// UserDeviceModel is the GORM-specific struct for the 'user_devices' table.
// The composite unique index enforces one token per (user, device class);
// registrations are hard-deleted on revoke.
type UserDeviceModel struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_device_class"`
	DeviceClass string    `gorm:"type:varchar(20);not null;uniqueIndex:idx_user_device_class"`
	Token       string    `gorm:"type:varchar(255);not null;index"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TableName explicitly sets the table name for GORM.
func (UserDeviceModel) TableName() string {
	return "user_devices"
}
