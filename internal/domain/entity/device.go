// Package entity contains the core business objects of the project.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// DeviceClass partitions a user's registered push tokens. A user holds at
// most one token per class, so re-registering a class replaces its token.
type DeviceClass string

const (
	// DeviceClassMobile is the token slot for the mobile app.
	DeviceClassMobile DeviceClass = "mobile"
	// DeviceClassWeb is the token slot for the web client.
	DeviceClassWeb DeviceClass = "web"
)

// String returns the string representation of the DeviceClass.
func (d DeviceClass) String() string {
	return string(d)
}

// IsValid checks if the DeviceClass is a valid value.
func (d DeviceClass) IsValid() bool {
	switch d {
	case DeviceClassMobile, DeviceClassWeb:
		return true
	default:
		return false
	}
}

// UserDevice represents a user's push token for one device class.
type UserDevice struct {
	ID          uuid.UUID   `json:"id"`           // The Global Unique Identifier (GUID) for the registration.
	UserID      uuid.UUID   `json:"user_id"`      // The ID of the user who owns this token.
	DeviceClass DeviceClass `json:"device_class"` // The slot this token occupies (mobile, web).
	Token       string      `json:"token"`        // Firebase Cloud Messaging token for push notifications.
	CreatedAt   time.Time   `json:"created_at"`   // Timestamp of when this token slot was first registered.
	UpdatedAt   time.Time   `json:"updated_at"`   // Timestamp of the last token replacement.
}
