package models

import "time"

// DeviceToken links a user to a push-notification token.
type DeviceToken struct {
	TokenID    string    `json:"tokenId" gorm:"primaryKey"`
	UserID     string    `json:"userId" gorm:"index"`
	UserType   UserType  `json:"userType"`
	Token      string    `json:"token"`
	DeviceType string    `json:"deviceType"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}
