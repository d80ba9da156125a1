package models

import "time"

// Notification is the persisted copy of a push sent to a user.
type Notification struct {
	NotificationID string            `json:"notificationId" gorm:"primaryKey"`
	UserID         string            `json:"userId" gorm:"index"`
	UserType       UserType          `json:"userType"`
	Title          string            `json:"title"`
	Body           string            `json:"body"`
	Data           map[string]string `json:"data,omitempty" gorm:"serializer:json"`
	IsRead         bool              `json:"isRead"`
	CreatedAt      time.Time         `json:"createdAt"`
}
