package models

import (
	"time"

	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
)

// PickupStatus is the booking lifecycle state.
type PickupStatus string

const (
	StatusPending    PickupStatus = "PENDING"
	StatusRequested  PickupStatus = "REQUESTED"
	StatusAccepted   PickupStatus = "ACCEPTED"
	StatusInProgress PickupStatus = "IN_PROGRESS"
	StatusCompleted  PickupStatus = "COMPLETED"
	StatusCancelled  PickupStatus = "CANCELLED"
)

// ScrapSize buckets the approximate pickup volume.
type ScrapSize string

const (
	ScrapSizeSmall      ScrapSize = "SMALL"
	ScrapSizeMedium     ScrapSize = "MEDIUM"
	ScrapSizeLarge      ScrapSize = "LARGE"
	ScrapSizeExtraLarge ScrapSize = "EXTRA_LARGE"
)

// ValidScrapSize reports whether s is one of the known size buckets.
func ValidScrapSize(s ScrapSize) bool {
	switch s {
	case ScrapSizeSmall, ScrapSizeMedium, ScrapSizeLarge, ScrapSizeExtraLarge:
		return true
	}
	return false
}

// PickupLocation is where the scrap is collected from.
type PickupLocation struct {
	Coordinates     geo.Coordinate `json:"coordinates" gorm:"embedded"`
	CompleteAddress string         `json:"completeAddress"`
}

// ScrapSold records the exact scrap handed over at completion.
type ScrapSold struct {
	ScrapID string  `json:"scrapId"`
	Weight  float64 `json:"weight"`
}

// Booking represents a scheduled scrap pickup.
type Booking struct {
	BookingID         string         `json:"bookingId" gorm:"primaryKey"`
	CustomerID        string         `json:"customerId" gorm:"index"`
	ShopID            string         `json:"shopId,omitempty"`
	ScheduledDateTime time.Time      `json:"scheduledDateTime"`
	ScrapTypes        []string       `json:"scrapTypes" gorm:"serializer:json"`
	ScrapSize         ScrapSize      `json:"scrapSize"`
	ScrapImage        string         `json:"scrapImage,omitempty"`
	PickupLocation    PickupLocation `json:"pickupLocation" gorm:"embedded;embeddedPrefix:pickup_"`
	PickupStatus      PickupStatus   `json:"pickupStatus" gorm:"index"`

	Earnings       float64     `json:"earnings"`
	TotalAmount    float64     `json:"totalAmount,omitempty"`
	ExactScrapSold []ScrapSold `json:"exactScrapSold" gorm:"serializer:json"`

	// Shop ids notified at creation; never mutated afterwards.
	NearbyShopsNotified []string `json:"nearbyShopsNotified" gorm:"serializer:json"`

	RequestedAt             time.Time  `json:"requestedAt"`
	AcceptedAt              *time.Time `json:"acceptedAt,omitempty"`
	StartedAt               *time.Time `json:"startedAt,omitempty"`
	EstimatedCompletionTime *time.Time `json:"estimatedCompletionTime,omitempty"`
	CompletedAt             *time.Time `json:"completedAt,omitempty"`
	CancelledAt             *time.Time `json:"cancelledAt,omitempty"`
	CancelReason            string     `json:"cancelReason,omitempty"`

	Rating   int    `json:"rating,omitempty"`
	Feedback string `json:"feedback,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PickupRequest is the schedule-pickup input.
type PickupRequest struct {
	CustomerID        string         `json:"customerId"`
	ScheduledDateTime time.Time      `json:"scheduledDateTime"`
	ScrapTypes        []string       `json:"scrapTypes"`
	ScrapSize         ScrapSize      `json:"scrapSize"`
	ScrapImage        string         `json:"scrapImage"`
	PickupLocation    PickupLocation `json:"pickupLocation"`
}

// BookingStatusUpdate is the typed command applied on a status transition.
// Only the timestamps relevant to the new status are set.
type BookingStatusUpdate struct {
	Status                  PickupStatus
	AcceptedAt              *time.Time
	StartedAt               *time.Time
	EstimatedCompletionTime *time.Time
	CompletedAt             *time.Time
	CancelledAt             *time.Time
	CancelReason            string
}

// BookingRating attaches a rating to a completed booking.
type BookingRating struct {
	Rating   int
	Feedback string
}
