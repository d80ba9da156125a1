package models

import (
	"time"

	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
)

// Address is owned by exactly one of customer or shop via the optional
// back-references.
type Address struct {
	AddressID          string         `json:"addressId" gorm:"primaryKey"`
	AddressCoordinates geo.Coordinate `json:"addressCoordinates" gorm:"embedded"`
	CompleteAddress    string         `json:"completeAddress"`
	CustomerID         string         `json:"customerId,omitempty" gorm:"index"`
	ShopID             string         `json:"shopId,omitempty" gorm:"index"`
	CreatedAt          time.Time      `json:"createdAt"`
	UpdatedAt          time.Time      `json:"updatedAt"`
}

// AddressInput is the address payload used at registration and add-shop.
type AddressInput struct {
	Coordinates     geo.Coordinate `json:"coordinates"`
	CompleteAddress string         `json:"completeAddress"`
}
