package models

import "time"

// Customer is a scrap seller requesting pickups.
type Customer struct {
	CustomerID             string    `json:"customerId" gorm:"primaryKey"`
	CustomerName           string    `json:"customerName"`
	CustomerEmail          string    `json:"customerEmail,omitempty" gorm:"index:idx_customers_email,unique,where:customer_email <> ''"`
	CustomerMobile         string    `json:"customerMobile" gorm:"uniqueIndex"`
	CustomerSavedAddresses []string  `json:"customerSavedAddresses" gorm:"serializer:json"`
	IsVerified             bool      `json:"isVerified"`
	CreatedAt              time.Time `json:"createdAt"`
	UpdatedAt              time.Time `json:"updatedAt"`
}

// CustomerRegistration is the registration input.
type CustomerRegistration struct {
	CustomerName   string         `json:"customerName"`
	CustomerEmail  string         `json:"customerEmail"`
	CustomerMobile string         `json:"customerMobile"`
	Addresses      []AddressInput `json:"addresses"`
	DeviceToken    string         `json:"deviceToken"`
	DeviceType     string         `json:"deviceType"`
}
