package models

import "time"

// ShopLevel is the vendor tier for a shop.
type ShopLevel string

const (
	ShopLevelBronze ShopLevel = "BRONZE"
	ShopLevelSilver ShopLevel = "SILVER"
	ShopLevelGold   ShopLevel = "GOLD"
)

// Shop is a vendor-operated location that can fulfill pickups.
// ShopLocation references the shop's Address document.
type Shop struct {
	ShopID                string    `json:"shopId" gorm:"primaryKey"`
	ShopName              string    `json:"shopName"`
	ShopLocation          string    `json:"shopLocation"`
	VendorID              string    `json:"vendorId" gorm:"index"`
	ShopsDocumentID       string    `json:"shopsDocumentId,omitempty"`
	ShopLevel             ShopLevel `json:"shopLevel"`
	TotalShopSaleTillDate float64   `json:"totalShopSaleTillDate"`
	CreatedAt             time.Time `json:"createdAt"`
	UpdatedAt             time.Time `json:"updatedAt"`
}

// ShopRegistration is the add-shop input.
type ShopRegistration struct {
	VendorID        string       `json:"vendorId"`
	ShopName        string       `json:"shopName"`
	ShopAddress     AddressInput `json:"shopAddress"`
	ShopsDocumentID string       `json:"shopsDocumentId"`
}

// ShopUpdate enumerates the shop fields that may change after creation.
type ShopUpdate struct {
	ShopName        string `json:"shopName"`
	ShopsDocumentID string `json:"shopsDocumentId"`
}
