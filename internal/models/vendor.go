package models

import "time"

// Vendor owns one or more shops that fulfill pickups.
type Vendor struct {
	VendorID                string    `json:"vendorId" gorm:"primaryKey"`
	VendorName              string    `json:"vendorName"`
	VendorEmail             string    `json:"vendorEmail,omitempty" gorm:"index:idx_vendors_email,unique,where:vendor_email <> ''"`
	VendorMobile            string    `json:"vendorMobile" gorm:"uniqueIndex"`
	VendorImage             string    `json:"vendorImage,omitempty"`
	VerificationDocumentIDs []string  `json:"verificationDocumentIds" gorm:"serializer:json"`
	ShopIDs                 []string  `json:"shopIds" gorm:"serializer:json"`
	ReferredVendorIDs       []string  `json:"referredVendorIds" gorm:"serializer:json"`
	CreatedAt               time.Time `json:"createdAt"`
	UpdatedAt               time.Time `json:"updatedAt"`
}

// VendorRegistration is the registration input.
type VendorRegistration struct {
	VendorName   string `json:"vendorName"`
	VendorEmail  string `json:"vendorEmail"`
	VendorMobile string `json:"vendorMobile"`
	VendorImage  string `json:"vendorImage"`
	DeviceToken  string `json:"deviceToken"`
	DeviceType   string `json:"deviceType"`
}
