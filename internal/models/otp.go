package models

import "time"

// UserType distinguishes the two account kinds sharing the OTP flow.
type UserType string

const (
	UserTypeCustomer UserType = "CUSTOMER"
	UserTypeVendor   UserType = "VENDOR"
)

// OTP is a one-time login code. Verified flips to true exactly once.
type OTP struct {
	OTPID     string    `json:"otpId" gorm:"primaryKey"`
	UserID    string    `json:"userId" gorm:"index"`
	UserType  UserType  `json:"userType"`
	Code      string    `json:"-"`
	ExpiresAt time.Time `json:"expiresAt"`
	Verified  bool      `json:"verified"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OTPVerification is the verify-OTP input.
type OTPVerification struct {
	OTPID       string `json:"otpId"`
	OTP         string `json:"otp"`
	DeviceToken string `json:"deviceToken"`
	DeviceType  string `json:"deviceType"`
}
