package services

import (
	"log"
	"time"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
	"github.com/scrapiteazy/scrapeazy-backend/internal/utils"
)

// otpTTL is how long an issued code stays valid.
const otpTTL = 5 * time.Minute

// SMSSender dispatches a one-time code over SMS.
type SMSSender interface {
	SendOTP(mobile, code string) error
}

// OTPService issues and verifies one-time login codes.
type OTPService struct {
	store storage.Store
	sms   SMSSender
}

// NewOTPService creates an OTP service. sms may be nil in development; codes
// are then persisted but not delivered.
func NewOTPService(store storage.Store, sms SMSSender) *OTPService {
	return &OTPService{store: store, sms: sms}
}

// Issue generates a code for the user, persists it unverified with a
// 5-minute expiry and dispatches it over SMS. The record is persisted before
// dispatch: on delivery failure it remains usable and the caller gets a
// delivery error.
func (s *OTPService) Issue(userID string, userType models.UserType, mobile string) (*models.OTP, error) {
	code, err := utils.GenerateOTP()
	if err != nil {
		return nil, apperr.Internal(err, "failed to generate OTP")
	}

	otp, err := s.store.CreateOTP(&models.OTP{
		UserID:    userID,
		UserType:  userType,
		Code:      code,
		ExpiresAt: time.Now().Add(otpTTL),
	})
	if err != nil {
		return nil, err
	}

	if s.sms == nil {
		log.Printf("SMS delivery not configured; OTP for user %s not sent", userID)
		return otp, nil
	}
	if err := s.sms.SendOTP(mobile, code); err != nil {
		log.Printf("failed to send OTP to %s: %v", mobile, err)
		return otp, apperr.Unavailable("failed to send OTP. Please try again.").WithCode(500)
	}
	return otp, nil
}

// Verify consumes a code. Single-use: a second verification of the same
// otpId fails even if the first succeeded, enforced by the store's
// conditional update.
func (s *OTPService) Verify(otpID, code string) (*models.OTP, error) {
	otp, err := s.store.GetOTP(otpID)
	if err != nil {
		return nil, err
	}

	if !time.Now().Before(otp.ExpiresAt) {
		return nil, apperr.Unavailable("OTP has expired")
	}
	if otp.Verified {
		return nil, apperr.Conflict("OTP already used")
	}
	if otp.Code != code {
		return nil, apperr.Validation("invalid OTP")
	}

	if err := s.store.MarkOTPVerified(otpID); err != nil {
		return nil, err
	}
	return otp, nil
}
