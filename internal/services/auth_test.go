package services

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

const testJWTSecret = "test-secret"

func newAuthService(store storage.Store, sms SMSSender) *AuthService {
	return NewAuthService(store, NewOTPService(store, sms), testJWTSecret)
}

func TestRegisterCustomer(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	customer, err := svc.RegisterCustomer(&models.CustomerRegistration{
		CustomerName:   "Alice Smith",
		CustomerMobile: "9876543210",
		CustomerEmail:  "alice@example.com",
		Addresses: []models.AddressInput{
			{
				Coordinates:     geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714},
				CompleteAddress: "CG Road, Ahmedabad",
			},
		},
		DeviceToken: "token-1",
		DeviceType:  "ios",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, customer.CustomerID)
	require.Len(t, customer.CustomerSavedAddresses, 1)

	address, err := store.GetAddress(customer.CustomerSavedAddresses[0])
	require.NoError(t, err)
	assert.Equal(t, customer.CustomerID, address.CustomerID)

	tokens, err := store.GetDeviceTokens(customer.CustomerID, models.UserTypeCustomer)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestRegisterCustomerDuplicateMobile(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	reg := &models.CustomerRegistration{CustomerName: "Alice", CustomerMobile: "9876543210"}
	_, err := svc.RegisterCustomer(reg)
	require.NoError(t, err)

	_, err = svc.RegisterCustomer(reg)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRegisterCustomerDuplicateEmail(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	_, err := svc.RegisterCustomer(&models.CustomerRegistration{
		CustomerName: "Alice", CustomerMobile: "9876543210", CustomerEmail: "alice@example.com",
	})
	require.NoError(t, err)

	_, err = svc.RegisterCustomer(&models.CustomerRegistration{
		CustomerName: "Other Alice", CustomerMobile: "9876543211", CustomerEmail: "alice@example.com",
	})
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestRegisterCustomerMissingFields(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	_, err := svc.RegisterCustomer(&models.CustomerRegistration{CustomerName: "Alice"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestRegisterVendor(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	vendor, err := svc.RegisterVendor(&models.VendorRegistration{
		VendorName:   "John's Recycling",
		VendorMobile: "9876543220",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, vendor.VendorID)
	assert.Empty(t, vendor.ShopIDs)
}

func TestRegisterVendorDuplicateMobile(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	reg := &models.VendorRegistration{VendorName: "John", VendorMobile: "9876543220"}
	_, err := svc.RegisterVendor(reg)
	require.NoError(t, err)

	_, err = svc.RegisterVendor(reg)
	assert.True(t, apperr.IsKind(err, apperr.KindConflict))
}

func TestCustomerLoginFlow(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, &fakeSMS{})

	customer, err := svc.RegisterCustomer(&models.CustomerRegistration{
		CustomerName: "Alice", CustomerMobile: "9876543210",
	})
	require.NoError(t, err)

	otpID, err := svc.CustomerLogin("9876543210")
	require.NoError(t, err)
	require.NotEmpty(t, otpID)

	otp, err := store.GetOTP(otpID)
	require.NoError(t, err)
	assert.Equal(t, customer.CustomerID, otp.UserID)
	assert.Equal(t, models.UserTypeCustomer, otp.UserType)

	result, err := svc.VerifyOTP(&models.OTPVerification{
		OTPID:       otpID,
		OTP:         otp.Code,
		DeviceToken: "token-2",
		DeviceType:  "android",
	})
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeCustomer, result.UserType)
	require.NotEmpty(t, result.SessionToken)

	got, ok := result.User.(*models.Customer)
	require.True(t, ok)
	assert.Equal(t, customer.CustomerID, got.CustomerID)

	tokens, err := store.GetDeviceTokens(customer.CustomerID, models.UserTypeCustomer)
	require.NoError(t, err)
	assert.Len(t, tokens, 1)
}

func TestVendorLoginFlow(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	vendor, err := svc.RegisterVendor(&models.VendorRegistration{
		VendorName: "John", VendorMobile: "9876543220",
	})
	require.NoError(t, err)

	otpID, err := svc.VendorLogin("9876543220")
	require.NoError(t, err)

	otp, err := store.GetOTP(otpID)
	require.NoError(t, err)

	result, err := svc.VerifyOTP(&models.OTPVerification{OTPID: otpID, OTP: otp.Code})
	require.NoError(t, err)
	assert.Equal(t, models.UserTypeVendor, result.UserType)

	got, ok := result.User.(*models.Vendor)
	require.True(t, ok)
	assert.Equal(t, vendor.VendorID, got.VendorID)
}

func TestLoginUnregisteredMobile(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	_, err := svc.CustomerLogin("0000000000")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))

	_, err = svc.VendorLogin("0000000000")
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestVerifyOTPMissingFields(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	_, err := svc.VerifyOTP(&models.OTPVerification{OTPID: "", OTP: "123456"})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestSessionTokenClaims(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := newAuthService(store, nil)

	customer, err := svc.RegisterCustomer(&models.CustomerRegistration{
		CustomerName: "Alice", CustomerMobile: "9876543210",
	})
	require.NoError(t, err)

	otpID, err := svc.CustomerLogin("9876543210")
	require.NoError(t, err)
	otp, err := store.GetOTP(otpID)
	require.NoError(t, err)

	result, err := svc.VerifyOTP(&models.OTPVerification{OTPID: otpID, OTP: otp.Code})
	require.NoError(t, err)

	parsed, err := jwt.Parse(result.SessionToken, func(token *jwt.Token) (interface{}, error) {
		return []byte(testJWTSecret), nil
	})
	require.NoError(t, err)
	require.True(t, parsed.Valid)

	claims, ok := parsed.Claims.(jwt.MapClaims)
	require.True(t, ok)
	assert.Equal(t, customer.CustomerID, claims["sub"])
	assert.Equal(t, string(models.UserTypeCustomer), claims["userType"])
	assert.NotNil(t, claims["exp"])
}
