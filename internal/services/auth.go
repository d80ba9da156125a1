package services

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// sessionTTL is how long an issued session token stays valid.
const sessionTTL = 30 * 24 * time.Hour

// AuthResult is returned on a successful OTP verification.
type AuthResult struct {
	User         interface{}     `json:"user"`
	UserType     models.UserType `json:"userType"`
	SessionToken string          `json:"sessionToken"`
}

// AuthService handles registration, OTP login and verification for both
// customers and vendors.
type AuthService struct {
	store     storage.Store
	otp       *OTPService
	jwtSecret string
}

// NewAuthService creates an auth service.
func NewAuthService(store storage.Store, otp *OTPService, jwtSecret string) *AuthService {
	return &AuthService{store: store, otp: otp, jwtSecret: jwtSecret}
}

// RegisterCustomer creates a customer with optional saved addresses and an
// optional device token. Mobile and email must be unused.
func (s *AuthService) RegisterCustomer(reg *models.CustomerRegistration) (*models.Customer, error) {
	if reg.CustomerName == "" || reg.CustomerMobile == "" {
		return nil, apperr.Validation("missing required fields")
	}
	if reg.CustomerEmail != "" {
		if _, err := s.store.GetCustomerByEmail(reg.CustomerEmail); err == nil {
			return nil, apperr.Conflict("customer with this email already exists")
		}
	}
	if _, err := s.store.GetCustomerByMobile(reg.CustomerMobile); err == nil {
		return nil, apperr.Conflict("customer with this mobile already exists")
	}

	customer, err := s.store.CreateCustomer(&models.Customer{
		CustomerName:           reg.CustomerName,
		CustomerEmail:          reg.CustomerEmail,
		CustomerMobile:         reg.CustomerMobile,
		CustomerSavedAddresses: []string{},
	})
	if err != nil {
		return nil, err
	}

	for _, input := range reg.Addresses {
		address, err := s.store.CreateAddress(&models.Address{
			AddressCoordinates: input.Coordinates,
			CompleteAddress:    input.CompleteAddress,
			CustomerID:         customer.CustomerID,
		})
		if err != nil {
			return nil, err
		}
		customer.CustomerSavedAddresses = append(customer.CustomerSavedAddresses, address.AddressID)
	}
	if len(customer.CustomerSavedAddresses) > 0 {
		if err := s.store.UpdateCustomer(customer); err != nil {
			return nil, err
		}
	}

	if err := s.registerDeviceToken(customer.CustomerID, models.UserTypeCustomer, reg.DeviceToken, reg.DeviceType); err != nil {
		return nil, err
	}
	return customer, nil
}

// RegisterVendor creates a vendor with an optional device token. Mobile and
// email must be unused.
func (s *AuthService) RegisterVendor(reg *models.VendorRegistration) (*models.Vendor, error) {
	if reg.VendorName == "" || reg.VendorMobile == "" {
		return nil, apperr.Validation("missing required fields")
	}
	if reg.VendorEmail != "" {
		if _, err := s.store.GetVendorByEmail(reg.VendorEmail); err == nil {
			return nil, apperr.Conflict("vendor with this email already exists")
		}
	}
	if _, err := s.store.GetVendorByMobile(reg.VendorMobile); err == nil {
		return nil, apperr.Conflict("vendor with this mobile already exists")
	}

	vendor, err := s.store.CreateVendor(&models.Vendor{
		VendorName:              reg.VendorName,
		VendorEmail:             reg.VendorEmail,
		VendorMobile:            reg.VendorMobile,
		VendorImage:             reg.VendorImage,
		VerificationDocumentIDs: []string{},
		ShopIDs:                 []string{},
		ReferredVendorIDs:       []string{},
	})
	if err != nil {
		return nil, err
	}

	if err := s.registerDeviceToken(vendor.VendorID, models.UserTypeVendor, reg.DeviceToken, reg.DeviceType); err != nil {
		return nil, err
	}
	return vendor, nil
}

// CustomerLogin issues an OTP to a registered customer's mobile and returns
// the otpId the client must quote on verification.
func (s *AuthService) CustomerLogin(mobile string) (string, error) {
	if mobile == "" {
		return "", apperr.Validation("mobile number is required")
	}
	customer, err := s.store.GetCustomerByMobile(mobile)
	if err != nil {
		return "", apperr.NotFound("customer not registered")
	}

	otp, err := s.otp.Issue(customer.CustomerID, models.UserTypeCustomer, mobile)
	if err != nil {
		return "", err
	}
	return otp.OTPID, nil
}

// VendorLogin issues an OTP to a registered vendor's mobile.
func (s *AuthService) VendorLogin(mobile string) (string, error) {
	if mobile == "" {
		return "", apperr.Validation("mobile number is required")
	}
	vendor, err := s.store.GetVendorByMobile(mobile)
	if err != nil {
		return "", apperr.NotFound("vendor not registered")
	}

	otp, err := s.otp.Issue(vendor.VendorID, models.UserTypeVendor, mobile)
	if err != nil {
		return "", err
	}
	return otp.OTPID, nil
}

// VerifyOTP consumes the code, optionally registers a device token, and
// returns the verified user with a signed session token.
func (s *AuthService) VerifyOTP(req *models.OTPVerification) (*AuthResult, error) {
	if req.OTPID == "" || req.OTP == "" {
		return nil, apperr.Validation("OTP and OTP ID are required")
	}

	otp, err := s.otp.Verify(req.OTPID, req.OTP)
	if err != nil {
		return nil, err
	}

	var user interface{}
	switch otp.UserType {
	case models.UserTypeVendor:
		user, err = s.store.GetVendor(otp.UserID)
	default:
		user, err = s.store.GetCustomer(otp.UserID)
	}
	if err != nil {
		return nil, err
	}

	if err := s.registerDeviceToken(otp.UserID, otp.UserType, req.DeviceToken, req.DeviceType); err != nil {
		return nil, err
	}

	token, err := s.newSessionToken(otp.UserID, otp.UserType)
	if err != nil {
		return nil, apperr.Internal(err, "failed to create session token")
	}

	return &AuthResult{
		User:         user,
		UserType:     otp.UserType,
		SessionToken: token,
	}, nil
}

func (s *AuthService) registerDeviceToken(userID string, userType models.UserType, token, deviceType string) error {
	if token == "" || deviceType == "" {
		return nil
	}
	_, err := s.store.CreateDeviceToken(&models.DeviceToken{
		UserID:     userID,
		UserType:   userType,
		Token:      token,
		DeviceType: deviceType,
	})
	return err
}

// newSessionToken signs an HS256 JWT carrying the user identity.
func (s *AuthService) newSessionToken(userID string, userType models.UserType) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":      userID,
		"userType": string(userType),
		"exp":      now.Add(sessionTTL).Unix(),
		"iat":      now.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}
