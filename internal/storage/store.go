package storage

import (
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
)

// Store defines the persistence port for all collections. Implementations
// must make ApplyBookingStatus, RateBooking and MarkOTPVerified conditional
// on the expected prior state so that concurrent writers cannot both win.
type Store interface {
	// Customer operations
	CreateCustomer(customer *models.Customer) (*models.Customer, error)
	GetCustomer(id string) (*models.Customer, error)
	GetCustomerByMobile(mobile string) (*models.Customer, error)
	GetCustomerByEmail(email string) (*models.Customer, error)
	UpdateCustomer(customer *models.Customer) error

	// Vendor operations
	CreateVendor(vendor *models.Vendor) (*models.Vendor, error)
	GetVendor(id string) (*models.Vendor, error)
	GetVendorByMobile(mobile string) (*models.Vendor, error)
	GetVendorByEmail(email string) (*models.Vendor, error)
	UpdateVendor(vendor *models.Vendor) error

	// Shop operations
	CreateShop(shop *models.Shop) (*models.Shop, error)
	GetShop(id string) (*models.Shop, error)
	GetAllShops() ([]*models.Shop, error)
	GetShopsByVendor(vendorID string) ([]*models.Shop, error)
	UpdateShop(id string, update *models.ShopUpdate) error

	// Address operations
	CreateAddress(address *models.Address) (*models.Address, error)
	GetAddress(id string) (*models.Address, error)
	UpdateAddress(address *models.Address) error

	// Booking operations
	CreateBooking(booking *models.Booking) (*models.Booking, error)
	GetBooking(id string) (*models.Booking, error)
	GetBookingsByCustomer(customerID string, status models.PickupStatus) ([]*models.Booking, error)
	ApplyBookingStatus(id string, expect models.PickupStatus, update *models.BookingStatusUpdate) error
	RateBooking(id string, rating *models.BookingRating) error

	// OTP operations
	CreateOTP(otp *models.OTP) (*models.OTP, error)
	GetOTP(id string) (*models.OTP, error)
	MarkOTPVerified(id string) error

	// Device token and notification operations
	CreateDeviceToken(token *models.DeviceToken) (*models.DeviceToken, error)
	GetDeviceTokens(userID string, userType models.UserType) ([]*models.DeviceToken, error)
	CreateNotification(notification *models.Notification) (*models.Notification, error)

	// Scrap catalog operations
	CreateScrap(scrap *models.Scrap) (*models.Scrap, error)
	GetScrap(id string) (*models.Scrap, error)
}
