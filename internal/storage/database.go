package storage

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
)

// DatabaseStore persists all collections in PostgreSQL via GORM.
type DatabaseStore struct {
	db *gorm.DB
}

// NewDatabaseStore creates a database-backed store.
func NewDatabaseStore(db *gorm.DB) *DatabaseStore {
	return &DatabaseStore{db: db}
}

func translate(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.NotFound("%s", notFoundMsg)
	}
	return apperr.Internal(err, "storage error")
}

// Customer operations

// CreateCustomer relies on the unique indexes on mobile and email, so the
// duplicate check cannot race a concurrent registration.
func (s *DatabaseStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	if customer.CustomerID == "" {
		customer.CustomerID = uuid.NewString()
	}
	if err := s.db.Create(customer).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("customer already exists")
		}
		return nil, apperr.Internal(err, "failed to create customer")
	}
	return customer, nil
}

func (s *DatabaseStore) GetCustomer(id string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "customer_id = ?", id).Error; err != nil {
		return nil, translate(err, "customer not found")
	}
	return &customer, nil
}

func (s *DatabaseStore) GetCustomerByMobile(mobile string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "customer_mobile = ?", mobile).Error; err != nil {
		return nil, translate(err, "customer not found")
	}
	return &customer, nil
}

func (s *DatabaseStore) GetCustomerByEmail(email string) (*models.Customer, error) {
	var customer models.Customer
	if err := s.db.First(&customer, "customer_email = ?", email).Error; err != nil {
		return nil, translate(err, "customer not found")
	}
	return &customer, nil
}

func (s *DatabaseStore) UpdateCustomer(customer *models.Customer) error {
	res := s.db.Model(&models.Customer{}).
		Where("customer_id = ?", customer.CustomerID).
		Select("*").Omit("customer_id", "created_at").
		Updates(customer)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update customer")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("customer not found")
	}
	return nil
}

// Vendor operations

func (s *DatabaseStore) CreateVendor(vendor *models.Vendor) (*models.Vendor, error) {
	if vendor.VendorID == "" {
		vendor.VendorID = uuid.NewString()
	}
	if err := s.db.Create(vendor).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, apperr.Conflict("vendor already exists")
		}
		return nil, apperr.Internal(err, "failed to create vendor")
	}
	return vendor, nil
}

func (s *DatabaseStore) GetVendor(id string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "vendor_id = ?", id).Error; err != nil {
		return nil, translate(err, "vendor not found")
	}
	return &vendor, nil
}

func (s *DatabaseStore) GetVendorByMobile(mobile string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "vendor_mobile = ?", mobile).Error; err != nil {
		return nil, translate(err, "vendor not found")
	}
	return &vendor, nil
}

func (s *DatabaseStore) GetVendorByEmail(email string) (*models.Vendor, error) {
	var vendor models.Vendor
	if err := s.db.First(&vendor, "vendor_email = ?", email).Error; err != nil {
		return nil, translate(err, "vendor not found")
	}
	return &vendor, nil
}

func (s *DatabaseStore) UpdateVendor(vendor *models.Vendor) error {
	res := s.db.Model(&models.Vendor{}).
		Where("vendor_id = ?", vendor.VendorID).
		Select("*").Omit("vendor_id", "created_at").
		Updates(vendor)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update vendor")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("vendor not found")
	}
	return nil
}

// Shop operations

func (s *DatabaseStore) CreateShop(shop *models.Shop) (*models.Shop, error) {
	if shop.ShopID == "" {
		shop.ShopID = uuid.NewString()
	}
	if err := s.db.Create(shop).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create shop")
	}
	return shop, nil
}

func (s *DatabaseStore) GetShop(id string) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.First(&shop, "shop_id = ?", id).Error; err != nil {
		return nil, translate(err, "shop not found")
	}
	return &shop, nil
}

func (s *DatabaseStore) GetAllShops() ([]*models.Shop, error) {
	var shops []*models.Shop
	if err := s.db.Find(&shops).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list shops")
	}
	return shops, nil
}

func (s *DatabaseStore) GetShopsByVendor(vendorID string) ([]*models.Shop, error) {
	var shops []*models.Shop
	if err := s.db.Where("vendor_id = ?", vendorID).Order("shop_id").Find(&shops).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list shops")
	}
	return shops, nil
}

func (s *DatabaseStore) UpdateShop(id string, update *models.ShopUpdate) error {
	fields := map[string]interface{}{"updated_at": time.Now()}
	if update.ShopName != "" {
		fields["shop_name"] = update.ShopName
	}
	if update.ShopsDocumentID != "" {
		fields["shops_document_id"] = update.ShopsDocumentID
	}
	res := s.db.Model(&models.Shop{}).Where("shop_id = ?", id).Updates(fields)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update shop")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("shop not found")
	}
	return nil
}

// Address operations

func (s *DatabaseStore) CreateAddress(address *models.Address) (*models.Address, error) {
	if address.AddressID == "" {
		address.AddressID = uuid.NewString()
	}
	if err := s.db.Create(address).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create address")
	}
	return address, nil
}

func (s *DatabaseStore) GetAddress(id string) (*models.Address, error) {
	var address models.Address
	if err := s.db.First(&address, "address_id = ?", id).Error; err != nil {
		return nil, translate(err, "address not found")
	}
	return &address, nil
}

func (s *DatabaseStore) UpdateAddress(address *models.Address) error {
	res := s.db.Model(&models.Address{}).
		Where("address_id = ?", address.AddressID).
		Select("*").Omit("address_id", "created_at").
		Updates(address)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update address")
	}
	if res.RowsAffected == 0 {
		return apperr.NotFound("address not found")
	}
	return nil
}

// Booking operations

func (s *DatabaseStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	if booking.BookingID == "" {
		booking.BookingID = uuid.NewString()
	}
	if err := s.db.Create(booking).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create booking")
	}
	return booking, nil
}

func (s *DatabaseStore) GetBooking(id string) (*models.Booking, error) {
	var booking models.Booking
	if err := s.db.First(&booking, "booking_id = ?", id).Error; err != nil {
		return nil, translate(err, "booking not found")
	}
	return &booking, nil
}

func (s *DatabaseStore) GetBookingsByCustomer(customerID string, status models.PickupStatus) ([]*models.Booking, error) {
	q := s.db.Where("customer_id = ?", customerID)
	if status != "" {
		q = q.Where("pickup_status = ?", status)
	}
	var bookings []*models.Booking
	if err := q.Order("created_at DESC").Find(&bookings).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list bookings")
	}
	return bookings, nil
}

// ApplyBookingStatus updates the booking conditionally on its current
// status. RowsAffected 0 with an existing row means a concurrent writer won.
func (s *DatabaseStore) ApplyBookingStatus(id string, expect models.PickupStatus, update *models.BookingStatusUpdate) error {
	fields := map[string]interface{}{
		"pickup_status": update.Status,
		"updated_at":    time.Now(),
	}
	if update.AcceptedAt != nil {
		fields["accepted_at"] = update.AcceptedAt
	}
	if update.StartedAt != nil {
		fields["started_at"] = update.StartedAt
	}
	if update.EstimatedCompletionTime != nil {
		fields["estimated_completion_time"] = update.EstimatedCompletionTime
	}
	if update.CompletedAt != nil {
		fields["completed_at"] = update.CompletedAt
	}
	if update.CancelledAt != nil {
		fields["cancelled_at"] = update.CancelledAt
		fields["cancel_reason"] = update.CancelReason
	}

	res := s.db.Model(&models.Booking{}).
		Where("booking_id = ? AND pickup_status = ?", id, expect).
		Updates(fields)
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to update booking status")
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetBooking(id); err != nil {
			return err
		}
		return apperr.Conflict("booking status changed concurrently")
	}
	return nil
}

func (s *DatabaseStore) RateBooking(id string, rating *models.BookingRating) error {
	res := s.db.Model(&models.Booking{}).
		Where("booking_id = ? AND pickup_status = ?", id, models.StatusCompleted).
		Updates(map[string]interface{}{
			"rating":     rating.Rating,
			"feedback":   rating.Feedback,
			"updated_at": time.Now(),
		})
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to rate booking")
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetBooking(id); err != nil {
			return err
		}
		return apperr.Conflict("can only rate completed bookings")
	}
	return nil
}

// OTP operations

func (s *DatabaseStore) CreateOTP(otp *models.OTP) (*models.OTP, error) {
	if otp.OTPID == "" {
		otp.OTPID = uuid.NewString()
	}
	if err := s.db.Create(otp).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create OTP")
	}
	return otp, nil
}

func (s *DatabaseStore) GetOTP(id string) (*models.OTP, error) {
	var otp models.OTP
	if err := s.db.First(&otp, "otp_id = ?", id).Error; err != nil {
		return nil, translate(err, "invalid OTP ID")
	}
	return &otp, nil
}

// MarkOTPVerified consumes the code with a conditional update so only one
// concurrent verification can succeed.
func (s *DatabaseStore) MarkOTPVerified(id string) error {
	res := s.db.Model(&models.OTP{}).
		Where("otp_id = ? AND verified = false", id).
		Updates(map[string]interface{}{"verified": true, "updated_at": time.Now()})
	if res.Error != nil {
		return apperr.Internal(res.Error, "failed to verify OTP")
	}
	if res.RowsAffected == 0 {
		if _, err := s.GetOTP(id); err != nil {
			return err
		}
		return apperr.Conflict("OTP already used")
	}
	return nil
}

// Device token and notification operations

func (s *DatabaseStore) CreateDeviceToken(token *models.DeviceToken) (*models.DeviceToken, error) {
	if token.TokenID == "" {
		token.TokenID = uuid.NewString()
	}
	if err := s.db.Create(token).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create device token")
	}
	return token, nil
}

func (s *DatabaseStore) GetDeviceTokens(userID string, userType models.UserType) ([]*models.DeviceToken, error) {
	var tokens []*models.DeviceToken
	if err := s.db.Where("user_id = ? AND user_type = ?", userID, userType).Find(&tokens).Error; err != nil {
		return nil, apperr.Internal(err, "failed to list device tokens")
	}
	return tokens, nil
}

func (s *DatabaseStore) CreateNotification(notification *models.Notification) (*models.Notification, error) {
	if notification.NotificationID == "" {
		notification.NotificationID = uuid.NewString()
	}
	if err := s.db.Create(notification).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create notification")
	}
	return notification, nil
}

// Scrap catalog operations

func (s *DatabaseStore) CreateScrap(scrap *models.Scrap) (*models.Scrap, error) {
	if scrap.ScrapID == "" {
		scrap.ScrapID = uuid.NewString()
	}
	if err := s.db.Create(scrap).Error; err != nil {
		return nil, apperr.Internal(err, "failed to create scrap")
	}
	return scrap, nil
}

func (s *DatabaseStore) GetScrap(id string) (*models.Scrap, error) {
	var scrap models.Scrap
	if err := s.db.First(&scrap, "scrap_id = ?", id).Error; err != nil {
		return nil, translate(err, "scrap not found")
	}
	return &scrap, nil
}
