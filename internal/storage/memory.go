package storage

import (
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
)

// MemoryStore holds all collections in memory. Used for tests and local
// development (USE_MEMORY_STORE=true).
type MemoryStore struct {
	customers     map[string]*models.Customer
	vendors       map[string]*models.Vendor
	shops         map[string]*models.Shop
	addresses     map[string]*models.Address
	bookings      map[string]*models.Booking
	otps          map[string]*models.OTP
	deviceTokens  map[string]*models.DeviceToken
	notifications map[string]*models.Notification
	scraps        map[string]*models.Scrap

	// Mutexes for thread safety
	customerMu     sync.RWMutex
	vendorMu       sync.RWMutex
	shopMu         sync.RWMutex
	addressMu      sync.RWMutex
	bookingMu      sync.RWMutex
	otpMu          sync.RWMutex
	tokenMu        sync.RWMutex
	notificationMu sync.RWMutex
	scrapMu        sync.RWMutex
}

// NewMemoryStore creates a new in-memory storage.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers:     make(map[string]*models.Customer),
		vendors:       make(map[string]*models.Vendor),
		shops:         make(map[string]*models.Shop),
		addresses:     make(map[string]*models.Address),
		bookings:      make(map[string]*models.Booking),
		otps:          make(map[string]*models.OTP),
		deviceTokens:  make(map[string]*models.DeviceToken),
		notifications: make(map[string]*models.Notification),
		scraps:        make(map[string]*models.Scrap),
	}
}

// Customer operations

// CreateCustomer enforces mobile and email uniqueness under the write lock,
// so concurrent registrations with the same identity cannot both succeed.
func (m *MemoryStore) CreateCustomer(customer *models.Customer) (*models.Customer, error) {
	m.customerMu.Lock()
	defer m.customerMu.Unlock()

	for _, existing := range m.customers {
		if existing.CustomerMobile == customer.CustomerMobile {
			return nil, apperr.Conflict("customer with this mobile already exists")
		}
		if customer.CustomerEmail != "" && existing.CustomerEmail == customer.CustomerEmail {
			return nil, apperr.Conflict("customer with this email already exists")
		}
	}

	if customer.CustomerID == "" {
		customer.CustomerID = uuid.NewString()
	}
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	m.customers[customer.CustomerID] = customer
	return customer, nil
}

func (m *MemoryStore) GetCustomer(id string) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	customer, exists := m.customers[id]
	if !exists {
		return nil, apperr.NotFound("customer not found")
	}
	return customer, nil
}

func (m *MemoryStore) GetCustomerByMobile(mobile string) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	for _, customer := range m.customers {
		if customer.CustomerMobile == mobile {
			return customer, nil
		}
	}
	return nil, apperr.NotFound("customer not found")
}

func (m *MemoryStore) GetCustomerByEmail(email string) (*models.Customer, error) {
	m.customerMu.RLock()
	defer m.customerMu.RUnlock()

	for _, customer := range m.customers {
		if customer.CustomerEmail == email {
			return customer, nil
		}
	}
	return nil, apperr.NotFound("customer not found")
}

func (m *MemoryStore) UpdateCustomer(customer *models.Customer) error {
	m.customerMu.Lock()
	defer m.customerMu.Unlock()

	if _, exists := m.customers[customer.CustomerID]; !exists {
		return apperr.NotFound("customer not found")
	}
	customer.UpdatedAt = time.Now()
	m.customers[customer.CustomerID] = customer
	return nil
}

// Vendor operations

// CreateVendor enforces mobile and email uniqueness under the write lock.
func (m *MemoryStore) CreateVendor(vendor *models.Vendor) (*models.Vendor, error) {
	m.vendorMu.Lock()
	defer m.vendorMu.Unlock()

	for _, existing := range m.vendors {
		if existing.VendorMobile == vendor.VendorMobile {
			return nil, apperr.Conflict("vendor with this mobile already exists")
		}
		if vendor.VendorEmail != "" && existing.VendorEmail == vendor.VendorEmail {
			return nil, apperr.Conflict("vendor with this email already exists")
		}
	}

	if vendor.VendorID == "" {
		vendor.VendorID = uuid.NewString()
	}
	now := time.Now()
	vendor.CreatedAt = now
	vendor.UpdatedAt = now

	m.vendors[vendor.VendorID] = vendor
	return vendor, nil
}

func (m *MemoryStore) GetVendor(id string) (*models.Vendor, error) {
	m.vendorMu.RLock()
	defer m.vendorMu.RUnlock()

	vendor, exists := m.vendors[id]
	if !exists {
		return nil, apperr.NotFound("vendor not found")
	}
	return vendor, nil
}

func (m *MemoryStore) GetVendorByMobile(mobile string) (*models.Vendor, error) {
	m.vendorMu.RLock()
	defer m.vendorMu.RUnlock()

	for _, vendor := range m.vendors {
		if vendor.VendorMobile == mobile {
			return vendor, nil
		}
	}
	return nil, apperr.NotFound("vendor not found")
}

func (m *MemoryStore) GetVendorByEmail(email string) (*models.Vendor, error) {
	m.vendorMu.RLock()
	defer m.vendorMu.RUnlock()

	for _, vendor := range m.vendors {
		if vendor.VendorEmail == email {
			return vendor, nil
		}
	}
	return nil, apperr.NotFound("vendor not found")
}

func (m *MemoryStore) UpdateVendor(vendor *models.Vendor) error {
	m.vendorMu.Lock()
	defer m.vendorMu.Unlock()

	if _, exists := m.vendors[vendor.VendorID]; !exists {
		return apperr.NotFound("vendor not found")
	}
	vendor.UpdatedAt = time.Now()
	m.vendors[vendor.VendorID] = vendor
	return nil
}

// Shop operations

func (m *MemoryStore) CreateShop(shop *models.Shop) (*models.Shop, error) {
	m.shopMu.Lock()
	defer m.shopMu.Unlock()

	if shop.ShopID == "" {
		shop.ShopID = uuid.NewString()
	}
	now := time.Now()
	shop.CreatedAt = now
	shop.UpdatedAt = now

	m.shops[shop.ShopID] = shop
	return shop, nil
}

func (m *MemoryStore) GetShop(id string) (*models.Shop, error) {
	m.shopMu.RLock()
	defer m.shopMu.RUnlock()

	shop, exists := m.shops[id]
	if !exists {
		return nil, apperr.NotFound("shop not found")
	}
	return shop, nil
}

func (m *MemoryStore) GetAllShops() ([]*models.Shop, error) {
	m.shopMu.RLock()
	defer m.shopMu.RUnlock()

	shops := make([]*models.Shop, 0, len(m.shops))
	for _, shop := range m.shops {
		shops = append(shops, shop)
	}
	return shops, nil
}

func (m *MemoryStore) GetShopsByVendor(vendorID string) ([]*models.Shop, error) {
	m.shopMu.RLock()
	defer m.shopMu.RUnlock()

	var shops []*models.Shop
	for _, shop := range m.shops {
		if shop.VendorID == vendorID {
			shops = append(shops, shop)
		}
	}
	sort.Slice(shops, func(i, j int) bool { return shops[i].ShopID < shops[j].ShopID })
	return shops, nil
}

func (m *MemoryStore) UpdateShop(id string, update *models.ShopUpdate) error {
	m.shopMu.Lock()
	defer m.shopMu.Unlock()

	shop, exists := m.shops[id]
	if !exists {
		return apperr.NotFound("shop not found")
	}
	if update.ShopName != "" {
		shop.ShopName = update.ShopName
	}
	if update.ShopsDocumentID != "" {
		shop.ShopsDocumentID = update.ShopsDocumentID
	}
	shop.UpdatedAt = time.Now()
	return nil
}

// Address operations

func (m *MemoryStore) CreateAddress(address *models.Address) (*models.Address, error) {
	m.addressMu.Lock()
	defer m.addressMu.Unlock()

	if address.AddressID == "" {
		address.AddressID = uuid.NewString()
	}
	now := time.Now()
	address.CreatedAt = now
	address.UpdatedAt = now

	m.addresses[address.AddressID] = address
	return address, nil
}

func (m *MemoryStore) GetAddress(id string) (*models.Address, error) {
	m.addressMu.RLock()
	defer m.addressMu.RUnlock()

	address, exists := m.addresses[id]
	if !exists {
		return nil, apperr.NotFound("address not found")
	}
	return address, nil
}

func (m *MemoryStore) UpdateAddress(address *models.Address) error {
	m.addressMu.Lock()
	defer m.addressMu.Unlock()

	if _, exists := m.addresses[address.AddressID]; !exists {
		return apperr.NotFound("address not found")
	}
	address.UpdatedAt = time.Now()
	m.addresses[address.AddressID] = address
	return nil
}

// Booking operations

func (m *MemoryStore) CreateBooking(booking *models.Booking) (*models.Booking, error) {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	if booking.BookingID == "" {
		booking.BookingID = uuid.NewString()
	}
	now := time.Now()
	booking.CreatedAt = now
	booking.UpdatedAt = now

	m.bookings[booking.BookingID] = booking
	return booking, nil
}

func (m *MemoryStore) GetBooking(id string) (*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	booking, exists := m.bookings[id]
	if !exists {
		return nil, apperr.NotFound("booking not found")
	}
	return booking, nil
}

func (m *MemoryStore) GetBookingsByCustomer(customerID string, status models.PickupStatus) ([]*models.Booking, error) {
	m.bookingMu.RLock()
	defer m.bookingMu.RUnlock()

	var bookings []*models.Booking
	for _, booking := range m.bookings {
		if booking.CustomerID != customerID {
			continue
		}
		if status != "" && booking.PickupStatus != status {
			continue
		}
		bookings = append(bookings, booking)
	}
	sort.Slice(bookings, func(i, j int) bool {
		return bookings[i].CreatedAt.After(bookings[j].CreatedAt)
	})
	return bookings, nil
}

// ApplyBookingStatus is a check-and-set: it only writes when the stored
// status still equals expect, so two concurrent transitions cannot both
// succeed.
func (m *MemoryStore) ApplyBookingStatus(id string, expect models.PickupStatus, update *models.BookingStatusUpdate) error {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	booking, exists := m.bookings[id]
	if !exists {
		return apperr.NotFound("booking not found")
	}
	if booking.PickupStatus != expect {
		return apperr.Conflict("booking status changed concurrently")
	}

	booking.PickupStatus = update.Status
	if update.AcceptedAt != nil {
		booking.AcceptedAt = update.AcceptedAt
	}
	if update.StartedAt != nil {
		booking.StartedAt = update.StartedAt
	}
	if update.EstimatedCompletionTime != nil {
		booking.EstimatedCompletionTime = update.EstimatedCompletionTime
	}
	if update.CompletedAt != nil {
		booking.CompletedAt = update.CompletedAt
	}
	if update.CancelledAt != nil {
		booking.CancelledAt = update.CancelledAt
		booking.CancelReason = update.CancelReason
	}
	booking.UpdatedAt = time.Now()
	return nil
}

func (m *MemoryStore) RateBooking(id string, rating *models.BookingRating) error {
	m.bookingMu.Lock()
	defer m.bookingMu.Unlock()

	booking, exists := m.bookings[id]
	if !exists {
		return apperr.NotFound("booking not found")
	}
	if booking.PickupStatus != models.StatusCompleted {
		return apperr.Conflict("can only rate completed bookings")
	}

	booking.Rating = rating.Rating
	booking.Feedback = rating.Feedback
	booking.UpdatedAt = time.Now()
	return nil
}

// OTP operations

func (m *MemoryStore) CreateOTP(otp *models.OTP) (*models.OTP, error) {
	m.otpMu.Lock()
	defer m.otpMu.Unlock()

	if otp.OTPID == "" {
		otp.OTPID = uuid.NewString()
	}
	now := time.Now()
	otp.CreatedAt = now
	otp.UpdatedAt = now

	m.otps[otp.OTPID] = otp
	return otp, nil
}

func (m *MemoryStore) GetOTP(id string) (*models.OTP, error) {
	m.otpMu.RLock()
	defer m.otpMu.RUnlock()

	otp, exists := m.otps[id]
	if !exists {
		return nil, apperr.NotFound("invalid OTP ID")
	}
	return otp, nil
}

// MarkOTPVerified flips the verified flag exactly once; a second call fails
// even when racing the first.
func (m *MemoryStore) MarkOTPVerified(id string) error {
	m.otpMu.Lock()
	defer m.otpMu.Unlock()

	otp, exists := m.otps[id]
	if !exists {
		return apperr.NotFound("invalid OTP ID")
	}
	if otp.Verified {
		return apperr.Conflict("OTP already used")
	}
	otp.Verified = true
	otp.UpdatedAt = time.Now()
	return nil
}

// Device token and notification operations

func (m *MemoryStore) CreateDeviceToken(token *models.DeviceToken) (*models.DeviceToken, error) {
	m.tokenMu.Lock()
	defer m.tokenMu.Unlock()

	if token.TokenID == "" {
		token.TokenID = uuid.NewString()
	}
	now := time.Now()
	token.CreatedAt = now
	token.UpdatedAt = now

	m.deviceTokens[token.TokenID] = token
	return token, nil
}

func (m *MemoryStore) GetDeviceTokens(userID string, userType models.UserType) ([]*models.DeviceToken, error) {
	m.tokenMu.RLock()
	defer m.tokenMu.RUnlock()

	var tokens []*models.DeviceToken
	for _, token := range m.deviceTokens {
		if token.UserID == userID && token.UserType == userType {
			tokens = append(tokens, token)
		}
	}
	return tokens, nil
}

func (m *MemoryStore) CreateNotification(notification *models.Notification) (*models.Notification, error) {
	m.notificationMu.Lock()
	defer m.notificationMu.Unlock()

	if notification.NotificationID == "" {
		notification.NotificationID = uuid.NewString()
	}
	notification.CreatedAt = time.Now()

	m.notifications[notification.NotificationID] = notification
	return notification, nil
}

// Scrap catalog operations

func (m *MemoryStore) CreateScrap(scrap *models.Scrap) (*models.Scrap, error) {
	m.scrapMu.Lock()
	defer m.scrapMu.Unlock()

	if scrap.ScrapID == "" {
		scrap.ScrapID = uuid.NewString()
	}
	now := time.Now()
	scrap.CreatedAt = now
	scrap.UpdatedAt = now

	m.scraps[scrap.ScrapID] = scrap
	return scrap, nil
}

func (m *MemoryStore) GetScrap(id string) (*models.Scrap, error) {
	m.scrapMu.RLock()
	defer m.scrapMu.RUnlock()

	scrap, exists := m.scraps[id]
	if !exists {
		return nil, apperr.NotFound("scrap not found")
	}
	return scrap, nil
}
