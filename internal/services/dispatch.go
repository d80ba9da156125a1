package services

import (
	"fmt"
	"time"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// ShopWithAddress is a shop projection with its resolved address. Distance
// is only set on schedule responses ("12.34 km").
type ShopWithAddress struct {
	models.Shop
	Address  *models.Address `json:"address,omitempty"`
	Distance string          `json:"distance,omitempty"`
}

// ScrapSoldDetail enriches a sold-scrap entry with its catalog record.
type ScrapSoldDetail struct {
	models.ScrapSold
	ScrapDetails *models.Scrap `json:"scrapDetails,omitempty"`
}

// BookingDetail is the read-side projection returned to callers: the
// persisted booking enriched with customer, shop and scrap data.
type BookingDetail struct {
	models.Booking
	NotifiedShops  []*ShopWithAddress `json:"notifiedShops"`
	Customer       *models.Customer   `json:"customer,omitempty"`
	ExactScrapSold []*ScrapSoldDetail `json:"exactScrapSold"`
}

// ScheduleResult is the schedule-pickup response payload.
type ScheduleResult struct {
	Booking       *BookingDetail     `json:"booking"`
	NotifiedShops []*ShopWithAddress `json:"notifiedShops"`
	Notifications *FanoutResult      `json:"notifications"`
}

// DispatchService orchestrates booking creation, shop selection and
// notification fan-out, and owns the booking mutation operations.
type DispatchService struct {
	store     storage.Store
	directory *ShopDirectory
	notifier  *NotificationService
}

// NewDispatchService creates a dispatch service.
func NewDispatchService(store storage.Store, directory *ShopDirectory, notifier *NotificationService) *DispatchService {
	return &DispatchService{
		store:     store,
		directory: directory,
		notifier:  notifier,
	}
}

// SchedulePickup validates the request, ranks the nearest shops, persists
// the booking and fans out notifications. No booking is created when no
// shop is in range.
func (s *DispatchService) SchedulePickup(req *models.PickupRequest) (*ScheduleResult, error) {
	if req.CustomerID == "" || req.ScheduledDateTime.IsZero() ||
		len(req.ScrapTypes) == 0 || req.ScrapSize == "" ||
		req.PickupLocation.CompleteAddress == "" {
		return nil, apperr.Validation("missing required fields")
	}
	if !models.ValidScrapSize(req.ScrapSize) {
		return nil, apperr.Validation("invalid scrap size")
	}
	if !req.ScheduledDateTime.After(time.Now()) {
		return nil, apperr.Validation("cannot schedule pickup for past date")
	}

	customer, err := s.store.GetCustomer(req.CustomerID)
	if err != nil {
		return nil, err
	}

	nearest, err := s.directory.NearestShops(req.PickupLocation.Coordinates, DefaultNearestShopLimit)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	shopIDs := make([]string, len(nearest))
	for i, sd := range nearest {
		shopIDs[i] = sd.Shop.ShopID
	}

	booking := &models.Booking{
		CustomerID:          req.CustomerID,
		ScheduledDateTime:   req.ScheduledDateTime,
		ScrapTypes:          req.ScrapTypes,
		ScrapSize:           req.ScrapSize,
		ScrapImage:          req.ScrapImage,
		PickupLocation:      req.PickupLocation,
		PickupStatus:        models.StatusRequested,
		Earnings:            0,
		ExactScrapSold:      []models.ScrapSold{},
		NearbyShopsNotified: shopIDs,
		RequestedAt:         now,
	}
	booking, err = s.store.CreateBooking(booking)
	if err != nil {
		return nil, err
	}

	fanout := s.notifier.NotifyPickupRequest(booking, nearest)

	notified := make([]*ShopWithAddress, len(nearest))
	for i, sd := range nearest {
		notified[i] = &ShopWithAddress{
			Shop:     *sd.Shop,
			Address:  sd.Address,
			Distance: fmt.Sprintf("%.2f km", sd.DistanceKm),
		}
	}

	detail, err := s.populateBooking(booking)
	if err != nil {
		return nil, err
	}
	detail.Customer = customer

	return &ScheduleResult{
		Booking:       detail,
		NotifiedShops: notified,
		Notifications: fanout,
	}, nil
}

// CustomerBookings lists a customer's bookings, newest first, optionally
// filtered by status.
func (s *DispatchService) CustomerBookings(customerID string, status models.PickupStatus) ([]*BookingDetail, error) {
	if customerID == "" {
		return nil, apperr.Validation("customer ID is required")
	}
	if status != "" && !ValidStatus(status) {
		return nil, apperr.Validation("invalid status value")
	}
	if _, err := s.store.GetCustomer(customerID); err != nil {
		return nil, err
	}

	bookings, err := s.store.GetBookingsByCustomer(customerID, status)
	if err != nil {
		return nil, err
	}

	details := make([]*BookingDetail, 0, len(bookings))
	for _, booking := range bookings {
		detail, err := s.populateBooking(booking)
		if err != nil {
			return nil, err
		}
		details = append(details, detail)
	}
	return details, nil
}

// UpdateStatus applies a lifecycle transition. The write is conditional on
// the status read here, so a concurrent transition surfaces as a conflict
// instead of silently winning. cancelReason is required when transitioning
// to CANCELLED and ignored otherwise.
func (s *DispatchService) UpdateStatus(bookingID string, status models.PickupStatus, eta *time.Time, cancelReason string) error {
	if bookingID == "" || status == "" {
		return apperr.Validation("booking ID and status are required")
	}

	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return err
	}

	update, err := NewStatusUpdate(booking.PickupStatus, status, time.Now(), cancelReason, eta)
	if err != nil {
		return err
	}
	return s.store.ApplyBookingStatus(bookingID, booking.PickupStatus, update)
}

// CancelBooking cancels a booking. Only REQUESTED and ACCEPTED bookings can
// be cancelled through this operation.
func (s *DispatchService) CancelBooking(bookingID, reason string) error {
	if bookingID == "" || reason == "" {
		return apperr.Validation("booking ID and cancel reason are required")
	}

	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return err
	}
	if !CancelAllowed(booking.PickupStatus) {
		return apperr.Conflict("booking cannot be cancelled in current status")
	}

	update, err := NewStatusUpdate(booking.PickupStatus, models.StatusCancelled, time.Now(), reason, nil)
	if err != nil {
		return err
	}
	return s.store.ApplyBookingStatus(bookingID, booking.PickupStatus, update)
}

// RateBooking attaches rating and feedback to a completed booking.
func (s *DispatchService) RateBooking(bookingID string, rating int, feedback string) error {
	if bookingID == "" || rating == 0 {
		return apperr.Validation("booking ID and rating are required")
	}
	if rating < 1 || rating > 5 {
		return apperr.Validation("rating must be between 1 and 5")
	}

	booking, err := s.store.GetBooking(bookingID)
	if err != nil {
		return err
	}
	if booking.PickupStatus != models.StatusCompleted {
		return apperr.Conflict("can only rate completed bookings")
	}

	return s.store.RateBooking(bookingID, &models.BookingRating{Rating: rating, Feedback: feedback})
}

// populateBooking resolves the notified shops, owning customer and scrap
// details for a booking. Dangling references are tolerated and skipped.
func (s *DispatchService) populateBooking(booking *models.Booking) (*BookingDetail, error) {
	detail := &BookingDetail{
		Booking:        *booking,
		NotifiedShops:  []*ShopWithAddress{},
		ExactScrapSold: []*ScrapSoldDetail{},
	}

	for _, shopID := range booking.NearbyShopsNotified {
		shop, err := s.store.GetShop(shopID)
		if err != nil {
			continue
		}
		entry := &ShopWithAddress{Shop: *shop}
		if address, err := s.store.GetAddress(shop.ShopLocation); err == nil {
			entry.Address = address
		}
		detail.NotifiedShops = append(detail.NotifiedShops, entry)
	}

	if customer, err := s.store.GetCustomer(booking.CustomerID); err == nil {
		detail.Customer = customer
	}

	for _, sold := range booking.ExactScrapSold {
		entry := &ScrapSoldDetail{ScrapSold: sold}
		if scrap, err := s.store.GetScrap(sold.ScrapID); err == nil {
			entry.ScrapDetails = scrap
		}
		detail.ExactScrapSold = append(detail.ExactScrapSold, entry)
	}

	return detail, nil
}
