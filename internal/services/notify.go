package services

import (
	"fmt"
	"log"
	"sync"

	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// PushSender delivers a push notification to a single device token.
type PushSender interface {
	Send(token, title, body string, data map[string]string) error
}

// FanoutResult counts per-recipient outcomes of a notification fan-out.
// Failures are logged and counted, never escalated: the booking the fan-out
// belongs to has already succeeded.
type FanoutResult struct {
	Sent   int `json:"sent"`
	Failed int `json:"failed"`
}

// NotificationService fans pickup notifications out to shop-owning vendors.
type NotificationService struct {
	store storage.Store
	push  PushSender
}

// NewNotificationService creates a notification service. push may be nil
// when no push channel is configured; notification records are still
// persisted.
func NewNotificationService(store storage.Store, push PushSender) *NotificationService {
	return &NotificationService{store: store, push: push}
}

// NotifyPickupRequest notifies the vendor of every ranked shop: one
// persisted notification record per vendor, one push per registered device
// token. Shops are processed concurrently; all complete before returning.
func (n *NotificationService) NotifyPickupRequest(booking *models.Booking, shops []*ShopDistance) *FanoutResult {
	title := "New Pickup Request"
	body := fmt.Sprintf("New %s pickup request nearby", booking.ScrapSize)
	data := map[string]string{
		"bookingId": booking.BookingID,
		"type":      "NEW_PICKUP_REQUEST",
	}

	result := &FanoutResult{}
	var mu sync.Mutex
	var wg sync.WaitGroup
	for _, sd := range shops {
		wg.Add(1)
		go func(shop *models.Shop) {
			defer wg.Done()

			sent, failed := n.notifyVendor(shop.VendorID, title, body, data)
			mu.Lock()
			result.Sent += sent
			result.Failed += failed
			mu.Unlock()
		}(sd.Shop)
	}
	wg.Wait()

	if result.Failed > 0 {
		log.Printf("pickup fan-out for booking %s: %d sent, %d failed", booking.BookingID, result.Sent, result.Failed)
	}
	return result
}

func (n *NotificationService) notifyVendor(vendorID, title, body string, data map[string]string) (sent, failed int) {
	_, err := n.store.CreateNotification(&models.Notification{
		UserID:   vendorID,
		UserType: models.UserTypeVendor,
		Title:    title,
		Body:     body,
		Data:     data,
	})
	if err != nil {
		log.Printf("failed to store notification for vendor %s: %v", vendorID, err)
		failed++
	}

	tokens, err := n.store.GetDeviceTokens(vendorID, models.UserTypeVendor)
	if err != nil {
		log.Printf("failed to load device tokens for vendor %s: %v", vendorID, err)
		return sent, failed + 1
	}
	if n.push == nil {
		return sent, failed
	}

	for _, token := range tokens {
		if err := n.push.Send(token.Token, title, body, data); err != nil {
			log.Printf("push to vendor %s failed: %v", vendorID, err)
			failed++
			continue
		}
		sent++
	}
	return sent, failed
}
