package services

import (
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// fakeSMS records sent codes and optionally fails every send.
type fakeSMS struct {
	mu   sync.Mutex
	sent []string
	fail bool
}

func (f *fakeSMS) SendOTP(mobile, code string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("carrier rejected message")
	}
	f.sent = append(f.sent, code)
	return nil
}

// fakePush records delivered tokens and optionally fails every send.
type fakePush struct {
	mu     sync.Mutex
	tokens []string
	fail   bool
}

func (f *fakePush) Send(token, title, body string, data map[string]string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.fail {
		return errors.New("unregistered token")
	}
	f.tokens = append(f.tokens, token)
	return nil
}

func seedCustomer(t *testing.T, store storage.Store, mobile string) *models.Customer {
	t.Helper()
	customer, err := store.CreateCustomer(&models.Customer{
		CustomerName:           "Test Customer",
		CustomerMobile:         mobile,
		CustomerSavedAddresses: []string{},
	})
	require.NoError(t, err)
	return customer
}

func seedVendor(t *testing.T, store storage.Store, mobile string) *models.Vendor {
	t.Helper()
	vendor, err := store.CreateVendor(&models.Vendor{
		VendorName:              "Test Vendor",
		VendorMobile:            mobile,
		VerificationDocumentIDs: []string{},
		ShopIDs:                 []string{},
		ReferredVendorIDs:       []string{},
	})
	require.NoError(t, err)
	return vendor
}

// seedShop creates a shop with a linked address at the given coordinates.
func seedShop(t *testing.T, store storage.Store, vendorID, name string, at geo.Coordinate) *models.Shop {
	t.Helper()

	address, err := store.CreateAddress(&models.Address{
		AddressCoordinates: at,
		CompleteAddress:    name + " address",
	})
	require.NoError(t, err)

	shop, err := store.CreateShop(&models.Shop{
		ShopName:     name,
		ShopLocation: address.AddressID,
		VendorID:     vendorID,
		ShopLevel:    models.ShopLevelBronze,
	})
	require.NoError(t, err)

	address.ShopID = shop.ShopID
	require.NoError(t, store.UpdateAddress(address))
	return shop
}

func seedBookingWithStatus(t *testing.T, store storage.Store, customerID string, status models.PickupStatus) *models.Booking {
	t.Helper()
	booking, err := store.CreateBooking(&models.Booking{
		CustomerID:          customerID,
		ScrapTypes:          []string{"PAPER"},
		ScrapSize:           models.ScrapSizeSmall,
		PickupStatus:        status,
		ExactScrapSold:      []models.ScrapSold{},
		NearbyShopsNotified: []string{},
	})
	require.NoError(t, err)
	return booking
}
