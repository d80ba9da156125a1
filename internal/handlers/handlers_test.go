package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapiteazy/scrapeazy-backend/internal/handlers"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/routes"
	"github.com/scrapiteazy/scrapeazy-backend/internal/services"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

func newTestApp(store storage.Store) *fiber.App {
	otpService := services.NewOTPService(store, nil)
	authService := services.NewAuthService(store, otpService, "test-secret")
	directory := services.NewShopDirectory(store)
	notifier := services.NewNotificationService(store, nil)
	dispatchService := services.NewDispatchService(store, directory, notifier)
	shopService := services.NewShopService(store)

	app := fiber.New()
	routes.SetupRoutes(app,
		handlers.NewAuthHandler(authService),
		handlers.NewBookingHandler(dispatchService),
		handlers.NewShopHandler(shopService),
	)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, body interface{}) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(buf)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var payload map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp, payload
}

func TestHealthEndpoint(t *testing.T) {
	app := newTestApp(storage.NewMemoryStore())

	resp, payload := doJSON(t, app, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "healthy", payload["status"])
}

func TestRegisterAndLoginEndpoints(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	resp, payload := doJSON(t, app, http.MethodPost, "/auth/customer/register", fiber.Map{
		"customerName":   "Alice",
		"customerMobile": "9876543210",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, true, payload["success"])

	// duplicate mobile is rejected with 400
	resp, payload = doJSON(t, app, http.MethodPost, "/auth/customer/register", fiber.Map{
		"customerName":   "Alice",
		"customerMobile": "9876543210",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, false, payload["success"])

	resp, payload = doJSON(t, app, http.MethodPost, "/auth/customer/login", fiber.Map{
		"mobile": "9876543210",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	otpID, ok := data["otpId"].(string)
	require.True(t, ok)
	require.NotEmpty(t, otpID)

	otp, err := store.GetOTP(otpID)
	require.NoError(t, err)

	resp, payload = doJSON(t, app, http.MethodPost, "/auth/verify-otp", fiber.Map{
		"otpId": otpID,
		"otp":   otp.Code,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, ok = payload["data"].(map[string]interface{})
	require.True(t, ok)
	assert.NotEmpty(t, data["sessionToken"])
}

func TestLoginUnknownMobileEndpoint(t *testing.T) {
	app := newTestApp(storage.NewMemoryStore())

	resp, payload := doJSON(t, app, http.MethodPost, "/auth/customer/login", fiber.Map{
		"mobile": "0000000000",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}

func TestSchedulePickupEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	customer, err := store.CreateCustomer(&models.Customer{
		CustomerName:   "Alice",
		CustomerMobile: "9876543210",
	})
	require.NoError(t, err)

	vendor, err := store.CreateVendor(&models.Vendor{
		VendorName:   "John",
		VendorMobile: "9876543220",
	})
	require.NoError(t, err)

	resp, payload := doJSON(t, app, http.MethodPost, "/vendor/add-shop", fiber.Map{
		"vendorId": vendor.VendorID,
		"shopName": "Central Hub",
		"shopAddress": fiber.Map{
			"coordinates":     fiber.Map{"latitude": 23.0230, "longitude": 72.5720},
			"completeAddress": "CG Road, Ahmedabad",
		},
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, payload["message"])

	resp, payload = doJSON(t, app, http.MethodPost, "/booking/schedule", fiber.Map{
		"customerId":        customer.CustomerID,
		"scheduledDateTime": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"scrapTypes":        []string{"PAPER"},
		"scrapSize":         "SMALL",
		"pickupLocation": fiber.Map{
			"coordinates":     fiber.Map{"latitude": 23.0225, "longitude": 72.5714},
			"completeAddress": "Near CG Road",
		},
	})
	require.Equal(t, http.StatusOK, resp.StatusCode, payload["message"])
	assert.Equal(t, true, payload["success"])

	data, ok := payload["data"].(map[string]interface{})
	require.True(t, ok)
	booking, ok := data["booking"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, string(models.StatusRequested), booking["pickupStatus"])

	notified, ok := data["notifiedShops"].([]interface{})
	require.True(t, ok)
	assert.Len(t, notified, 1)

	// list it back
	resp, payload = doJSON(t, app, http.MethodGet,
		fmt.Sprintf("/booking/customer/%s", customer.CustomerID), nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	list, ok := payload["data"].([]interface{})
	require.True(t, ok)
	assert.Len(t, list, 1)
}

func TestSchedulePickupNoShopsEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	customer, err := store.CreateCustomer(&models.Customer{
		CustomerName:   "Alice",
		CustomerMobile: "9876543210",
	})
	require.NoError(t, err)

	resp, payload := doJSON(t, app, http.MethodPost, "/booking/schedule", fiber.Map{
		"customerId":        customer.CustomerID,
		"scheduledDateTime": time.Now().Add(24 * time.Hour).Format(time.RFC3339),
		"scrapTypes":        []string{"PAPER"},
		"scrapSize":         "SMALL",
		"pickupLocation": fiber.Map{
			"coordinates":     fiber.Map{"latitude": 23.0225, "longitude": 72.5714},
			"completeAddress": "Near CG Road",
		},
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "no shops available in your area", payload["message"])
}

func TestBookingStatusAndCancelEndpoints(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	booking, err := store.CreateBooking(&models.Booking{
		CustomerID:   "customer-1",
		PickupStatus: models.StatusRequested,
	})
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, "/booking/status", fiber.Map{
		"bookingId": booking.BookingID,
		"status":    "ACCEPTED",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// invalid transition is rejected with 400
	resp, _ = doJSON(t, app, http.MethodPost, "/booking/status", fiber.Map{
		"bookingId": booking.BookingID,
		"status":    "COMPLETED",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/booking/cancel", fiber.Map{
		"bookingId":    booking.BookingID,
		"cancelReason": "changed my mind",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := store.GetBooking(booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.PickupStatus)
}

func TestCancelInProgressViaStatusEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	booking, err := store.CreateBooking(&models.Booking{
		CustomerID:   "customer-1",
		PickupStatus: models.StatusInProgress,
	})
	require.NoError(t, err)

	// the dedicated cancel endpoint refuses IN_PROGRESS
	resp, _ := doJSON(t, app, http.MethodPost, "/booking/cancel", fiber.Map{
		"bookingId":    booking.BookingID,
		"cancelReason": "vendor unavailable",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// without a reason the status endpoint refuses CANCELLED
	resp, _ = doJSON(t, app, http.MethodPost, "/booking/status", fiber.Map{
		"bookingId": booking.BookingID,
		"status":    "CANCELLED",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = doJSON(t, app, http.MethodPost, "/booking/status", fiber.Map{
		"bookingId":    booking.BookingID,
		"status":       "CANCELLED",
		"cancelReason": "vendor unavailable",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := store.GetBooking(booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusCancelled, stored.PickupStatus)
	assert.Equal(t, "vendor unavailable", stored.CancelReason)
}

func TestRateBookingEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	booking, err := store.CreateBooking(&models.Booking{
		CustomerID:   "customer-1",
		PickupStatus: models.StatusCompleted,
	})
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPost, "/booking/rate", fiber.Map{
		"bookingId": booking.BookingID,
		"rating":    5,
		"feedback":  "quick pickup",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := store.GetBooking(booking.BookingID)
	require.NoError(t, err)
	assert.Equal(t, 5, stored.Rating)
}

func TestUpdateShopEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	shop, err := store.CreateShop(&models.Shop{ShopName: "Old", VendorID: "vendor-1"})
	require.NoError(t, err)

	resp, _ := doJSON(t, app, http.MethodPut, "/vendor/shops/"+shop.ShopID, fiber.Map{
		"shopName": "New",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	stored, err := store.GetShop(shop.ShopID)
	require.NoError(t, err)
	assert.Equal(t, "New", stored.ShopName)
}

func TestGetVendorShopsEndpoint(t *testing.T) {
	store := storage.NewMemoryStore()
	app := newTestApp(store)

	resp, payload := doJSON(t, app, http.MethodGet, "/vendor/shops/no-such-vendor", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, false, payload["success"])
}
