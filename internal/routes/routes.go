package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scrapiteazy/scrapeazy-backend/internal/handlers"
)

// SetupRoutes configures all API routes.
func SetupRoutes(app *fiber.App, auth *handlers.AuthHandler, booking *handlers.BookingHandler, shop *handlers.ShopHandler) {

	app.Get("/health", handlers.HealthCheck)

	// ========== AUTH ROUTES ==========
	authGroup := app.Group("/auth")
	authGroup.Post("/customer/register", auth.RegisterCustomer)
	authGroup.Post("/customer/login", auth.CustomerLogin)
	authGroup.Post("/vendor/register", auth.RegisterVendor)
	authGroup.Post("/vendor/login", auth.VendorLogin)
	authGroup.Post("/verify-otp", auth.VerifyOTP)

	// ========== BOOKING ROUTES ==========
	bookingGroup := app.Group("/booking")
	bookingGroup.Post("/schedule", booking.SchedulePickup)
	bookingGroup.Get("/customer/:customerId", booking.GetCustomerBookings)
	bookingGroup.Post("/status", booking.UpdateStatus)
	bookingGroup.Post("/cancel", booking.CancelBooking)
	bookingGroup.Post("/rate", booking.RateBooking)

	// ========== VENDOR SHOP ROUTES ==========
	vendorGroup := app.Group("/vendor")
	vendorGroup.Post("/add-shop", shop.AddShop)
	vendorGroup.Get("/shops/:vendorId", shop.GetVendorShops)
	vendorGroup.Put("/shops/:shopId", shop.UpdateShop)
}
