package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/services"
)

// BookingHandler handles pickup-booking requests.
type BookingHandler struct {
	dispatch *services.DispatchService
}

// NewBookingHandler creates a new booking handler.
func NewBookingHandler(dispatch *services.DispatchService) *BookingHandler {
	return &BookingHandler{dispatch: dispatch}
}

// SchedulePickup creates a booking and notifies the nearest shops.
func (h *BookingHandler) SchedulePickup(c *fiber.Ctx) error {
	var req models.PickupRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.dispatch.SchedulePickup(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    result,
	})
}

// GetCustomerBookings lists a customer's bookings, newest first.
func (h *BookingHandler) GetCustomerBookings(c *fiber.Ctx) error {
	customerID := c.Params("customerId")
	status := models.PickupStatus(c.Query("status"))

	bookings, err := h.dispatch.CustomerBookings(customerID, status)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    bookings,
	})
}

// UpdateStatus applies a lifecycle transition to a booking.
func (h *BookingHandler) UpdateStatus(c *fiber.Ctx) error {
	var req struct {
		BookingID               string     `json:"bookingId"`
		Status                  string     `json:"status"`
		EstimatedCompletionTime *time.Time `json:"estimatedCompletionTime"`
		CancelReason            string     `json:"cancelReason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	err := h.dispatch.UpdateStatus(req.BookingID, models.PickupStatus(req.Status), req.EstimatedCompletionTime, req.CancelReason)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking status updated successfully",
	})
}

// CancelBooking cancels a booking with a reason.
func (h *BookingHandler) CancelBooking(c *fiber.Ctx) error {
	var req struct {
		BookingID    string `json:"bookingId"`
		CancelReason string `json:"cancelReason"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.dispatch.CancelBooking(req.BookingID, req.CancelReason); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Booking cancelled successfully",
	})
}

// RateBooking attaches a rating to a completed booking.
func (h *BookingHandler) RateBooking(c *fiber.Ctx) error {
	var req struct {
		BookingID string `json:"bookingId"`
		Rating    int    `json:"rating"`
		Feedback  string `json:"feedback"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.dispatch.RateBooking(req.BookingID, req.Rating, req.Feedback); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Rating submitted successfully",
	})
}
