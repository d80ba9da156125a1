package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/services"
)

// AuthHandler handles registration, login and OTP verification requests.
type AuthHandler struct {
	auth *services.AuthService
}

// NewAuthHandler creates a new auth handler.
func NewAuthHandler(auth *services.AuthService) *AuthHandler {
	return &AuthHandler{auth: auth}
}

// RegisterCustomer handles customer registration.
func (h *AuthHandler) RegisterCustomer(c *fiber.Ctx) error {
	var reg models.CustomerRegistration
	if err := c.BodyParser(&reg); err != nil {
		return badRequest(c, "Invalid request body")
	}

	customer, err := h.auth.RegisterCustomer(&reg)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    customer,
	})
}

// RegisterVendor handles vendor registration.
func (h *AuthHandler) RegisterVendor(c *fiber.Ctx) error {
	var reg models.VendorRegistration
	if err := c.BodyParser(&reg); err != nil {
		return badRequest(c, "Invalid request body")
	}

	vendor, err := h.auth.RegisterVendor(&reg)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    vendor,
	})
}

// CustomerLogin issues an OTP for a registered customer.
func (h *AuthHandler) CustomerLogin(c *fiber.Ctx) error {
	var req struct {
		Mobile string `json:"mobile"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	otpID, err := h.auth.CustomerLogin(req.Mobile)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully",
		"data":    fiber.Map{"otpId": otpID},
	})
}

// VendorLogin issues an OTP for a registered vendor.
func (h *AuthHandler) VendorLogin(c *fiber.Ctx) error {
	var req struct {
		Mobile string `json:"mobile"`
	}
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	otpID, err := h.auth.VendorLogin(req.Mobile)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP sent successfully",
		"data":    fiber.Map{"otpId": otpID},
	})
}

// VerifyOTP verifies a login code and returns the user with a session token.
func (h *AuthHandler) VerifyOTP(c *fiber.Ctx) error {
	var req models.OTPVerification
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "Invalid request body")
	}

	result, err := h.auth.VerifyOTP(&req)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "OTP verified successfully",
		"data":    result,
	})
}
