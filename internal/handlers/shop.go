package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/services"
)

// ShopHandler handles vendor shop management requests.
type ShopHandler struct {
	shops *services.ShopService
}

// NewShopHandler creates a new shop handler.
func NewShopHandler(shops *services.ShopService) *ShopHandler {
	return &ShopHandler{shops: shops}
}

// AddShop creates a shop with its address for a vendor.
func (h *ShopHandler) AddShop(c *fiber.Ctx) error {
	var reg models.ShopRegistration
	if err := c.BodyParser(&reg); err != nil {
		return badRequest(c, "Invalid request body")
	}

	shop, err := h.shops.AddShop(&reg)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"data":    shop,
	})
}

// GetVendorShops lists a vendor's shops with addresses.
func (h *ShopHandler) GetVendorShops(c *fiber.Ctx) error {
	shops, err := h.shops.VendorShops(c.Params("vendorId"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"data":    shops,
	})
}

// UpdateShop applies the allowed shop field changes.
func (h *ShopHandler) UpdateShop(c *fiber.Ctx) error {
	var update models.ShopUpdate
	if err := c.BodyParser(&update); err != nil {
		return badRequest(c, "Invalid request body")
	}

	if err := h.shops.UpdateShop(c.Params("shopId"), &update); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Shop updated successfully",
	})
}
