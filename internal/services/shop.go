package services

import (
	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// ShopService manages vendor shops and their addresses.
type ShopService struct {
	store storage.Store
}

// NewShopService creates a shop service.
func NewShopService(store storage.Store) *ShopService {
	return &ShopService{store: store}
}

// AddShop creates the shop's address, the shop itself (BRONZE level), links
// the address back to the shop and records the shop on the owning vendor.
func (s *ShopService) AddShop(reg *models.ShopRegistration) (*models.Shop, error) {
	if reg.VendorID == "" || reg.ShopName == "" || reg.ShopAddress.CompleteAddress == "" {
		return nil, apperr.Validation("missing required fields")
	}
	if err := reg.ShopAddress.Coordinates.Validate(); err != nil {
		return nil, err
	}

	vendor, err := s.store.GetVendor(reg.VendorID)
	if err != nil {
		return nil, err
	}

	address, err := s.store.CreateAddress(&models.Address{
		AddressCoordinates: reg.ShopAddress.Coordinates,
		CompleteAddress:    reg.ShopAddress.CompleteAddress,
	})
	if err != nil {
		return nil, err
	}

	shop, err := s.store.CreateShop(&models.Shop{
		ShopName:        reg.ShopName,
		ShopLocation:    address.AddressID,
		VendorID:        reg.VendorID,
		ShopsDocumentID: reg.ShopsDocumentID,
		ShopLevel:       models.ShopLevelBronze,
	})
	if err != nil {
		return nil, err
	}

	address.ShopID = shop.ShopID
	if err := s.store.UpdateAddress(address); err != nil {
		return nil, err
	}

	vendor.ShopIDs = append(vendor.ShopIDs, shop.ShopID)
	if err := s.store.UpdateVendor(vendor); err != nil {
		return nil, err
	}
	return shop, nil
}

// VendorShops lists a vendor's shops with their addresses resolved.
func (s *ShopService) VendorShops(vendorID string) ([]*ShopWithAddress, error) {
	if vendorID == "" {
		return nil, apperr.Validation("vendor ID is required")
	}
	if _, err := s.store.GetVendor(vendorID); err != nil {
		return nil, err
	}

	shops, err := s.store.GetShopsByVendor(vendorID)
	if err != nil {
		return nil, err
	}

	result := make([]*ShopWithAddress, 0, len(shops))
	for _, shop := range shops {
		entry := &ShopWithAddress{Shop: *shop}
		if address, err := s.store.GetAddress(shop.ShopLocation); err == nil {
			entry.Address = address
		}
		result = append(result, entry)
	}
	return result, nil
}

// UpdateShop applies the allowed shop field changes.
func (s *ShopService) UpdateShop(shopID string, update *models.ShopUpdate) error {
	if shopID == "" {
		return apperr.Validation("shop ID is required")
	}
	if update.ShopName == "" && update.ShopsDocumentID == "" {
		return apperr.Validation("no valid updates provided")
	}
	return s.store.UpdateShop(shopID, update)
}
