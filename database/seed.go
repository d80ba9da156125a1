package database

import (
	"fmt"
	"log"

	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// Seed loads demo vendors, shops, customers and the scrap catalog for local
// development. Not idempotent; run against an empty store.
func Seed(store storage.Store) error {
	vendors := []*models.Vendor{
		{
			VendorName:              "John's Recycling",
			VendorEmail:             "john@recycling.com",
			VendorMobile:            "9876543210",
			VerificationDocumentIDs: []string{},
			ShopIDs:                 []string{},
			ReferredVendorIDs:       []string{},
		},
		{
			VendorName:              "Green Scrap Solutions",
			VendorEmail:             "green@scrap.com",
			VendorMobile:            "9876543211",
			VerificationDocumentIDs: []string{},
			ShopIDs:                 []string{},
			ReferredVendorIDs:       []string{},
		},
	}
	for _, vendor := range vendors {
		if _, err := store.CreateVendor(vendor); err != nil {
			return fmt.Errorf("seed vendor %s: %w", vendor.VendorName, err)
		}
	}

	shops := []struct {
		name     string
		level    models.ShopLevel
		sales    float64
		location geo.Coordinate
		address  string
	}{
		{
			name:     "Central Recycling Hub",
			level:    models.ShopLevelGold,
			sales:    50000,
			location: geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714},
			address:  "CG Road, Ahmedabad",
		},
		{
			name:     "East Side Scrap",
			level:    models.ShopLevelSilver,
			sales:    25000,
			location: geo.Coordinate{Latitude: 23.0395, Longitude: 72.6266},
			address:  "Nikol, Ahmedabad",
		},
	}
	for i, entry := range shops {
		vendor := vendors[i%len(vendors)]

		address, err := store.CreateAddress(&models.Address{
			AddressCoordinates: entry.location,
			CompleteAddress:    entry.address,
		})
		if err != nil {
			return fmt.Errorf("seed address for %s: %w", entry.name, err)
		}

		shop, err := store.CreateShop(&models.Shop{
			ShopName:              entry.name,
			ShopLocation:          address.AddressID,
			VendorID:              vendor.VendorID,
			ShopLevel:             entry.level,
			TotalShopSaleTillDate: entry.sales,
		})
		if err != nil {
			return fmt.Errorf("seed shop %s: %w", entry.name, err)
		}

		address.ShopID = shop.ShopID
		if err := store.UpdateAddress(address); err != nil {
			return fmt.Errorf("seed address link for %s: %w", entry.name, err)
		}

		vendor.ShopIDs = append(vendor.ShopIDs, shop.ShopID)
		if err := store.UpdateVendor(vendor); err != nil {
			return fmt.Errorf("seed vendor link for %s: %w", entry.name, err)
		}
	}

	customers := []*models.Customer{
		{
			CustomerName:           "Alice Smith",
			CustomerMobile:         "9876543212",
			CustomerEmail:          "alice@example.com",
			CustomerSavedAddresses: []string{},
			IsVerified:             true,
		},
		{
			CustomerName:           "Bob Johnson",
			CustomerMobile:         "9876543213",
			CustomerEmail:          "bob@example.com",
			CustomerSavedAddresses: []string{},
			IsVerified:             true,
		},
	}
	for _, customer := range customers {
		if _, err := store.CreateCustomer(customer); err != nil {
			return fmt.Errorf("seed customer %s: %w", customer.CustomerName, err)
		}
	}

	scraps := []*models.Scrap{
		{ScrapName: "Newspaper", ScrapCategory: models.ScrapCategoryPaper, ScrapAmountAsPer: "KG", ScrapAmount: 12},
		{ScrapName: "Cardboard", ScrapCategory: models.ScrapCategoryPaper, ScrapAmountAsPer: "KG", ScrapAmount: 8},
		{ScrapName: "PET Bottles", ScrapCategory: models.ScrapCategoryPlastic, ScrapAmountAsPer: "KG", ScrapAmount: 20},
		{ScrapName: "Iron", ScrapCategory: models.ScrapCategoryMetal, ScrapAmountAsPer: "KG", ScrapAmount: 28},
		{ScrapName: "Old Laptop", ScrapCategory: models.ScrapCategoryEWaste, ScrapAmountAsPer: "PIECE", ScrapAmount: 300},
	}
	for _, scrap := range scraps {
		if _, err := store.CreateScrap(scrap); err != nil {
			return fmt.Errorf("seed scrap %s: %w", scrap.ScrapName, err)
		}
	}

	log.Println("✅ Seed data loaded")
	return nil
}
