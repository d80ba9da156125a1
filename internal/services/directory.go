package services

import (
	"log"
	"sort"
	"sync"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

// DefaultNearestShopLimit caps how many shops a pickup request notifies.
const DefaultNearestShopLimit = 5

// ShopDistance is a shop ranked by distance from a pickup location.
type ShopDistance struct {
	Shop       *models.Shop
	Address    *models.Address
	DistanceKm float64
}

// ShopDirectory resolves the nearest eligible shops for a pickup location.
type ShopDirectory struct {
	store storage.Store
}

// NewShopDirectory creates a new shop directory.
func NewShopDirectory(store storage.Store) *ShopDirectory {
	return &ShopDirectory{store: store}
}

// NearestShops returns up to limit shops ordered by ascending distance from
// location (ties broken by shop id). Shops without a resolvable address are
// skipped, not fatal. An empty result is an error: callers must not create
// a booking that notifies nobody.
func (d *ShopDirectory) NearestShops(location geo.Coordinate, limit int) ([]*ShopDistance, error) {
	if err := location.Validate(); err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultNearestShopLimit
	}

	shops, err := d.store.GetAllShops()
	if err != nil {
		return nil, err
	}

	// Resolve addresses in parallel; each shop is independent.
	ranked := make([]*ShopDistance, len(shops))
	var wg sync.WaitGroup
	for i, shop := range shops {
		if shop.ShopLocation == "" {
			continue
		}
		wg.Add(1)
		go func(i int, shop *models.Shop) {
			defer wg.Done()

			address, err := d.store.GetAddress(shop.ShopLocation)
			if err != nil {
				log.Printf("skipping shop %s: %v", shop.ShopID, err)
				return
			}
			distance, err := geo.Distance(location, address.AddressCoordinates)
			if err != nil {
				log.Printf("skipping shop %s: %v", shop.ShopID, err)
				return
			}
			ranked[i] = &ShopDistance{Shop: shop, Address: address, DistanceKm: distance}
		}(i, shop)
	}
	wg.Wait()

	var result []*ShopDistance
	for _, sd := range ranked {
		if sd != nil {
			result = append(result, sd)
		}
	}
	if len(result) == 0 {
		return nil, apperr.Unavailable("no shops available in your area")
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].DistanceKm != result[j].DistanceKm {
			return result[i].DistanceKm < result[j].DistanceKm
		}
		return result[i].Shop.ShopID < result[j].Shop.ShopID
	})
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
