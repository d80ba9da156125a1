package services

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scrapiteazy/scrapeazy-backend/internal/apperr"
	"github.com/scrapiteazy/scrapeazy-backend/internal/geo"
	"github.com/scrapiteazy/scrapeazy-backend/internal/models"
	"github.com/scrapiteazy/scrapeazy-backend/internal/storage"
)

func TestNearestShopsOrdersByDistance(t *testing.T) {
	store := storage.NewMemoryStore()
	vendor := seedVendor(t, store, "9000000001")

	// pickup at CG Road, Ahmedabad
	pickup := geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714}

	far := seedShop(t, store, vendor.VendorID, "Far Shop", geo.Coordinate{Latitude: 23.20, Longitude: 72.70})
	near := seedShop(t, store, vendor.VendorID, "Near Shop", geo.Coordinate{Latitude: 23.0230, Longitude: 72.5720})
	mid := seedShop(t, store, vendor.VendorID, "Mid Shop", geo.Coordinate{Latitude: 23.0395, Longitude: 72.6266})

	directory := NewShopDirectory(store)
	ranked, err := directory.NearestShops(pickup, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 3)

	assert.Equal(t, near.ShopID, ranked[0].Shop.ShopID)
	assert.Equal(t, mid.ShopID, ranked[1].Shop.ShopID)
	assert.Equal(t, far.ShopID, ranked[2].Shop.ShopID)
	assert.Less(t, ranked[0].DistanceKm, ranked[1].DistanceKm)
	assert.Less(t, ranked[1].DistanceKm, ranked[2].DistanceKm)
}

func TestNearestShopsHonorsLimit(t *testing.T) {
	store := storage.NewMemoryStore()
	vendor := seedVendor(t, store, "9000000002")

	pickup := geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714}
	for i := 0; i < 8; i++ {
		seedShop(t, store, vendor.VendorID, fmt.Sprintf("Shop %d", i), geo.Coordinate{
			Latitude:  23.0225 + float64(i)*0.01,
			Longitude: 72.5714,
		})
	}

	directory := NewShopDirectory(store)
	ranked, err := directory.NearestShops(pickup, DefaultNearestShopLimit)
	require.NoError(t, err)
	assert.Len(t, ranked, DefaultNearestShopLimit)
}

func TestNearestShopsSkipsDanglingAddress(t *testing.T) {
	store := storage.NewMemoryStore()
	vendor := seedVendor(t, store, "9000000003")

	pickup := geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714}
	good := seedShop(t, store, vendor.VendorID, "Good Shop", geo.Coordinate{Latitude: 23.03, Longitude: 72.58})

	// shop whose address id points nowhere
	_, err := store.CreateShop(&models.Shop{
		ShopName:     "Broken Shop",
		ShopLocation: "missing-address-id",
		VendorID:     vendor.VendorID,
		ShopLevel:    models.ShopLevelBronze,
	})
	require.NoError(t, err)

	directory := NewShopDirectory(store)
	ranked, err := directory.NearestShops(pickup, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, good.ShopID, ranked[0].Shop.ShopID)
}

func TestNearestShopsEmptyIsUnavailable(t *testing.T) {
	store := storage.NewMemoryStore()
	directory := NewShopDirectory(store)

	_, err := directory.NearestShops(geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714}, 5)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnavailable))
}

func TestNearestShopsZeroDistance(t *testing.T) {
	store := storage.NewMemoryStore()
	vendor := seedVendor(t, store, "9000000004")

	at := geo.Coordinate{Latitude: 23.0225, Longitude: 72.5714}
	seedShop(t, store, vendor.VendorID, "Same Spot", at)

	directory := NewShopDirectory(store)
	ranked, err := directory.NearestShops(at, 5)
	require.NoError(t, err)
	require.Len(t, ranked, 1)
	assert.Equal(t, 0.0, ranked[0].DistanceKm)
}

func TestNearestShopsRejectsInvalidLocation(t *testing.T) {
	store := storage.NewMemoryStore()
	directory := NewShopDirectory(store)

	_, err := directory.NearestShops(geo.Coordinate{Latitude: 123, Longitude: 72.5714}, 5)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
