package checkout

import (
	"testing"

	"grandstay/models"

	"github.com/stretchr/testify/assert"
)

func TestComputePricingFlatItems(t *testing.T) {
	items := []models.ServiceItem{
		models.NewTravelItem("pkg-1", "Coastal Escape", models.TravelDetails{
			PackageName:  "Coastal Escape",
			PackagePrice: 600,
		}),
		models.NewDiningItem("din-1", "Rooftop Dinner", models.DiningDetails{
			Venue:      "Rooftop",
			CoverPrice: 400,
		}),
	}

	pricing := ComputePricing(items, 0)

	assert.Equal(t, int64(1000), pricing.Subtotal)
	assert.Equal(t, int64(30), pricing.Tax)
	assert.Equal(t, int64(10), pricing.ServiceCharge)
	assert.Equal(t, int64(1040), pricing.Total)
}

func TestComputePricingPerNightItems(t *testing.T) {
	items := []models.ServiceItem{
		models.NewRoomItem("room-1", "Deluxe King", models.RoomDetails{
			HotelName:    "Grand Stay",
			RoomType:     "Deluxe King",
			NightlyPrice: 180,
		}),
	}

	pricing := ComputePricing(items, 2)

	assert.Equal(t, int64(360), pricing.Subtotal)
	// Tax and service charge round independently: 10.8 -> 11, 3.6 -> 4.
	assert.Equal(t, int64(11), pricing.Tax)
	assert.Equal(t, int64(4), pricing.ServiceCharge)
	assert.Equal(t, int64(375), pricing.Total)
}

func TestComputePricingTreatsMissingNightsAsOne(t *testing.T) {
	items := []models.ServiceItem{
		models.NewRoomItem("room-1", "Standard Queen", models.RoomDetails{
			NightlyPrice: 250,
		}),
	}

	assert.Equal(t, int64(250), Subtotal(items, 0))
	assert.Equal(t, int64(250), Subtotal(items, 1))
}

func TestComputePricingMixedCart(t *testing.T) {
	items := []models.ServiceItem{
		models.NewRoomItem("room-1", "Suite", models.RoomDetails{NightlyPrice: 300}),
		models.NewCarItem("car-1", "Executive Sedan", models.CarDetails{DailyPrice: 90}),
	}

	pricing := ComputePricing(items, 3)

	assert.Equal(t, int64(990), pricing.Subtotal)
	assert.Equal(t, int64(30), pricing.Tax)           // 29.7 rounds up
	assert.Equal(t, int64(10), pricing.ServiceCharge) // 9.9 rounds up
	assert.Equal(t, int64(1030), pricing.Total)
}

func TestComputePricingEmptyCart(t *testing.T) {
	pricing := ComputePricing(nil, 2)

	assert.Equal(t, int64(0), pricing.Subtotal)
	assert.Equal(t, int64(0), pricing.Total)
}
