package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineTotalPerNight(t *testing.T) {
	room := NewRoomItem("room-1", "Deluxe King", RoomDetails{NightlyPrice: 180})

	assert.Equal(t, int64(360), room.LineTotal(2))
	assert.Equal(t, int64(180), room.LineTotal(1))
	// A stay shorter than one night still charges one night.
	assert.Equal(t, int64(180), room.LineTotal(0))
}

func TestLineTotalFlatKinds(t *testing.T) {
	items := []ServiceItem{
		NewAircraftItem("air-1", "City Hop", AircraftDetails{FlightPrice: 1200}),
		NewCarItem("car-1", "Executive Sedan", CarDetails{DailyPrice: 90}),
		NewTravelItem("pkg-1", "Coastal Escape", TravelDetails{PackagePrice: 600}),
		NewDiningItem("din-1", "Rooftop Dinner", DiningDetails{CoverPrice: 75}),
	}

	for _, item := range items {
		assert.Equal(t, item.UnitPrice, item.LineTotal(3), "kind %s must not multiply by nights", item.Kind)
	}
}

func TestConstructorsResolvePriceFromDetails(t *testing.T) {
	room := NewRoomItem("room-1", "Suite", RoomDetails{NightlyPrice: 300})
	assert.Equal(t, int64(300), room.Price())
	assert.True(t, room.PerNight)

	dining := NewDiningItem("din-1", "Chef's Table", DiningDetails{CoverPrice: 75})
	assert.Equal(t, int64(75), dining.Price())
	assert.False(t, dining.PerNight)
}
