// models/service_item.go
package models

// ServiceKind identifies the kind of bookable service in a checkout cart.
type ServiceKind string

const (
	ServiceKindRoom     ServiceKind = "room"
	ServiceKindAircraft ServiceKind = "aircraft"
	ServiceKindCar      ServiceKind = "car"
	ServiceKindTravel   ServiceKind = "travel"
	ServiceKindDining   ServiceKind = "dining"
)

// ServiceItem is one line item in a checkout cart. Each kind carries its own
// detail struct with its own nested price field; UnitPrice is resolved once
// when the item is added so totals never re-derive it from the details.
type ServiceItem struct {
	ID        string      `bson:"id" json:"id"`
	Kind      ServiceKind `bson:"kind" json:"kind"`
	Name      string      `bson:"name" json:"name"`
	UnitPrice int64       `bson:"unit_price" json:"unitPrice"` // integer currency units
	PerNight  bool        `bson:"per_night" json:"perNight"`   // true for room rates

	Room     *RoomDetails     `bson:"room,omitempty" json:"room,omitempty"`
	Aircraft *AircraftDetails `bson:"aircraft,omitempty" json:"aircraft,omitempty"`
	Car      *CarDetails      `bson:"car,omitempty" json:"car,omitempty"`
	Travel   *TravelDetails   `bson:"travel,omitempty" json:"travel,omitempty"`
	Dining   *DiningDetails   `bson:"dining,omitempty" json:"dining,omitempty"`
}

type RoomDetails struct {
	HotelName    string   `bson:"hotel_name" json:"hotelName"`
	RoomType     string   `bson:"room_type" json:"roomType"`
	NightlyPrice int64    `bson:"nightly_price" json:"nightlyPrice"`
	Beds         int      `bson:"beds,omitempty" json:"beds,omitempty"`
	Features     []string `bson:"features,omitempty" json:"features,omitempty"`
	Image        string   `bson:"image,omitempty" json:"image,omitempty"`
}

type AircraftDetails struct {
	AircraftType string `bson:"aircraft_type" json:"aircraftType"`
	FlightPrice  int64  `bson:"flight_price" json:"flightPrice"`
	Route        string `bson:"route,omitempty" json:"route,omitempty"`
}

type CarDetails struct {
	Model      string `bson:"model" json:"model"`
	DailyPrice int64  `bson:"daily_price" json:"dailyPrice"`
	WithDriver bool   `bson:"with_driver,omitempty" json:"withDriver,omitempty"`
}

type TravelDetails struct {
	PackageName  string `bson:"package_name" json:"packageName"`
	PackagePrice int64  `bson:"package_price" json:"packagePrice"`
}

type DiningDetails struct {
	Venue      string `bson:"venue" json:"venue"`
	CoverPrice int64  `bson:"cover_price" json:"coverPrice"`
	PartySize  int    `bson:"party_size,omitempty" json:"partySize,omitempty"`
}

// NewRoomItem builds a per-night room line item with the price resolved up front.
func NewRoomItem(id, name string, details RoomDetails) ServiceItem {
	return ServiceItem{
		ID:        id,
		Kind:      ServiceKindRoom,
		Name:      name,
		UnitPrice: details.NightlyPrice,
		PerNight:  true,
		Room:      &details,
	}
}

// NewAircraftItem builds a flat-price aircraft line item.
func NewAircraftItem(id, name string, details AircraftDetails) ServiceItem {
	return ServiceItem{
		ID:        id,
		Kind:      ServiceKindAircraft,
		Name:      name,
		UnitPrice: details.FlightPrice,
		Aircraft:  &details,
	}
}

// NewCarItem builds a flat-price car rental line item.
func NewCarItem(id, name string, details CarDetails) ServiceItem {
	return ServiceItem{
		ID:        id,
		Kind:      ServiceKindCar,
		Name:      name,
		UnitPrice: details.DailyPrice,
		Car:       &details,
	}
}

// NewTravelItem builds a flat-price travel planning line item.
func NewTravelItem(id, name string, details TravelDetails) ServiceItem {
	return ServiceItem{
		ID:        id,
		Kind:      ServiceKindTravel,
		Name:      name,
		UnitPrice: details.PackagePrice,
		Travel:    &details,
	}
}

// NewDiningItem builds a flat-price dining reservation line item.
func NewDiningItem(id, name string, details DiningDetails) ServiceItem {
	return ServiceItem{
		ID:        id,
		Kind:      ServiceKindDining,
		Name:      name,
		UnitPrice: details.CoverPrice,
		Dining:    &details,
	}
}

// Price returns the resolved unit price regardless of service kind.
func (s ServiceItem) Price() int64 {
	return s.UnitPrice
}

// LineTotal returns the item's contribution to the subtotal. Per-night items
// multiply by the stay length; everything else is a flat charge.
func (s ServiceItem) LineTotal(nights int) int64 {
	if s.PerNight {
		if nights < 1 {
			nights = 1
		}
		return s.UnitPrice * int64(nights)
	}
	return s.UnitPrice
}
