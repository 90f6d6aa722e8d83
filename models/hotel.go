package models

import "github.com/shopspring/decimal"

// HotelInfo is the static content of the home screen.
type HotelInfo struct {
	Name         string          `json:"name"`
	Tagline      string          `json:"tagline"`
	Description  string          `json:"description"`
	Address      string          `json:"address"`
	BookingEmail string          `json:"booking_email"`
	RoomType     string          `json:"room_type"`
	NightlyRate  decimal.Decimal `json:"nightly_rate"`
	Amenities    []Amenity       `json:"amenities"`
}

type Amenity struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// DefaultHotelInfo returns the Hotel Ulin profile shown on the home page.
func DefaultHotelInfo() HotelInfo {
	return HotelInfo{
		Name:         "Hotel Ulin",
		Tagline:      "4-Star Beachfront Paradise in Borsh, Albania",
		Description:  "Experience luxury by the sea with world-class amenities",
		Address:      "Borsh Beach, Albania",
		BookingEmail: "booking@hotelulin.com",
		RoomType:     "Deluxe Beachfront",
		NightlyRate:  decimal.NewFromInt(120),
		Amenities: []Amenity{
			{Name: "Private Beach Access", Description: "Exclusive beachfront location"},
			{Name: "Swimming Pool", Description: "Infinity pool with sea views"},
			{Name: "Restaurant & Bar", Description: "Local and international cuisine"},
			{Name: "QR Code Ordering", Description: "Convenient mobile ordering"},
		},
	}
}
