package models

import "github.com/shopspring/decimal"

// BookingRequest carries a room reservation form. Only field presence is
// validated here; date ordering and pricing belong to the Hotel API.
type BookingRequest struct {
	GuestName       string `json:"guest_name" binding:"required"`
	GuestEmail      string `json:"guest_email" binding:"required,email"`
	GuestPhone      string `json:"guest_phone" binding:"required"`
	CheckInDate     string `json:"check_in_date" binding:"required"`
	CheckOutDate    string `json:"check_out_date" binding:"required"`
	RoomType        string `json:"room_type" binding:"required"`
	NumberOfGuests  int    `json:"number_of_guests" binding:"required,min=1,max=4"`
	SpecialRequests string `json:"special_requests"`
}

// DefaultBookingRequest returns the booking form's default values.
func DefaultBookingRequest() BookingRequest {
	return BookingRequest{
		RoomType:       "Deluxe Beachfront",
		NumberOfGuests: 1,
	}
}

// Booking is the server-owned reservation record. Read-only here; the
// Hotel API owns its lifecycle.
type Booking struct {
	BookingID       string          `json:"booking_id"`
	GuestName       string          `json:"guest_name"`
	GuestEmail      string          `json:"guest_email"`
	GuestPhone      string          `json:"guest_phone"`
	CheckInDate     string          `json:"check_in_date"`
	CheckOutDate    string          `json:"check_out_date"`
	RoomType        string          `json:"room_type"`
	NumberOfGuests  int             `json:"number_of_guests"`
	SpecialRequests string          `json:"special_requests"`
	Status          string          `json:"status"`
	CreatedAt       string          `json:"created_at"`
	TotalPrice      decimal.Decimal `json:"total_price"`
}

type BookingConfirmation struct {
	Message    string          `json:"message,omitempty"`
	BookingID  string          `json:"booking_id"`
	TotalPrice decimal.Decimal `json:"total_price"`
}

type BookingList struct {
	Bookings []Booking `json:"bookings"`
}
