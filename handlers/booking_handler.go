package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nardinjo/borsh/clients"
	"github.com/Nardinjo/borsh/models"
)

// BookingHandler relays room reservation forms to the Hotel API. Dates
// are not cross-validated locally; ordering and pricing belong to the
// backend. No idempotency key is sent, so a retry after a lost success
// response can create a duplicate booking.
type BookingHandler struct {
	api *clients.HotelAPIClient
}

func NewBookingHandler(api *clients.HotelAPIClient) *BookingHandler {
	return &BookingHandler{api: api}
}

// Create handles POST /api/bookings
func (h *BookingHandler) Create(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	conf, err := h.api.CreateBooking(req)
	if err != nil {
		slog.Error("booking submission failed", "guest_name", req.GuestName, "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Booking failed. Please try again.",
		})
		return
	}

	slog.Info("booking confirmed", "booking_id", conf.BookingID, "total_price", conf.TotalPrice)

	c.JSON(http.StatusCreated, conf)
}

// Defaults handles GET /api/bookings/defaults. Clients reset their form
// to these values after a confirmed submission.
func (h *BookingHandler) Defaults(c *gin.Context) {
	c.JSON(http.StatusOK, models.DefaultBookingRequest())
}
