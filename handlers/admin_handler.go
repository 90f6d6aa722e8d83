package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nardinjo/borsh/clients"
	"github.com/Nardinjo/borsh/models"
)

// AdminHandler serves the read-only dashboard lists. Each request
// re-fetches from the Hotel API; the display keeps only the first
// recentLimit entries in whatever order the backend returned them.
type AdminHandler struct {
	api         *clients.HotelAPIClient
	recentLimit int
}

func NewAdminHandler(api *clients.HotelAPIClient, recentLimit int) *AdminHandler {
	return &AdminHandler{
		api:         api,
		recentLimit: recentLimit,
	}
}

// ListBookings handles GET /api/admin/bookings
func (h *AdminHandler) ListBookings(c *gin.Context) {
	bookings, err := h.api.ListBookings()
	if err != nil {
		slog.Error("bookings fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Failed to load bookings. Please try again.",
		})
		return
	}

	if len(bookings) > h.recentLimit {
		bookings = bookings[:h.recentLimit]
	}

	c.JSON(http.StatusOK, models.BookingList{Bookings: bookings})
}

// GetBooking handles GET /api/admin/bookings/:bookingId
func (h *AdminHandler) GetBooking(c *gin.Context) {
	booking, err := h.api.GetBooking(c.Param("bookingId"))
	if err != nil {
		slog.Error("booking fetch failed", "booking_id", c.Param("bookingId"), "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Failed to load booking. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, booking)
}

// ListOrders handles GET /api/admin/orders
func (h *AdminHandler) ListOrders(c *gin.Context) {
	orders, err := h.api.ListOrders()
	if err != nil {
		slog.Error("orders fetch failed", "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Failed to load orders. Please try again.",
		})
		return
	}

	if len(orders) > h.recentLimit {
		orders = orders[:h.recentLimit]
	}

	c.JSON(http.StatusOK, models.OrderList{Orders: orders})
}

// GetOrder handles GET /api/admin/orders/:orderId
func (h *AdminHandler) GetOrder(c *gin.Context) {
	order, err := h.api.GetOrder(c.Param("orderId"))
	if err != nil {
		slog.Error("order fetch failed", "order_id", c.Param("orderId"), "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Failed to load order. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, order)
}
