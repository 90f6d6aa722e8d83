package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Nardinjo/borsh/clients"
	"github.com/Nardinjo/borsh/models"
)

// OrderHandler submits cart snapshots to the Hotel API. The backend owns
// order numbering, totals and status; nothing is retried automatically.
type OrderHandler struct {
	carts *CartHandler
	api   *clients.HotelAPIClient
}

func NewOrderHandler(carts *CartHandler, api *clients.HotelAPIClient) *OrderHandler {
	return &OrderHandler{
		carts: carts,
		api:   api,
	}
}

// Submit handles POST /api/carts/:cartId/submit. An empty cart is refused
// before any network call. On success the cart is cleared; on failure the
// cart and customer fields are left untouched for a manual retry.
func (h *OrderHandler) Submit(c *gin.Context) {
	cartID := c.Param("cartId")

	snapshot, exists := h.carts.Snapshot(cartID)
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Cart not found",
		})
		return
	}

	if len(snapshot.Items) == 0 {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "EMPTY_CART",
			Message: "Please add items to your order",
		})
		return
	}

	conf, err := h.api.CreateOrder(snapshot)
	if err != nil {
		slog.Error("order submission failed", "cart_id", cartID, "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Order failed. Please try again.",
		})
		return
	}

	h.carts.Clear(cartID)

	slog.Info("order submitted", "cart_id", cartID, "order_id", conf.OrderID, "total_amount", conf.TotalAmount)

	c.JSON(http.StatusOK, conf)
}
