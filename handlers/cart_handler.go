package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/Nardinjo/borsh/models"
)

// CartHandler owns the in-memory cart sessions. Items added to a cart are
// resolved against the cached catalogs so prices always come from the
// menu, never from the client.
type CartHandler struct {
	mu    sync.RWMutex
	carts map[string]*models.Cart
	menus *MenuHandler
}

func NewCartHandler(menus *MenuHandler) *CartHandler {
	return &CartHandler{
		carts: make(map[string]*models.Cart),
		menus: menus,
	}
}

// CreateCart handles POST /api/carts
func (h *CartHandler) CreateCart(c *gin.Context) {
	var req models.CreateCartRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, models.ErrorResponse{
				Error:   "INVALID_INPUT",
				Message: "Invalid request body",
				Details: err.Error(),
			})
			return
		}
	}

	orderType := req.OrderType
	if orderType == "" {
		orderType = "bar"
	}

	cart := &models.Cart{
		CartID:    uuid.NewString(),
		OrderType: orderType,
	}

	h.mu.Lock()
	h.carts[cart.CartID] = cart
	h.mu.Unlock()

	slog.Info("cart created", "cart_id", cart.CartID, "order_type", orderType)

	c.JSON(http.StatusCreated, models.CreateCartResponse{CartID: cart.CartID})
}

// GetCart handles GET /api/carts/:cartId
func (h *CartHandler) GetCart(c *gin.Context) {
	cart, ok := h.lookup(c)
	if !ok {
		return
	}

	h.mu.RLock()
	resp := snapshotCart(cart)
	h.mu.RUnlock()

	c.JSON(http.StatusOK, resp)
}

// AddItem handles POST /api/carts/:cartId/items. Adding an item already
// in the cart increments its quantity; line order is preserved.
func (h *CartHandler) AddItem(c *gin.Context) {
	cart, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	item, found := h.menus.Lookup(req.ItemID)
	if !found {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Menu item not found",
		})
		return
	}

	h.mu.Lock()
	cart.AddItem(item)
	resp := snapshotCart(cart)
	h.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// UpdateItem handles PUT /api/carts/:cartId/items/:itemId. Quantity 0
// removes the line; negative quantities are rejected.
func (h *CartHandler) UpdateItem(c *gin.Context) {
	cart, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.SetQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Quantity must be zero or greater",
			Details: err.Error(),
		})
		return
	}

	h.mu.Lock()
	cart.SetQuantity(c.Param("itemId"), *req.Quantity)
	resp := snapshotCart(cart)
	h.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// RemoveItem handles DELETE /api/carts/:cartId/items/:itemId
func (h *CartHandler) RemoveItem(c *gin.Context) {
	cart, ok := h.lookup(c)
	if !ok {
		return
	}

	h.mu.Lock()
	cart.RemoveItem(c.Param("itemId"))
	resp := snapshotCart(cart)
	h.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// UpdateCustomer handles PUT /api/carts/:cartId/customer. Fields are
// stored verbatim; the Hotel API receives them unmodified at submission.
func (h *CartHandler) UpdateCustomer(c *gin.Context) {
	cart, ok := h.lookup(c)
	if !ok {
		return
	}

	var req models.UpdateCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Invalid request body",
			Details: err.Error(),
		})
		return
	}

	h.mu.Lock()
	cart.TableNumber = req.TableNumber
	cart.CustomerName = req.CustomerName
	cart.CustomerPhone = req.CustomerPhone
	cart.SpecialInstructions = req.SpecialInstructions
	if req.OrderType != "" {
		cart.OrderType = req.OrderType
	}
	resp := snapshotCart(cart)
	h.mu.Unlock()

	c.JSON(http.StatusOK, resp)
}

// Get returns a cart by id (helper for order submission).
func (h *CartHandler) Get(cartID string) (*models.Cart, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	cart, exists := h.carts[cartID]
	return cart, exists
}

// Snapshot copies the cart's lines and customer fields into an order
// request under the handler lock.
func (h *CartHandler) Snapshot(cartID string) (models.OrderRequest, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	cart, exists := h.carts[cartID]
	if !exists {
		return models.OrderRequest{}, false
	}
	return models.OrderRequest{
		TableNumber:         cart.TableNumber,
		CustomerName:        cart.CustomerName,
		CustomerPhone:       cart.CustomerPhone,
		Items:               append([]models.OrderLine(nil), cart.Lines...),
		OrderType:           cart.OrderType,
		SpecialInstructions: cart.SpecialInstructions,
	}, true
}

// Clear empties the cart and resets its customer fields (helper for order
// submission; called only after a confirmed success).
func (h *CartHandler) Clear(cartID string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cart, exists := h.carts[cartID]; exists {
		cart.Clear()
	}
}

// snapshotCart copies the cart and its lines into a value the response
// can serialize after the handler lock is released. Serializing the
// shared cart directly would race with concurrent mutations. Must be
// called with the handler lock held.
func snapshotCart(cart *models.Cart) models.CartResponse {
	snap := *cart
	snap.Lines = append([]models.OrderLine(nil), cart.Lines...)
	return models.CartResponse{Cart: &snap, Total: snap.Total()}
}

// lookup resolves the :cartId parameter, replying 404 when unknown.
func (h *CartHandler) lookup(c *gin.Context) (*models.Cart, bool) {
	cart, exists := h.Get(c.Param("cartId"))
	if !exists {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error:   "NOT_FOUND",
			Message: "Cart not found",
		})
		return nil, false
	}
	return cart, true
}
