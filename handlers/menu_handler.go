package handlers

import (
	"log/slog"
	"net/http"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/Nardinjo/borsh/clients"
	"github.com/Nardinjo/borsh/models"
)

// MenuHandler caches the bar and restaurant catalogs fetched from the
// Hotel API and serves them to guests. Catalogs are replaced wholesale on
// refresh, never merged.
type MenuHandler struct {
	mu         sync.RWMutex
	api        *clients.HotelAPIClient
	bar        models.Catalog
	restaurant models.Catalog
}

func NewMenuHandler(api *clients.HotelAPIClient) *MenuHandler {
	// Empty catalogs marshal as {} rather than null before the first
	// successful refresh.
	return &MenuHandler{
		api:        api,
		bar:        models.Catalog{},
		restaurant: models.Catalog{},
	}
}

// RefreshMenus fetches both catalogs concurrently and applies them
// together. If either fetch fails, both updates are discarded and the
// previous catalogs stay in place.
func (h *MenuHandler) RefreshMenus() error {
	var bar, restaurant models.Catalog

	g := new(errgroup.Group)
	g.Go(func() error {
		var err error
		bar, err = h.api.FetchMenu("bar")
		return err
	})
	g.Go(func() error {
		var err error
		restaurant, err = h.api.FetchMenu("restaurant")
		return err
	})
	if err := g.Wait(); err != nil {
		return err
	}

	h.mu.Lock()
	h.bar = bar
	h.restaurant = restaurant
	h.mu.Unlock()
	return nil
}

// GetMenus handles GET /api/menus. A failed refresh degrades silently:
// the error is logged and whatever catalogs were loaded before are served.
func (h *MenuHandler) GetMenus(c *gin.Context) {
	if err := h.RefreshMenus(); err != nil {
		slog.Error("menu refresh failed", "error", err)
	}

	h.mu.RLock()
	resp := models.MenusResponse{Bar: h.bar, Restaurant: h.restaurant}
	h.mu.RUnlock()

	c.JSON(http.StatusOK, resp)
}

// Lookup finds a menu item by id in either cached catalog.
func (h *MenuHandler) Lookup(itemID string) (models.MenuItem, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, catalog := range []models.Catalog{h.bar, h.restaurant} {
		for _, items := range catalog {
			for _, item := range items {
				if item.ItemID == itemID {
					return item, true
				}
			}
		}
	}
	return models.MenuItem{}, false
}

// GetQRCode handles GET /api/qr-code/:menuType. The backend owns QR
// rendering; this only relays the image reference.
func (h *MenuHandler) GetQRCode(c *gin.Context) {
	menuType := c.Param("menuType")
	if menuType != "bar" && menuType != "restaurant" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error:   "INVALID_INPUT",
			Message: "Menu type must be bar or restaurant",
		})
		return
	}

	qr, err := h.api.FetchQRCode(menuType)
	if err != nil {
		slog.Error("qr code fetch failed", "menu_type", menuType, "error", err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse{
			Error:   "UPSTREAM_ERROR",
			Message: "Failed to generate QR code. Please try again.",
		})
		return
	}

	c.JSON(http.StatusOK, qr)
}
