package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/Nardinjo/borsh/clients"
)

func init() {
	gin.SetMode(gin.TestMode)
	decimal.MarshalJSONWithoutQuotes = true
}

const barMenuJSON = `{
	"menu_type": "bar",
	"menu": {
		"Cocktails": [
			{"item_id": "bar_1", "name": "Mojito", "description": "Fresh mint, lime, white rum", "price": 10.0, "category": "Cocktails"}
		],
		"Beer": [
			{"item_id": "bar_3", "name": "Local Beer", "description": "Albanian craft beer", "price": 5.0, "category": "Beer"}
		]
	}
}`

const restaurantMenuJSON = `{
	"menu_type": "restaurant",
	"menu": {
		"Main Course": [
			{"item_id": "rest_1", "name": "Grilled Sea Bass", "description": "Fresh local sea bass", "price": 18.0, "category": "Main Course"}
		]
	}
}`

// fakeBackend is a stand-in Hotel API. Individual endpoint handlers can
// be swapped per test; POST call counts are recorded so tests can assert
// that guarded operations never reach the network.
type fakeBackend struct {
	mu           sync.Mutex
	orderCalls   int
	bookingCalls int

	barHandler        http.HandlerFunc
	restaurantHandler http.HandlerFunc
	createOrder       http.HandlerFunc
	createBooking     http.HandlerFunc
	listOrders        http.HandlerFunc
	listBookings      http.HandlerFunc
	qrCode            http.HandlerFunc

	server *httptest.Server
}

func newFakeBackend(t *testing.T) *fakeBackend {
	b := &fakeBackend{
		barHandler:        jsonHandler(barMenuJSON),
		restaurantHandler: jsonHandler(restaurantMenuJSON),
		createOrder:       jsonHandler(`{"message": "Order created successfully", "order_id": "X", "total_amount": 15.0}`),
		createBooking:     jsonHandler(`{"message": "Booking created successfully", "booking_id": "b-1", "total_price": 120.0}`),
		listOrders:        jsonHandler(`{"orders": []}`),
		listBookings:      jsonHandler(`{"bookings": []}`),
		qrCode:            jsonHandler(`{"qr_code": "data:image/png;base64,abc", "url": "http://backend/order/bar", "menu_type": "bar"}`),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/menu/bar", func(w http.ResponseWriter, r *http.Request) { b.barHandler(w, r) })
	mux.HandleFunc("/api/menu/restaurant", func(w http.ResponseWriter, r *http.Request) { b.restaurantHandler(w, r) })
	mux.HandleFunc("/api/orders", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			b.mu.Lock()
			b.orderCalls++
			b.mu.Unlock()
			b.createOrder(w, r)
			return
		}
		b.listOrders(w, r)
	})
	mux.HandleFunc("/api/bookings", func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodPost {
			b.mu.Lock()
			b.bookingCalls++
			b.mu.Unlock()
			b.createBooking(w, r)
			return
		}
		b.listBookings(w, r)
	})
	mux.HandleFunc("/api/qr-code/", func(w http.ResponseWriter, r *http.Request) { b.qrCode(w, r) })

	b.server = httptest.NewServer(mux)
	t.Cleanup(b.server.Close)
	return b
}

func (b *fakeBackend) client() *clients.HotelAPIClient {
	return clients.NewHotelAPIClient(b.server.URL, 2*time.Second)
}

func (b *fakeBackend) orderCallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.orderCalls
}

func (b *fakeBackend) bookingCallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.bookingCalls
}

func jsonHandler(body string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(body))
	}
}

func errorHandler(status int) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend failure", status)
	}
}

type app struct {
	router *gin.Engine
	menus  *MenuHandler
	carts  *CartHandler
}

// newApp wires the handlers the way main does and preloads the catalogs.
func newApp(t *testing.T, backend *fakeBackend) *app {
	api := backend.client()

	menus := NewMenuHandler(api)
	carts := NewCartHandler(menus)
	orders := NewOrderHandler(carts, api)
	bookings := NewBookingHandler(api)
	admin := NewAdminHandler(api, 5)

	if err := menus.RefreshMenus(); err != nil {
		t.Fatalf("failed to preload menus: %v", err)
	}

	router := gin.New()
	apiRoutes := router.Group("/api")
	{
		apiRoutes.GET("/menus", menus.GetMenus)
		apiRoutes.GET("/qr-code/:menuType", menus.GetQRCode)

		apiRoutes.POST("/carts", carts.CreateCart)
		apiRoutes.GET("/carts/:cartId", carts.GetCart)
		apiRoutes.POST("/carts/:cartId/items", carts.AddItem)
		apiRoutes.PUT("/carts/:cartId/items/:itemId", carts.UpdateItem)
		apiRoutes.DELETE("/carts/:cartId/items/:itemId", carts.RemoveItem)
		apiRoutes.PUT("/carts/:cartId/customer", carts.UpdateCustomer)
		apiRoutes.POST("/carts/:cartId/submit", orders.Submit)

		apiRoutes.GET("/bookings/defaults", bookings.Defaults)
		apiRoutes.POST("/bookings", bookings.Create)

		apiRoutes.GET("/admin/bookings", admin.ListBookings)
		apiRoutes.GET("/admin/orders", admin.ListOrders)
	}

	return &app{router: router, menus: menus, carts: carts}
}

func (a *app) do(t *testing.T, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, req)
	return w
}

func (a *app) createCart(t *testing.T) string {
	t.Helper()

	w := a.do(t, http.MethodPost, "/api/carts", map[string]string{"order_type": "bar"})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201 creating cart, got %d: %s", w.Code, w.Body.String())
	}
	var resp struct {
		CartID string `json:"cart_id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode create cart response: %v", err)
	}
	if resp.CartID == "" {
		t.Fatal("expected a cart id")
	}
	return resp.CartID
}
