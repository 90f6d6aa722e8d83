package clients

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/Nardinjo/borsh/models"
)

// HotelAPIClient talks to the backend Hotel API, the single owner of all
// persistence and business logic (pricing, availability, order numbering).
// Any transport error or non-2xx status is reported as one failure class;
// callers never distinguish by status code.
type HotelAPIClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewHotelAPIClient(baseURL string, timeout time.Duration) *HotelAPIClient {
	return &HotelAPIClient{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

type menuEnvelope struct {
	MenuType string         `json:"menu_type"`
	Menu     models.Catalog `json:"menu"`
}

// FetchMenu retrieves one catalog (bar or restaurant) grouped by category.
func (c *HotelAPIClient) FetchMenu(menuType string) (models.Catalog, error) {
	var envelope menuEnvelope
	if err := c.get(fmt.Sprintf("/api/menu/%s", menuType), &envelope); err != nil {
		return nil, err
	}
	return envelope.Menu, nil
}

// FetchQRCode retrieves the pre-rendered QR image reference for a menu.
// QR generation is owned by the backend; nothing is encoded locally.
func (c *HotelAPIClient) FetchQRCode(menuType string) (*models.QRCodeResponse, error) {
	var qr models.QRCodeResponse
	if err := c.get(fmt.Sprintf("/api/qr-code/%s", menuType), &qr); err != nil {
		return nil, err
	}
	return &qr, nil
}

// CreateBooking submits a reservation and returns the backend-assigned
// booking id and computed total price.
func (c *HotelAPIClient) CreateBooking(req models.BookingRequest) (*models.BookingConfirmation, error) {
	var conf models.BookingConfirmation
	if err := c.post("/api/bookings", req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *HotelAPIClient) ListBookings() ([]models.Booking, error) {
	var list models.BookingList
	if err := c.get("/api/bookings", &list); err != nil {
		return nil, err
	}
	return list.Bookings, nil
}

func (c *HotelAPIClient) GetBooking(bookingID string) (*models.Booking, error) {
	var booking models.Booking
	if err := c.get(fmt.Sprintf("/api/bookings/%s", bookingID), &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

// CreateOrder submits an order snapshot and returns the backend-assigned
// order id and total amount.
func (c *HotelAPIClient) CreateOrder(req models.OrderRequest) (*models.OrderConfirmation, error) {
	var conf models.OrderConfirmation
	if err := c.post("/api/orders", req, &conf); err != nil {
		return nil, err
	}
	return &conf, nil
}

func (c *HotelAPIClient) ListOrders() ([]models.Order, error) {
	var list models.OrderList
	if err := c.get("/api/orders", &list); err != nil {
		return nil, err
	}
	return list.Orders, nil
}

func (c *HotelAPIClient) GetOrder(orderID string) (*models.Order, error) {
	var order models.Order
	if err := c.get(fmt.Sprintf("/api/orders/%s", orderID), &order); err != nil {
		return nil, err
	}
	return &order, nil
}

func (c *HotelAPIClient) get(path string, out any) error {
	resp, err := c.httpClient.Get(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("failed to call hotel API: %w", err)
	}
	return c.decode(resp, out)
}

func (c *HotelAPIClient) post(path string, in, out any) error {
	jsonData, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.httpClient.Post(c.baseURL+path, "application/json", bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to call hotel API: %w", err)
	}
	return c.decode(resp, out)
}

func (c *HotelAPIClient) decode(resp *http.Response, out any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("hotel API returned status %d: %s", resp.StatusCode, string(body))
	}

	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return nil
}
