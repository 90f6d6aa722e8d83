package models

import "github.com/shopspring/decimal"

// OrderRequest is the snapshot of a cart sent to the Hotel API. It exists
// only for the duration of one submission.
type OrderRequest struct {
	TableNumber         string      `json:"table_number"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone"`
	Items               []OrderLine `json:"items"`
	OrderType           string      `json:"order_type"`
	SpecialInstructions string      `json:"special_instructions"`
}

// Order is the server-owned order record displayed in the admin view.
type Order struct {
	OrderID             string          `json:"order_id"`
	TableNumber         string          `json:"table_number"`
	CustomerName        string          `json:"customer_name"`
	CustomerPhone       string          `json:"customer_phone"`
	Items               []OrderLine     `json:"items"`
	TotalAmount         decimal.Decimal `json:"total_amount"`
	OrderType           string          `json:"order_type"`
	SpecialInstructions string          `json:"special_instructions"`
	Status              string          `json:"status"`
	CreatedAt           string          `json:"created_at"`
}

type OrderConfirmation struct {
	Message     string          `json:"message,omitempty"`
	OrderID     string          `json:"order_id"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

type OrderList struct {
	Orders []Order `json:"orders"`
}
