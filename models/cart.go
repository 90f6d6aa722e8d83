package models

import "github.com/shopspring/decimal"

// OrderLine is a menu item plus the quantity requested by the guest.
type OrderLine struct {
	ItemID   string          `json:"item_id"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart holds one guest's pending order: line items in first-added order
// plus the customer details that will be submitted with it. At most one
// line exists per item id.
type Cart struct {
	CartID              string      `json:"cart_id"`
	Lines               []OrderLine `json:"items"`
	TableNumber         string      `json:"table_number"`
	CustomerName        string      `json:"customer_name"`
	CustomerPhone       string      `json:"customer_phone"`
	OrderType           string      `json:"order_type"`
	SpecialInstructions string      `json:"special_instructions"`
}

// AddItem merges the item into the cart. An existing line gains one unit;
// otherwise a new line with quantity 1 is appended at the end.
func (c *Cart) AddItem(item MenuItem) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == item.ItemID {
			c.Lines[i].Quantity++
			return
		}
	}
	c.Lines = append(c.Lines, OrderLine{
		ItemID:   item.ItemID,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: 1,
	})
}

// SetQuantity replaces a line's quantity in place, keeping its position.
// Quantity 0 removes the line. Unknown item ids are a no-op. Negative
// quantities are rejected at the handler and ignored here.
func (c *Cart) SetQuantity(itemID string, quantity int) {
	if quantity < 0 {
		return
	}
	if quantity == 0 {
		c.RemoveItem(itemID)
		return
	}
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines[i].Quantity = quantity
			return
		}
	}
}

// RemoveItem deletes the matching line if present.
func (c *Cart) RemoveItem(itemID string) {
	for i := range c.Lines {
		if c.Lines[i].ItemID == itemID {
			c.Lines = append(c.Lines[:i], c.Lines[i+1:]...)
			return
		}
	}
}

// Total is the sum of price times quantity over all lines. An empty cart
// totals zero.
func (c *Cart) Total() decimal.Decimal {
	total := decimal.Zero
	for _, line := range c.Lines {
		total = total.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Quantity))))
	}
	return total
}

// Clear empties the cart and resets the customer fields. Called only
// after the Hotel API confirms the order, never on failure.
func (c *Cart) Clear() {
	c.Lines = nil
	c.TableNumber = ""
	c.CustomerName = ""
	c.CustomerPhone = ""
	c.SpecialInstructions = ""
}

type CreateCartRequest struct {
	OrderType string `json:"order_type" binding:"omitempty,oneof=bar restaurant"`
}

type CreateCartResponse struct {
	CartID string `json:"cart_id"`
}

type AddItemRequest struct {
	ItemID string `json:"item_id" binding:"required"`
}

type SetQuantityRequest struct {
	Quantity *int `json:"quantity" binding:"required,gte=0"`
}

type UpdateCustomerRequest struct {
	TableNumber         string `json:"table_number"`
	CustomerName        string `json:"customer_name"`
	CustomerPhone       string `json:"customer_phone"`
	OrderType           string `json:"order_type" binding:"omitempty,oneof=bar restaurant"`
	SpecialInstructions string `json:"special_instructions"`
}

type CartResponse struct {
	Cart  *Cart           `json:"cart"`
	Total decimal.Decimal `json:"total"`
}
