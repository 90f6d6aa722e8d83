package models

import "github.com/shopspring/decimal"

// MenuItem is a single entry of the bar or restaurant menu as served by
// the Hotel API. Items are immutable once fetched.
type MenuItem struct {
	ItemID      string          `json:"item_id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Price       decimal.Decimal `json:"price"`
	Category    string          `json:"category"`
	MenuType    string          `json:"menu_type,omitempty"`
	Available   bool            `json:"available,omitempty"`
}

// Catalog groups menu items by their category, mirroring the shape the
// Hotel API returns under its "menu" key.
type Catalog map[string][]MenuItem

type MenusResponse struct {
	Bar        Catalog `json:"bar"`
	Restaurant Catalog `json:"restaurant"`
}

type QRCodeResponse struct {
	QRCode   string `json:"qr_code"`
	URL      string `json:"url,omitempty"`
	MenuType string `json:"menu_type,omitempty"`
}
