package domain

import (
	"strconv"
	"strings"
	"time"
)

// Product statuses as the backend spells them.
const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
	StatusArchived = "Archived"
)

// Product is a catalog entry. ID is assigned by the backend on creation and
// is unique; the price travels as decimal text.
type Product struct {
	ID          int    `json:"id,omitempty"`
	Name        string `json:"product_name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	InStock     int    `json:"in_stock"`
	Status      string `json:"status"`
}

// ProductDraft is the in-memory working copy edited by the mutation form.
// PlaceholderID is a client-generated row key used only until the backend
// assigns a real identifier; it must never appear in a create payload.
type ProductDraft struct {
	PlaceholderID int
	ID            int
	Name          string
	Description   string
	Price         string
	InStock       int
	Status        string
}

// NewProductDraft returns a blank draft with form defaults.
func NewProductDraft() ProductDraft {
	return ProductDraft{
		PlaceholderID: int(time.Now().UnixMilli()),
		Price:         "0.00",
		Status:        StatusActive,
	}
}

// DraftFromProduct seeds a draft from an existing record for editing.
func DraftFromProduct(p Product) ProductDraft {
	return ProductDraft{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		InStock:     p.InStock,
		Status:      p.Status,
	}
}

// Product converts the draft to the wire record. The placeholder ID is
// dropped; only a backend-assigned ID survives.
func (d ProductDraft) Product() Product {
	return Product{
		ID:          d.ID,
		Name:        d.Name,
		Description: d.Description,
		Price:       d.Price,
		InStock:     d.InStock,
		Status:      d.Status,
	}
}

// CoerceStock parses a stock-count field value. Non-numeric input coerces to
// zero rather than being rejected.
func CoerceStock(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return 0
	}
	return n
}
