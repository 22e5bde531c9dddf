// Package store holds the storefront state: the product catalog, the active
// cart, the order ledger, the editable homepage content and the snapshot
// serializer that exports and imports all of them as a single JSON document.
// Everything lives in memory for the lifetime of the process.
package store

// Product is a sellable catalog entry. Products are immutable once created;
// the admin surface can only add and delete them.
type Product struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category"`
	Image       string  `json:"image"`
}

// LineItem is a cart entry: a value copy of a product taken at add time plus
// a quantity. Later catalog edits or deletions do not touch existing line
// items.
type LineItem struct {
	Product
	Quantity int `json:"quantity"`
}

// Subtotal returns price times quantity for this line.
func (li LineItem) Subtotal() float64 {
	return li.Price * float64(li.Quantity)
}

// CustomerInfo carries the delivery details collected by the checkout form.
type CustomerInfo struct {
	Name    string `json:"name" schema:"name"`
	Phone   string `json:"phone" schema:"phone"`
	Address string `json:"address" schema:"address"`
}

// Order is a committed checkout. Once appended to the ledger an order is
// never mutated or deleted; Total always reflects the items it was created
// with, not live catalog prices.
type Order struct {
	ID           int64      `json:"id"`
	ReceiptID    string     `json:"receiptId,omitempty"`
	Items        []LineItem `json:"items"`
	CustomerName string     `json:"customerName"`
	Phone        string     `json:"phone"`
	Address      string     `json:"address"`
	Total        float64    `json:"total"`
	Date         string     `json:"date"`
}

// HomeContent is the editable homepage copy. It is a single value replaced
// wholesale on save, never partially mutated.
type HomeContent struct {
	Title       string `json:"title"`
	Subtitle    string `json:"subtitle"`
	Description string `json:"description"`
}
