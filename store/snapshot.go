package store

import "encoding/json"

// Snapshot serializes the union of catalog, ledger and content into the
// portable export document and applies imported documents back onto them.
type Snapshot struct {
	catalog *Catalog
	ledger  *Ledger
	content *Content
}

// NewSnapshot wires a snapshot serializer over the three stores.
func NewSnapshot(catalog *Catalog, ledger *Ledger, content *Content) *Snapshot {
	return &Snapshot{catalog: catalog, ledger: ledger, content: content}
}

// document is the export file shape. Pointer fields distinguish absent keys
// from empty ones so partial imports only touch the stores they name.
type document struct {
	Products    *[]Product   `json:"products,omitempty"`
	Orders      *[]Order     `json:"orders,omitempty"`
	HomeContent *HomeContent `json:"homeContent,omitempty"`
}

// Export renders the current state of all three stores as indented JSON. It
// is a pure read; no store is touched.
func (s *Snapshot) Export() ([]byte, error) {
	products := s.catalog.List()
	orders := s.ledger.Orders()
	content := s.content.Get()
	doc := document{
		Products:    &products,
		Orders:      &orders,
		HomeContent: &content,
	}
	return json.MarshalIndent(doc, "", "  ")
}

// Import parses the document and wholesale-replaces each store whose key is
// present. Absent keys leave their store untouched. A parse failure mutates
// nothing and is reported as a ParseError.
func (s *Snapshot) Import(data []byte) error {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return &ParseError{Err: err}
	}
	if doc.Products != nil {
		s.catalog.Replace(*doc.Products)
	}
	if doc.Orders != nil {
		s.ledger.Replace(*doc.Orders)
	}
	if doc.HomeContent != nil {
		s.content.Replace(*doc.HomeContent)
	}
	return nil
}

// DocumentInfo summarizes an export document without applying it.
type DocumentInfo struct {
	Products   int
	Orders     int
	HasContent bool
}

// Inspect parses an export document and reports what it contains. Used by
// the snapshot CLI command to check a file offline.
func Inspect(data []byte) (DocumentInfo, error) {
	var doc document
	if err := json.Unmarshal(data, &doc); err != nil {
		return DocumentInfo{}, &ParseError{Err: err}
	}
	info := DocumentInfo{HasContent: doc.HomeContent != nil}
	if doc.Products != nil {
		info.Products = len(*doc.Products)
	}
	if doc.Orders != nil {
		info.Orders = len(*doc.Orders)
	}
	return info, nil
}
