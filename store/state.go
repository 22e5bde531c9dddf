package store

import "time"

// State bundles the stores behind the storefront: one catalog, one cart, one
// order ledger and the homepage content, plus the checkout coordinator and
// the snapshot serializer over them. It is the unit handed to the web layer.
type State struct {
	Catalog  *Catalog
	Cart     *Cart
	Ledger   *Ledger
	Content  *Content
	Checkout *Checkout
	Snapshot *Snapshot
}

// NewState wires an empty state with the given checkout processing delay.
func NewState(checkoutDelay time.Duration) *State {
	catalog := NewCatalog()
	cart := NewCart()
	ledger := NewLedger()
	content := NewContent(DefaultHomeContent())
	return &State{
		Catalog:  catalog,
		Cart:     cart,
		Ledger:   ledger,
		Content:  content,
		Checkout: NewCheckout(cart, ledger, checkoutDelay),
		Snapshot: NewSnapshot(catalog, ledger, content),
	}
}

// NewSeededState returns a state preloaded with the starter catalog.
func NewSeededState(checkoutDelay time.Duration) *State {
	s := NewState(checkoutDelay)
	SeedCatalog(s.Catalog)
	return s
}
