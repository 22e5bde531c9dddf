package store

import "sync"

// Ledger is the append-only log of committed orders. Orders receive a
// monotonic id on append and are never edited or removed afterwards.
type Ledger struct {
	mu     sync.Mutex
	orders []Order
	nextID int64
}

// NewLedger returns an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{nextID: 1}
}

// Append assigns the next order id and appends the order. The filled-in
// order is returned.
func (l *Ledger) Append(o Order) Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	o.ID = l.nextID
	l.nextID++
	l.orders = append(l.orders, o)
	return o
}

// Orders returns a copy of the ledger in commit order.
func (l *Ledger) Orders() []Order {
	l.mu.Lock()
	defer l.mu.Unlock()
	cp := make([]Order, len(l.orders))
	copy(cp, l.orders)
	return cp
}

// Len returns the number of committed orders.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.orders)
}

// Replace swaps the whole ledger, used by snapshot import. The id counter
// advances past the highest imported id.
func (l *Ledger) Replace(orders []Order) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.orders = make([]Order, len(orders))
	copy(l.orders, orders)
	for _, o := range orders {
		if o.ID >= l.nextID {
			l.nextID = o.ID + 1
		}
	}
}
