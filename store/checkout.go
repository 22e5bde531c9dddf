package store

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OrderDateFormat renders order timestamps the way the storefront displays
// them (day.month.year, 24h clock). Informational only.
const OrderDateFormat = "02.01.2006, 15:04:05"

// CheckoutState tracks a checkout attempt through its lifecycle.
type CheckoutState int32

const (
	// CheckoutSubmitted means validation passed and the commit is scheduled.
	CheckoutSubmitted CheckoutState = iota + 1
	// CheckoutProcessing means the commit has started; it cannot be canceled
	// and always succeeds.
	CheckoutProcessing
	// CheckoutCommitted means the order is in the ledger and the cart was
	// cleared.
	CheckoutCommitted
	// CheckoutCanceled means the scheduled commit was stopped before it fired.
	CheckoutCanceled
)

func (s CheckoutState) String() string {
	switch s {
	case CheckoutSubmitted:
		return "submitted"
	case CheckoutProcessing:
		return "processing"
	case CheckoutCommitted:
		return "committed"
	case CheckoutCanceled:
		return "canceled"
	default:
		return "idle"
	}
}

// Checkout coordinates the two-phase commit from cart to ledger. Validation
// happens synchronously in Submit; the commit fires once after the configured
// delay. The cart snapshot and total are captured at submission, so cart
// edits during the delay never leak into the committed order.
type Checkout struct {
	cart   *Cart
	ledger *Ledger
	delay  time.Duration
	now    func() time.Time
}

// NewCheckout wires a checkout over the given cart and ledger. The delay is
// the simulated processing time before an accepted order commits.
func NewCheckout(cart *Cart, ledger *Ledger, delay time.Duration) *Checkout {
	return &Checkout{cart: cart, ledger: ledger, delay: delay, now: time.Now}
}

// PendingOrder is the handle for an in-flight checkout attempt.
type PendingOrder struct {
	// ReceiptID identifies the attempt before the numeric order id exists.
	ReceiptID string

	mu    sync.Mutex
	state CheckoutState
	timer *time.Timer
	done  chan Order
}

// State returns the current lifecycle state.
func (p *PendingOrder) State() CheckoutState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Done delivers the committed order exactly once and is then closed. The
// channel closes without a value when the attempt was canceled.
func (p *PendingOrder) Done() <-chan Order {
	return p.done
}

// Cancel stops the scheduled commit. It reports false once processing has
// begun; after that point there is no rollback path.
func (p *PendingOrder) Cancel() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state != CheckoutSubmitted || !p.timer.Stop() {
		return false
	}
	p.state = CheckoutCanceled
	close(p.done)
	return true
}

// Submit validates the delivery details against the current cart and
// schedules the commit. No state is mutated on validation failure. The
// returned handle resolves once the order is in the ledger and the cart has
// been cleared.
func (c *Checkout) Submit(info CustomerInfo) (*PendingOrder, error) {
	info.Name = strings.TrimSpace(info.Name)
	info.Phone = strings.TrimSpace(info.Phone)
	info.Address = strings.TrimSpace(info.Address)
	if info.Name == "" {
		return nil, &ValidationError{Field: "name", Reason: "required"}
	}
	if info.Phone == "" {
		return nil, &ValidationError{Field: "phone", Reason: "required"}
	}
	if info.Address == "" {
		return nil, &ValidationError{Field: "address", Reason: "required"}
	}

	// Snapshot at submission time. Items() already copies, so concurrent
	// cart mutations cannot reach the committed order.
	items := c.cart.Items()
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}
	var total float64
	for _, it := range items {
		total += it.Subtotal()
	}

	p := &PendingOrder{
		ReceiptID: uuid.New().String(),
		state:     CheckoutSubmitted,
		done:      make(chan Order, 1),
	}
	order := Order{
		ReceiptID:    p.ReceiptID,
		Items:        items,
		CustomerName: info.Name,
		Phone:        info.Phone,
		Address:      info.Address,
		Total:        total,
	}
	p.timer = time.AfterFunc(c.delay, func() {
		p.mu.Lock()
		if p.state != CheckoutSubmitted {
			p.mu.Unlock()
			return
		}
		p.state = CheckoutProcessing
		p.mu.Unlock()

		order.Date = c.now().Format(OrderDateFormat)
		committed := c.ledger.Append(order)
		c.cart.Clear()

		p.mu.Lock()
		p.state = CheckoutCommitted
		p.mu.Unlock()
		p.done <- committed
		close(p.done)
	})
	return p, nil
}
