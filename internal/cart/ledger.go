// Package cart implements the client cart ledger: the persisted record of
// what a storefront visitor intends to order. Stock is only consulted
// against the remote store at add time; quantity adjustments stay local
// and checkout does the final reconciliation.
package cart

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/techhardware/storefront/internal/catalog"
	"github.com/techhardware/storefront/internal/models"
	"github.com/techhardware/storefront/internal/storage"
)

// StockReader reads the authoritative stock level for a product. Callers
// must treat every read as uncached remote truth.
type StockReader interface {
	Stock(ctx context.Context, productID int) (int, error)
}

// Line is one cart entry. Product fields are a snapshot taken at add
// time; Stock is the remote stock observed when the line last grew.
// The JSON field names are the persisted ledger format.
type Line struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Discount  float64 `json:"discountPercent"`
	Stock     int     `json:"stock"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is the line's effective price times quantity.
func (l Line) Subtotal() float64 {
	return catalog.EffectivePrice(l.UnitPrice, l.Discount) * float64(l.Quantity)
}

// Ledger holds the cart lines for one client, keyed by an opaque cart
// token. It is the sole owner of its storage key: every mutation persists
// the full serialized ledger before returning.
type Ledger struct {
	key   string
	kv    storage.KV
	stock StockReader
	lines []Line
}

// Load rehydrates the ledger stored under key. A missing key yields an
// empty ledger; an unparseable payload is logged and also yields an empty
// ledger rather than an error, so a corrupt cart never locks a client out.
func Load(ctx context.Context, kv storage.KV, stock StockReader, key string) (*Ledger, error) {
	l := &Ledger{key: key, kv: kv, stock: stock}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading cart %q: %w", key, err)
	}
	if !ok || raw == "" {
		return l, nil
	}
	if err := json.Unmarshal([]byte(raw), &l.lines); err != nil {
		log.Printf("cart %q: corrupt stored ledger, resetting: %v", key, err)
		l.lines = nil
	}
	return l, nil
}

// AddItem puts one unit of product in the cart after synchronously
// re-checking remote stock. A product with no stock fails with
// ErrOutOfStock; growing an existing line past the observed stock fails
// with StockExceededError. The ledger is unchanged on failure.
func (l *Ledger) AddItem(ctx context.Context, product models.Product) error {
	available, err := l.stock.Stock(ctx, product.ID)
	if err != nil {
		return fmt.Errorf("checking stock for product %d: %w", product.ID, err)
	}
	if available <= 0 {
		return ErrOutOfStock
	}

	for i := range l.lines {
		if l.lines[i].ProductID != product.ID {
			continue
		}
		if l.lines[i].Quantity >= available {
			return &StockExceededError{Name: product.Name, Available: available}
		}
		l.lines[i].Quantity++
		l.lines[i].Stock = available
		return l.persist(ctx)
	}

	l.lines = append(l.lines, Line{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Discount:  product.Discount,
		Stock:     available,
		Quantity:  1,
	})
	return l.persist(ctx)
}

// RemoveItem deletes the line for productID. Removing an absent product
// is not an error.
func (l *Ledger) RemoveItem(ctx context.Context, productID int) error {
	for i, line := range l.lines {
		if line.ProductID == productID {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
			return l.persist(ctx)
		}
	}
	return nil
}

// ChangeQuantity adds delta to an existing line. A resulting quantity of
// zero or less removes the line; an absent product is a no-op. The remote
// store is deliberately not consulted here: checkout re-validates every
// line before anything irreversible happens.
func (l *Ledger) ChangeQuantity(ctx context.Context, productID, delta int) error {
	for i, line := range l.lines {
		if line.ProductID != productID {
			continue
		}
		if line.Quantity+delta <= 0 {
			l.lines = append(l.lines[:i], l.lines[i+1:]...)
		} else {
			l.lines[i].Quantity += delta
		}
		return l.persist(ctx)
	}
	return nil
}

// Clear empties the ledger.
func (l *Ledger) Clear(ctx context.Context) error {
	l.lines = nil
	return l.persist(ctx)
}

// Total is the sum of line subtotals at effective price.
func (l *Ledger) Total() float64 {
	var sum float64
	for _, line := range l.lines {
		sum += catalog.EffectivePrice(line.UnitPrice, line.Discount) * float64(line.Quantity)
	}
	return sum
}

// ItemCount is the sum of line quantities.
func (l *Ledger) ItemCount() int {
	var n int
	for _, line := range l.lines {
		n += line.Quantity
	}
	return n
}

// Lines returns a copy of the cart lines in insertion order.
func (l *Ledger) Lines() []Line {
	out := make([]Line, len(l.lines))
	copy(out, l.lines)
	return out
}

// Key returns the storage key this ledger owns.
func (l *Ledger) Key() string { return l.key }

func (l *Ledger) persist(ctx context.Context) error {
	lines := l.lines
	if lines == nil {
		lines = []Line{}
	}
	data, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("serializing cart %q: %w", l.key, err)
	}
	if err := l.kv.Set(ctx, l.key, string(data)); err != nil {
		return fmt.Errorf("persisting cart %q: %w", l.key, err)
	}
	return nil
}
