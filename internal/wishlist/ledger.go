// Package wishlist implements the persisted set of products a storefront
// visitor has favorited. Unlike the cart it carries no quantities and
// never consults remote stock.
package wishlist

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/techhardware/storefront/internal/models"
	"github.com/techhardware/storefront/internal/storage"
)

// Entry is a product snapshot taken when the product was favorited.
// The JSON field names are the persisted ledger format.
type Entry struct {
	ProductID int     `json:"id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unitPrice"`
	Discount  float64 `json:"discountPercent"`
	Image     string  `json:"image"`
	Category  string  `json:"category"`
	Stock     int     `json:"stock"`
}

// Ledger holds the wishlist entries for one client, unique by product ID,
// in insertion order. Every mutation persists the full serialized set.
type Ledger struct {
	key     string
	kv      storage.KV
	entries []Entry
}

// Load rehydrates the wishlist stored under key. Missing or corrupt
// payloads yield an empty set; corruption is logged, never fatal.
func Load(ctx context.Context, kv storage.KV, key string) (*Ledger, error) {
	l := &Ledger{key: key, kv: kv}

	raw, ok, err := kv.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("loading wishlist %q: %w", key, err)
	}
	if !ok || raw == "" {
		return l, nil
	}
	if err := json.Unmarshal([]byte(raw), &l.entries); err != nil {
		log.Printf("wishlist %q: corrupt stored ledger, resetting: %v", key, err)
		l.entries = nil
	}
	return l, nil
}

// Toggle inserts the product if absent, removes it if present. It reports
// whether the product is in the wishlist after the call.
func (l *Ledger) Toggle(ctx context.Context, product models.Product) (bool, error) {
	for i, e := range l.entries {
		if e.ProductID == product.ID {
			l.entries = append(l.entries[:i], l.entries[i+1:]...)
			return false, l.persist(ctx)
		}
	}
	l.entries = append(l.entries, Entry{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Discount:  product.Discount,
		Image:     product.Image,
		Category:  product.Category,
		Stock:     product.Stock,
	})
	return true, l.persist(ctx)
}

// Contains reports membership by product ID.
func (l *Ledger) Contains(productID int) bool {
	for _, e := range l.entries {
		if e.ProductID == productID {
			return true
		}
	}
	return false
}

// Entries returns a copy of the wishlist in insertion order.
func (l *Ledger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Count returns the number of favorited products.
func (l *Ledger) Count() int { return len(l.entries) }

func (l *Ledger) persist(ctx context.Context) error {
	entries := l.entries
	if entries == nil {
		entries = []Entry{}
	}
	data, err := json.Marshal(entries)
	if err != nil {
		return fmt.Errorf("serializing wishlist %q: %w", l.key, err)
	}
	if err := l.kv.Set(ctx, l.key, string(data)); err != nil {
		return fmt.Errorf("persisting wishlist %q: %w", l.key, err)
	}
	return nil
}
