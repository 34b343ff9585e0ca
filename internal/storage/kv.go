// Package storage is the durable key-value substrate the cart and
// wishlist ledgers persist themselves to. Each ledger owns exactly one
// key and is the only writer of that key; last writer wins on the full
// serialized value.
package storage

import "context"

type KV interface {
	// Get returns the stored value and whether the key existed.
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
}
