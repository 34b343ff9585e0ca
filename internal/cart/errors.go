package cart

import (
	"errors"
	"fmt"
)

// ErrOutOfStock is returned when an add is attempted on a product whose
// remote stock is zero.
var ErrOutOfStock = errors.New("product out of stock")

// StockExceededError is returned when growing a cart line would exceed
// the remote stock observed at add time. Available is the maximum the
// client can order.
type StockExceededError struct {
	Name      string
	Available int
}

func (e *StockExceededError) Error() string {
	return fmt.Sprintf("only %d units of %s available", e.Available, e.Name)
}
