// Package checkout reconciles the local cart ledger against authoritative
// remote stock immediately before an order is dispatched. It is the only
// place where the soft stock ceilings the cart tracks are enforced hard.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/techhardware/storefront/internal/cart"
	"github.com/techhardware/storefront/internal/catalog"
)

// ErrEmptyCart is returned when checkout is attempted with no lines.
var ErrEmptyCart = errors.New("cart is empty")

// Shortfall names one cart line whose requested quantity exceeds the
// stock fetched at checkout time.
type Shortfall struct {
	ProductID int    `json:"product_id"`
	Name      string `json:"name"`
	Requested int    `json:"requested"`
	Available int    `json:"available"`
}

// InsufficientStockError carries every offending line; the checkout is
// rejected as a whole, never partially.
type InsufficientStockError struct {
	Shortfalls []Shortfall
}

func (e *InsufficientStockError) Error() string {
	names := make([]string, len(e.Shortfalls))
	for i, s := range e.Shortfalls {
		names[i] = s.Name
	}
	return "insufficient stock: " + strings.Join(names, ", ")
}

// OrderLine is one confirmed line of an order summary.
type OrderLine struct {
	ProductID int     `json:"product_id"`
	Name      string  `json:"name"`
	Quantity  int     `json:"quantity"`
	Subtotal  float64 `json:"subtotal"`
}

// Order is the summary handed to the dispatch channel.
type Order struct {
	Number string      `json:"number"`
	Lines  []OrderLine `json:"lines"`
	Total  float64     `json:"total"`
}

// Summary formats the order as the human-readable message sent over the
// dispatch channel.
func (o Order) Summary() string {
	var b strings.Builder
	b.WriteString("Hola TechHardware, me gustaría ordenar:\n\n")
	for _, line := range o.Lines {
		fmt.Fprintf(&b, "- %dx %s - $%.2f\n", line.Quantity, line.Name, line.Subtotal)
	}
	fmt.Fprintf(&b, "\nTOTAL: $%.2f (pedido %s)", o.Total, o.Number)
	return b.String()
}

// Dispatcher hands a confirmed order to the external ordering channel.
// It returns a link the client can follow to complete the conversation,
// and an error when dispatch could not be initiated.
type Dispatcher interface {
	Dispatch(ctx context.Context, order Order) (link string, err error)
}

// Reconciler validates cart intent against remote stock and dispatches
// confirmed orders.
type Reconciler struct {
	stock      cart.StockReader
	dispatcher Dispatcher
}

func NewReconciler(stock cart.StockReader, dispatcher Dispatcher) *Reconciler {
	return &Reconciler{stock: stock, dispatcher: dispatcher}
}

// Checkout re-fetches remote stock for every cart line concurrently and
// waits for all fetches before deciding. Any fetch failure or shortfall
// rejects the whole checkout with the ledger untouched. On successful
// dispatch the ledger is cleared; a dispatch failure preserves it so the
// client can retry.
func (r *Reconciler) Checkout(ctx context.Context, ledger *cart.Ledger) (Order, string, error) {
	lines := ledger.Lines()
	if len(lines) == 0 {
		return Order{}, "", ErrEmptyCart
	}

	available := make([]int, len(lines))
	g, gctx := errgroup.WithContext(ctx)
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			stock, err := r.stock.Stock(gctx, line.ProductID)
			if err != nil {
				return fmt.Errorf("revalidating stock for product %d: %w", line.ProductID, err)
			}
			available[i] = stock
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Order{}, "", err
	}

	var shortfalls []Shortfall
	for i, line := range lines {
		if line.Quantity > available[i] {
			shortfalls = append(shortfalls, Shortfall{
				ProductID: line.ProductID,
				Name:      line.Name,
				Requested: line.Quantity,
				Available: available[i],
			})
		}
	}
	if len(shortfalls) > 0 {
		return Order{}, "", &InsufficientStockError{Shortfalls: shortfalls}
	}

	order := Order{Number: uuid.NewString(), Lines: make([]OrderLine, len(lines))}
	for i, line := range lines {
		subtotal := catalog.EffectivePrice(line.UnitPrice, line.Discount) * float64(line.Quantity)
		order.Lines[i] = OrderLine{
			ProductID: line.ProductID,
			Name:      line.Name,
			Quantity:  line.Quantity,
			Subtotal:  subtotal,
		}
		order.Total += subtotal
	}

	link, err := r.dispatcher.Dispatch(ctx, order)
	if err != nil {
		return Order{}, "", fmt.Errorf("dispatching order %s: %w", order.Number, err)
	}

	if err := ledger.Clear(ctx); err != nil {
		// The order is already on its way; do not fail the checkout over
		// a cart persistence hiccup.
		log.Printf("clearing cart after order %s: %v", order.Number, err)
	}
	return order, link, nil
}
