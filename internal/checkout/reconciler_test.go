package checkout

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/techhardware/storefront/internal/cart"
	"github.com/techhardware/storefront/internal/models"
	"github.com/techhardware/storefront/internal/storage"
)

var ctx = context.Background()

type stubStock struct {
	mu     sync.Mutex
	levels map[int]int
	err    error
	calls  int
}

func (s *stubStock) Stock(_ context.Context, productID int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls++
	if s.err != nil {
		return 0, s.err
	}
	return s.levels[productID], nil
}

type stubDispatcher struct {
	err    error
	orders []Order
}

func (d *stubDispatcher) Dispatch(_ context.Context, order Order) (string, error) {
	if d.err != nil {
		return "", d.err
	}
	d.orders = append(d.orders, order)
	return "https://wa.me/123?text=order", nil
}

func seededCart(t *testing.T, stock *stubStock, quantities map[int]int) *cart.Ledger {
	t.Helper()
	l, err := cart.Load(ctx, storage.NewMemoryKV(), stock, "checkout-test")
	if err != nil {
		t.Fatalf("loading cart: %v", err)
	}
	for id, qty := range quantities {
		p := models.Product{ID: id, Name: "Producto " + string(rune('A'+id)), Price: 100, Discount: 20}
		for i := 0; i < qty; i++ {
			if err := l.AddItem(ctx, p); err != nil {
				t.Fatalf("seeding cart with product %d: %v", id, err)
			}
		}
	}
	return l
}

func TestCheckout_EmptyCart(t *testing.T) {
	stock := &stubStock{levels: map[int]int{}}
	ledger := seededCart(t, stock, nil)

	r := NewReconciler(stock, &stubDispatcher{})
	_, _, err := r.Checkout(ctx, ledger)
	if !errors.Is(err, ErrEmptyCart) {
		t.Fatalf("expected ErrEmptyCart, got %v", err)
	}
}

func TestCheckout_InsufficientStockNamesProducts(t *testing.T) {
	stock := &stubStock{levels: map[int]int{1: 5}}
	ledger := seededCart(t, stock, map[int]int{1: 2})

	// Stock dropped between add and checkout.
	stock.mu.Lock()
	stock.levels[1] = 1
	stock.mu.Unlock()

	r := NewReconciler(stock, &stubDispatcher{})
	_, _, err := r.Checkout(ctx, ledger)

	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if len(insufficient.Shortfalls) != 1 || insufficient.Shortfalls[0].ProductID != 1 {
		t.Errorf("expected shortfall naming product 1, got %+v", insufficient.Shortfalls)
	}
	if insufficient.Shortfalls[0].Available != 1 || insufficient.Shortfalls[0].Requested != 2 {
		t.Errorf("shortfall detail wrong: %+v", insufficient.Shortfalls[0])
	}
	if !strings.Contains(insufficient.Error(), "Producto") {
		t.Errorf("error should name the product: %q", insufficient.Error())
	}
	if ledger.ItemCount() != 2 {
		t.Errorf("cart must be preserved on rejection, got %d items", ledger.ItemCount())
	}
}

func TestCheckout_AllShortfallsReported(t *testing.T) {
	stock := &stubStock{levels: map[int]int{1: 3, 2: 3, 3: 3}}
	ledger := seededCart(t, stock, map[int]int{1: 2, 2: 3, 3: 1})

	stock.mu.Lock()
	stock.levels[1] = 0
	stock.levels[2] = 1
	stock.mu.Unlock()

	r := NewReconciler(stock, &stubDispatcher{})
	_, _, err := r.Checkout(ctx, ledger)

	var insufficient *InsufficientStockError
	if !errors.As(err, &insufficient) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if len(insufficient.Shortfalls) != 2 {
		t.Errorf("expected both offending lines reported, got %+v", insufficient.Shortfalls)
	}
}

func TestCheckout_FetchFailureRejectsWholeCheckout(t *testing.T) {
	stock := &stubStock{levels: map[int]int{1: 5, 2: 5}}
	ledger := seededCart(t, stock, map[int]int{1: 1, 2: 1})

	stock.mu.Lock()
	stock.err = errors.New("timeout")
	stock.mu.Unlock()

	dispatcher := &stubDispatcher{}
	r := NewReconciler(stock, dispatcher)
	_, _, err := r.Checkout(ctx, ledger)
	if err == nil {
		t.Fatal("expected checkout to fail when a stock fetch fails")
	}
	if len(dispatcher.orders) != 0 {
		t.Error("nothing may be dispatched on a failed revalidation")
	}
	if ledger.ItemCount() != 2 {
		t.Errorf("cart must be preserved, got %d items", ledger.ItemCount())
	}
}

func TestCheckout_SuccessClearsCartAndTotals(t *testing.T) {
	stock := &stubStock{levels: map[int]int{1: 5}}
	ledger := seededCart(t, stock, map[int]int{1: 3})

	dispatcher := &stubDispatcher{}
	r := NewReconciler(stock, dispatcher)
	order, link, err := r.Checkout(ctx, ledger)
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}

	if order.Number == "" {
		t.Error("expected an order number")
	}
	if link == "" {
		t.Error("expected a dispatch link")
	}
	// 3 x 100 at 20% off.
	if order.Total != 240 {
		t.Errorf("expected total 240, got %v", order.Total)
	}
	if len(order.Lines) != 1 || order.Lines[0].Subtotal != 240 {
		t.Errorf("unexpected order lines: %+v", order.Lines)
	}
	if len(dispatcher.orders) != 1 {
		t.Fatalf("expected 1 dispatched order, got %d", len(dispatcher.orders))
	}
	if ledger.ItemCount() != 0 {
		t.Errorf("cart must be cleared after dispatch, got %d items", ledger.ItemCount())
	}
}

func TestCheckout_DispatchFailurePreservesCart(t *testing.T) {
	stock := &stubStock{levels: map[int]int{1: 5}}
	ledger := seededCart(t, stock, map[int]int{1: 2})

	r := NewReconciler(stock, &stubDispatcher{err: errors.New("webhook 500")})
	_, _, err := r.Checkout(ctx, ledger)
	if err == nil {
		t.Fatal("expected dispatch failure to surface")
	}
	if ledger.ItemCount() != 2 {
		t.Errorf("cart must be preserved for retry, got %d items", ledger.ItemCount())
	}

	// The retry path works once dispatch recovers.
	ok := &stubDispatcher{}
	_, _, err = NewReconciler(stock, ok).Checkout(ctx, ledger)
	if err != nil {
		t.Fatalf("retry after dispatch failure: %v", err)
	}
	if ledger.ItemCount() != 0 {
		t.Errorf("cart should clear on the successful retry, got %d items", ledger.ItemCount())
	}
}

func TestCheckout_RevalidatesEveryLine(t *testing.T) {
	stock := &stubStock{levels: map[int]int{1: 5, 2: 5, 3: 5}}
	ledger := seededCart(t, stock, map[int]int{1: 1, 2: 1, 3: 1})

	stock.mu.Lock()
	stock.calls = 0
	stock.mu.Unlock()

	r := NewReconciler(stock, &stubDispatcher{})
	if _, _, err := r.Checkout(ctx, ledger); err != nil {
		t.Fatalf("checkout: %v", err)
	}

	stock.mu.Lock()
	calls := stock.calls
	stock.mu.Unlock()
	if calls != 3 {
		t.Errorf("expected one stock fetch per line (3), got %d", calls)
	}
}

func TestOrderSummaryFormat(t *testing.T) {
	o := Order{
		Number: "abc",
		Lines: []OrderLine{
			{ProductID: 1, Name: "Router", Quantity: 2, Subtotal: 160},
		},
		Total: 160,
	}

	summary := o.Summary()
	for _, want := range []string{"2x Router", "$160.00", "TOTAL", "abc"} {
		if !strings.Contains(summary, want) {
			t.Errorf("summary missing %q:\n%s", want, summary)
		}
	}
}
