package checkout

import (
	"context"
	"testing"
	"time"

	"github.com/etorres-dev/modernstore-backend/internal/cart"
	"github.com/etorres-dev/modernstore-backend/pkg/config"
	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
)

func testCheckoutConfig() config.CheckoutConfig {
	return config.CheckoutConfig{
		FreeShippingThresholdCents: 5000,
		ShippingFeeCents:           999,
		TaxRate:                    0.08,
		ProcessingDelay:            2 * time.Second,
	}
}

func validForm() Form {
	return Form{
		FullName:      "John Doe",
		Email:         "john@example.com",
		Phone:         "+1 (555) 123-4567",
		Address:       "123 Main Street, Apt 4B",
		City:          "New York",
		State:         "NY",
		ZipCode:       "10001",
		PaymentMethod: PaymentMethodCard,
	}
}

func newTestService(t *testing.T, store cartStore) *service {
	t.Helper()
	svc, err := NewService(store, testCheckoutConfig(), nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	typed := svc.(*service)
	typed.now = func() time.Time { return time.UnixMilli(1756400123456) }
	typed.sleep = func(ctx context.Context, d time.Duration) error { return nil }
	return typed
}

func seededStore(t *testing.T, sessionID string, lines ...cart.Op) *cart.Store {
	t.Helper()
	store := cart.NewStore(time.Hour, nil)
	for _, op := range lines {
		store.Dispatch(sessionID, op)
	}
	return store
}

func TestComputeTotalsShippingThreshold(t *testing.T) {
	t.Parallel()
	cfg := testCheckoutConfig()

	below := ComputeTotals(4000, cfg)
	if below.ShippingCents != 999 {
		t.Fatalf("subtotal 4000 should pay shipping 999, got %d", below.ShippingCents)
	}
	if below.TaxCents != 320 {
		t.Fatalf("expected tax 320, got %d", below.TaxCents)
	}
	if below.TotalCents != 4000+999+320 {
		t.Fatalf("unexpected total %d", below.TotalCents)
	}

	above := ComputeTotals(6000, cfg)
	if above.ShippingCents != 0 {
		t.Fatalf("subtotal 6000 should ship free, got %d", above.ShippingCents)
	}
	if above.TaxCents != 480 {
		t.Fatalf("expected tax 480, got %d", above.TaxCents)
	}

	atThreshold := ComputeTotals(5000, cfg)
	if atThreshold.ShippingCents != 0 {
		t.Fatalf("threshold is inclusive, got shipping %d", atThreshold.ShippingCents)
	}
}

func TestComputeTotalsRoundsTaxToCent(t *testing.T) {
	t.Parallel()

	// 1249 * 0.08 = 99.92 cents, rounds to 100.
	got := ComputeTotals(1249, testCheckoutConfig())
	if got.TaxCents != 100 {
		t.Fatalf("expected tax 100, got %d", got.TaxCents)
	}
}

func TestValidateFormReportsAllViolationsAtOnce(t *testing.T) {
	t.Parallel()

	violations := ValidateForm(Form{})
	want := []string{"full_name", "email", "phone", "address", "city", "state", "zip_code"}
	if len(violations) != len(want) {
		t.Fatalf("expected %d violations, got %d: %v", len(want), len(violations), violations)
	}
	for _, field := range want {
		if violations[field] == "" {
			t.Fatalf("missing violation for %s", field)
		}
	}
}

func TestValidateFormEmailPattern(t *testing.T) {
	t.Parallel()

	form := validForm()
	form.Email = "not-an-email"
	violations := ValidateForm(form)
	if len(violations) != 1 {
		t.Fatalf("expected exactly one violation, got %v", violations)
	}
	if violations["email"] != "Email is invalid" {
		t.Fatalf("unexpected email message %q", violations["email"])
	}

	form.Email = "john@example.com"
	if violations := ValidateForm(form); len(violations) != 0 {
		t.Fatalf("valid form rejected: %v", violations)
	}
}

func TestQuoteReturnsItemsAndTotals(t *testing.T) {
	t.Parallel()

	store := seededStore(t, "sess", cart.AddItem{
		Product:  cart.ProductRef{ProductID: 6, Name: "Cotton T-Shirt", PriceCents: 2999, MaxStock: 40},
		Quantity: 2,
	})
	svc := newTestService(t, store)

	quote, err := svc.Quote("sess")
	if err != nil {
		t.Fatalf("Quote: %v", err)
	}
	if quote.Totals.SubtotalCents != 5998 {
		t.Fatalf("unexpected subtotal %d", quote.Totals.SubtotalCents)
	}
	if quote.Totals.ShippingCents != 0 {
		t.Fatalf("expected free shipping, got %d", quote.Totals.ShippingCents)
	}
	if len(quote.Items) != 1 {
		t.Fatalf("expected 1 line, got %d", len(quote.Items))
	}
}

func TestQuoteEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, cart.NewStore(time.Hour, nil))
	if _, err := svc.Quote("sess"); err == nil {
		t.Fatal("expected error for empty cart")
	} else if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubmitPlacesOrderAndClearsCart(t *testing.T) {
	t.Parallel()

	store := seededStore(t, "sess", cart.AddItem{
		Product:  cart.ProductRef{ProductID: 1, Name: "Wireless Headphones Pro", PriceCents: 12999, MaxStock: 15},
		Quantity: 2,
	})
	svc := newTestService(t, store)

	confirmation, err := svc.Submit(context.Background(), "sess", validForm())
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if confirmation.OrderNumber != "ORD-123456" {
		t.Fatalf("unexpected order number %q", confirmation.OrderNumber)
	}
	if confirmation.ItemCount != 2 {
		t.Fatalf("unexpected item count %d", confirmation.ItemCount)
	}
	if confirmation.Totals.SubtotalCents != 25998 {
		t.Fatalf("unexpected subtotal %d", confirmation.Totals.SubtotalCents)
	}
	if confirmation.PaymentMethod != PaymentMethodCard {
		t.Fatalf("unexpected payment method %q", confirmation.PaymentMethod)
	}

	if remaining := store.Get("sess"); len(remaining.Items) != 0 {
		t.Fatalf("cart must be cleared after submit, got %+v", remaining.Items)
	}
}

func TestSubmitBlocksInvalidForm(t *testing.T) {
	t.Parallel()

	store := seededStore(t, "sess", cart.AddItem{
		Product: cart.ProductRef{ProductID: 1, Name: "Wireless Headphones Pro", PriceCents: 12999, MaxStock: 15},
	})
	svc := newTestService(t, store)

	form := validForm()
	form.Email = "not-an-email"

	_, err := svc.Submit(context.Background(), "sess", form)
	if err == nil {
		t.Fatal("expected validation error")
	}
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	details, ok := typed.Details().(map[string]string)
	if !ok || len(details) != 1 || details["email"] == "" {
		t.Fatalf("expected exactly the email violation, got %v", typed.Details())
	}

	// Submission was blocked, so the cart is untouched.
	if store.Get("sess").ItemCount() != 1 {
		t.Fatal("cart must survive a blocked submission")
	}
}

func TestSubmitEmptyCart(t *testing.T) {
	t.Parallel()

	svc := newTestService(t, cart.NewStore(time.Hour, nil))
	if _, err := svc.Submit(context.Background(), "sess", validForm()); err == nil {
		t.Fatal("expected error for empty cart")
	}
}

func TestSubmitHonorsContextDuringProcessing(t *testing.T) {
	t.Parallel()

	store := seededStore(t, "sess", cart.AddItem{
		Product: cart.ProductRef{ProductID: 1, Name: "Wireless Headphones Pro", PriceCents: 12999, MaxStock: 15},
	})
	svc := newTestService(t, store)
	svc.sleep = sleepCtx
	svc.cfg.ProcessingDelay = time.Minute

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := svc.Submit(ctx, "sess", validForm()); err == nil {
		t.Fatal("expected cancellation to surface")
	}

	// The order never completed, so the cart keeps its items.
	if store.Get("sess").ItemCount() != 1 {
		t.Fatal("cart must survive an interrupted submission")
	}
}

func TestFormatOrderNumber(t *testing.T) {
	t.Parallel()

	if got := formatOrderNumber(time.UnixMilli(1756400123456)); got != "ORD-123456" {
		t.Fatalf("unexpected order number %q", got)
	}
	if got := formatOrderNumber(time.UnixMilli(42)); got != "ORD-42" {
		t.Fatalf("short timestamps keep their digits, got %q", got)
	}
}
