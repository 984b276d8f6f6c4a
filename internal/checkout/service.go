package checkout

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/etorres-dev/modernstore-backend/internal/cart"
	"github.com/etorres-dev/modernstore-backend/pkg/config"
	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
)

type cartStore interface {
	Get(sessionID string) cart.State
	Dispatch(sessionID string, op cart.Op) cart.State
}

// Quote previews the order totals for the current cart.
type Quote struct {
	Items  []cart.Item `json:"items"`
	Totals Totals      `json:"totals"`
}

// Confirmation is returned once a simulated order has been placed.
type Confirmation struct {
	OrderNumber   string `json:"order_number"`
	PaymentMethod string `json:"payment_method"`
	ItemCount     int    `json:"item_count"`
	Totals        Totals `json:"totals"`
}

// Service drives the checkout flow: quoting totals and placing the
// simulated order.
type Service interface {
	Quote(sessionID string) (*Quote, error)
	Submit(ctx context.Context, sessionID string, form Form) (*Confirmation, error)
}

type service struct {
	carts cartStore
	cfg   config.CheckoutConfig
	logg  *logger.Logger

	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// NewService builds the checkout service on top of the session cart
// store.
func NewService(carts cartStore, cfg config.CheckoutConfig, logg *logger.Logger) (Service, error) {
	if carts == nil {
		return nil, fmt.Errorf("cart store required")
	}
	return &service{
		carts: carts,
		cfg:   cfg,
		logg:  logg,
		now:   time.Now,
		sleep: sleepCtx,
	}, nil
}

// Quote returns the cart lines and derived totals for the summary
// panel. An empty cart cannot be quoted.
func (s *service) Quote(sessionID string) (*Quote, error) {
	state := s.carts.Get(sessionID)
	if len(state.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}
	return &Quote{
		Items:  state.Items,
		Totals: ComputeTotals(state.TotalCents(), s.cfg),
	}, nil
}

// Submit validates the form, simulates order processing, clears the
// cart and returns the confirmation. The simulated processing is the
// only suspension point in the flow; it cannot be aborted by the
// shopper, only by the request context going away.
func (s *service) Submit(ctx context.Context, sessionID string, form Form) (*Confirmation, error) {
	state := s.carts.Get(sessionID)
	if len(state.Items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "cart is empty")
	}

	if violations := ValidateForm(form); len(violations) > 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "checkout form invalid").WithDetails(violations)
	}

	totals := ComputeTotals(state.TotalCents(), s.cfg)

	if err := s.sleep(ctx, s.cfg.ProcessingDelay); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "order processing interrupted")
	}

	orderNumber := formatOrderNumber(s.now())

	method := form.PaymentMethod
	if method == "" {
		method = PaymentMethodCard
	}

	confirmation := &Confirmation{
		OrderNumber:   orderNumber,
		PaymentMethod: method,
		ItemCount:     state.ItemCount(),
		Totals:        totals,
	}

	// Cleared exactly once, after the simulated placement succeeds.
	s.carts.Dispatch(sessionID, cart.Clear{})

	if s.logg != nil {
		logCtx := s.logg.WithFields(ctx, map[string]any{
			"order_number": orderNumber,
			"total_cents":  totals.TotalCents,
			"item_count":   confirmation.ItemCount,
		})
		s.logg.Info(logCtx, "checkout.order_placed")
	}

	return confirmation, nil
}

func formatOrderNumber(at time.Time) string {
	millis := strconv.FormatInt(at.UnixMilli(), 10)
	if len(millis) > 6 {
		millis = millis[len(millis)-6:]
	}
	return "ORD-" + millis
}

func sleepCtx(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
