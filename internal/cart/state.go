package cart

import "github.com/shopspring/decimal"

// ProductRef carries the product fields needed to open a cart line.
type ProductRef struct {
	ProductID  int
	Name       string
	Image      string
	PriceCents int
	MaxStock   int
}

// Item is one product line in a shopper's cart. Quantity always sits in
// [1, MaxStock].
type Item struct {
	ProductID  int    `json:"product_id"`
	Name       string `json:"name"`
	Image      string `json:"image"`
	PriceCents int    `json:"price_cents"`
	Quantity   int    `json:"quantity"`
	MaxStock   int    `json:"max_stock"`
}

// State is the full cart contents for one session. Items keep insertion
// order and hold at most one line per product id. Aggregates are derived
// from Items on demand, never stored.
type State struct {
	Items []Item
}

// ItemCount returns the sum of quantities across all lines.
func (s State) ItemCount() int {
	count := 0
	for _, item := range s.Items {
		count += item.Quantity
	}
	return count
}

// TotalCents returns the sum of price times quantity across all lines.
func (s State) TotalCents() int {
	total := 0
	for _, item := range s.Items {
		total += item.PriceCents * item.Quantity
	}
	return total
}

// Total returns the cart total in dollars.
func (s State) Total() decimal.Decimal {
	return decimal.NewFromInt(int64(s.TotalCents())).Shift(-2)
}

func (s State) clone() State {
	if len(s.Items) == 0 {
		return State{}
	}
	items := make([]Item, len(s.Items))
	copy(items, s.Items)
	return State{Items: items}
}

// Op is the closed set of cart transitions. Every variant is total over
// its input domain: out-of-range quantities are clamped, unknown product
// ids are no-ops.
type Op interface {
	// Kind names the operation for logs and metrics.
	Kind() string
	isOp()
}

// AddItem inserts a new line or raises the quantity of an existing one,
// clamped to the product's stock cap.
type AddItem struct {
	Product  ProductRef
	Quantity int
}

// RemoveItem deletes the line with the given product id if present.
type RemoveItem struct {
	ProductID int
}

// SetQuantity replaces a line's quantity. Values below 1 behave as
// RemoveItem; values above the stock cap are clamped.
type SetQuantity struct {
	ProductID int
	Quantity  int
}

// Clear empties the cart.
type Clear struct{}

func (AddItem) Kind() string     { return "add_item" }
func (RemoveItem) Kind() string  { return "remove_item" }
func (SetQuantity) Kind() string { return "set_quantity" }
func (Clear) Kind() string       { return "clear" }

func (AddItem) isOp()     {}
func (RemoveItem) isOp()  {}
func (SetQuantity) isOp() {}
func (Clear) isOp()       {}

// Apply is the pure transition function over cart state. It never
// mutates its input and never fails; callers always get back a state
// that satisfies the cart invariants.
func Apply(s State, op Op) State {
	switch op := op.(type) {
	case AddItem:
		return applyAdd(s, op)
	case RemoveItem:
		return applyRemove(s, op.ProductID)
	case SetQuantity:
		if op.Quantity < 1 {
			return applyRemove(s, op.ProductID)
		}
		return applySet(s, op)
	case Clear:
		return State{}
	default:
		return s.clone()
	}
}

func applyAdd(s State, op AddItem) State {
	requested := op.Quantity
	if requested < 1 {
		requested = 1
	}

	maxStock := op.Product.MaxStock
	if maxStock < 1 {
		maxStock = 1
	}

	next := s.clone()
	for i, item := range next.Items {
		if item.ProductID == op.Product.ProductID {
			next.Items[i].Quantity = clamp(item.Quantity+requested, item.MaxStock)
			return next
		}
	}

	next.Items = append(next.Items, Item{
		ProductID:  op.Product.ProductID,
		Name:       op.Product.Name,
		Image:      op.Product.Image,
		PriceCents: op.Product.PriceCents,
		Quantity:   clamp(requested, maxStock),
		MaxStock:   maxStock,
	})
	return next
}

func applyRemove(s State, productID int) State {
	next := State{}
	for _, item := range s.Items {
		if item.ProductID == productID {
			continue
		}
		next.Items = append(next.Items, item)
	}
	return next
}

func applySet(s State, op SetQuantity) State {
	next := s.clone()
	for i, item := range next.Items {
		if item.ProductID == op.ProductID {
			next.Items[i].Quantity = clamp(op.Quantity, item.MaxStock)
			break
		}
	}
	return next
}

func clamp(quantity, maxStock int) int {
	if quantity > maxStock {
		return maxStock
	}
	if quantity < 1 {
		return 1
	}
	return quantity
}
