package cart

import (
	"github.com/shopspring/decimal"

	cartsvc "github.com/etorres-dev/modernstore-backend/internal/cart"
)

type cartView struct {
	Items         []cartsvc.Item `json:"items"`
	ItemCount     int            `json:"item_count"`
	SubtotalCents int            `json:"subtotal_cents"`
	Subtotal      string         `json:"subtotal"`
}

func newCartView(state cartsvc.State) cartView {
	items := state.Items
	if items == nil {
		items = []cartsvc.Item{}
	}
	return cartView{
		Items:         items,
		ItemCount:     state.ItemCount(),
		SubtotalCents: state.TotalCents(),
		Subtotal:      decimal.NewFromInt(int64(state.TotalCents())).Shift(-2).StringFixed(2),
	}
}
