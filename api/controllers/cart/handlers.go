package cart

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/etorres-dev/modernstore-backend/api/middleware"
	"github.com/etorres-dev/modernstore-backend/api/responses"
	"github.com/etorres-dev/modernstore-backend/api/validators"
	cartsvc "github.com/etorres-dev/modernstore-backend/internal/cart"
	catalogsvc "github.com/etorres-dev/modernstore-backend/internal/catalog"
	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
)

// Fetch returns the session's current cart.
func Fetch(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		responses.WriteSuccess(w, newCartView(store.Get(sessionID)))
	}
}

// AddItem adds a catalog product to the cart. The product snapshot is
// resolved server-side so clients cannot invent prices or stock caps.
func AddItem(store *cartsvc.Store, catalog catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil || catalog == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		var payload addItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		details, err := catalog.Get(payload.ProductID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		if !details.InStock {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeConflict, "product out of stock"))
			return
		}

		quantity := payload.Quantity
		if quantity < 1 {
			quantity = 1
		}

		state := store.Dispatch(sessionID, cartsvc.AddItem{
			Product: cartsvc.ProductRef{
				ProductID:  details.ID,
				Name:       details.Name,
				Image:      details.Image,
				PriceCents: details.PriceCents,
				MaxStock:   details.StockCount,
			},
			Quantity: quantity,
		})

		responses.WriteSuccess(w, newCartView(state))
	}
}

// UpdateItem sets a line's quantity. Zero removes the line.
func UpdateItem(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		var payload updateItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		state := store.Dispatch(sessionID, cartsvc.SetQuantity{
			ProductID: productID,
			Quantity:  *payload.Quantity,
		})

		responses.WriteSuccess(w, newCartView(state))
	}
}

// RemoveItem drops a line from the cart. Removing an absent line is a
// no-op rather than an error.
func RemoveItem(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		productID, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		state := store.Dispatch(sessionID, cartsvc.RemoveItem{ProductID: productID})

		responses.WriteSuccess(w, newCartView(state))
	}
}

// Clear empties the cart.
func Clear(store *cartsvc.Store, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if store == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "cart store unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		state := store.Dispatch(sessionID, cartsvc.Clear{})

		responses.WriteSuccess(w, newCartView(state))
	}
}
