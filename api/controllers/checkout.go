package controllers

import (
	"net/http"

	"github.com/etorres-dev/modernstore-backend/api/middleware"
	"github.com/etorres-dev/modernstore-backend/api/responses"
	"github.com/etorres-dev/modernstore-backend/api/validators"
	checkoutsvc "github.com/etorres-dev/modernstore-backend/internal/checkout"
	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
)

// CheckoutQuote previews totals for the order summary panel.
func CheckoutQuote(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		quote, err := svc.Quote(sessionID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, quote)
	}
}

// CheckoutSubmit places the simulated order. Field-level validation
// lives in the checkout service so the handler only decodes the body;
// the service reports every violation at once.
func CheckoutSubmit(svc checkoutsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "checkout service unavailable"))
			return
		}

		sessionID := middleware.SessionIDFromContext(r.Context())
		if sessionID == "" {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "session context missing"))
			return
		}

		var payload submitCheckoutRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		confirmation, err := svc.Submit(r.Context(), sessionID, payload.toForm())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusCreated, confirmation)
	}
}

type submitCheckoutRequest struct {
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	Phone         string `json:"phone"`
	Address       string `json:"address"`
	City          string `json:"city"`
	State         string `json:"state"`
	ZipCode       string `json:"zip_code"`
	PaymentMethod string `json:"payment_method" validate:"omitempty,oneof=card cod"`
}

func (r submitCheckoutRequest) toForm() checkoutsvc.Form {
	return checkoutsvc.Form{
		FullName:      r.FullName,
		Email:         r.Email,
		Phone:         r.Phone,
		Address:       r.Address,
		City:          r.City,
		State:         r.State,
		ZipCode:       r.ZipCode,
		PaymentMethod: r.PaymentMethod,
	}
}
