package controllers

import (
	"net/http"

	"github.com/etorres-dev/modernstore-backend/api/responses"
	"github.com/etorres-dev/modernstore-backend/api/validators"
	contactsvc "github.com/etorres-dev/modernstore-backend/internal/contact"
	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
)

// ContactSubmit accepts a contact-form message and acknowledges it.
func ContactSubmit(svc contactsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "contact service unavailable"))
			return
		}

		var payload contactRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		receipt, err := svc.Submit(r.Context(), contactsvc.Message{
			FirstName: payload.FirstName,
			LastName:  payload.LastName,
			Email:     payload.Email,
			Subject:   payload.Subject,
			Body:      payload.Message,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccessStatus(w, http.StatusAccepted, receipt)
	}
}

type contactRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email" validate:"omitempty,email"`
	Subject   string `json:"subject"`
	Message   string `json:"message"`
}
