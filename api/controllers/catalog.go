package controllers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/etorres-dev/modernstore-backend/api/responses"
	catalogsvc "github.com/etorres-dev/modernstore-backend/internal/catalog"
	pkgerrors "github.com/etorres-dev/modernstore-backend/pkg/errors"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
)

// CatalogList handles the shop listing with optional category filter
// and sort order. Unknown values fall back to the defaults rather than
// erroring, matching the storefront's forgiving query handling.
func CatalogList(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		input := catalogsvc.ListInput{
			Category: catalogsvc.ParseCategory(r.URL.Query().Get("category")),
			Sort:     catalogsvc.ParseSortKey(r.URL.Query().Get("sort")),
		}

		responses.WriteSuccess(w, svc.List(input))
	}
}

// CatalogDetail returns the full product record for the detail page.
func CatalogDetail(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		id, err := strconv.Atoi(chi.URLParam(r, "productId"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "invalid product id"))
			return
		}

		details, err := svc.Get(id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, details)
	}
}

// CatalogFeatured returns the home-page featured selection.
func CatalogFeatured(svc catalogsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "catalog service unavailable"))
			return
		}

		responses.WriteSuccess(w, svc.Featured())
	}
}
