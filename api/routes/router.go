package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/etorres-dev/modernstore-backend/api/controllers"
	cartcontrollers "github.com/etorres-dev/modernstore-backend/api/controllers/cart"
	"github.com/etorres-dev/modernstore-backend/api/middleware"
	cartsvc "github.com/etorres-dev/modernstore-backend/internal/cart"
	catalogsvc "github.com/etorres-dev/modernstore-backend/internal/catalog"
	checkoutsvc "github.com/etorres-dev/modernstore-backend/internal/checkout"
	contactsvc "github.com/etorres-dev/modernstore-backend/internal/contact"
	"github.com/etorres-dev/modernstore-backend/pkg/config"
	"github.com/etorres-dev/modernstore-backend/pkg/logger"
	"github.com/etorres-dev/modernstore-backend/pkg/metrics"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	gatherer prometheus.Gatherer,
	httpMetrics *metrics.HTTPMetrics,
	catalogService catalogsvc.Service,
	cartStore *cartsvc.Store,
	checkoutService checkoutsvc.Service,
	contactService contactsvc.Service,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg))
	})

	if gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Session(cfg.Session, logg))

		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogList(catalogService, logg))
			r.Get("/products/{productId}", controllers.CatalogDetail(catalogService, logg))
			r.Get("/featured", controllers.CatalogFeatured(catalogService, logg))
		})

		r.Route("/cart", func(r chi.Router) {
			r.Get("/", cartcontrollers.Fetch(cartStore, logg))
			r.Delete("/", cartcontrollers.Clear(cartStore, logg))
			r.Post("/items", cartcontrollers.AddItem(cartStore, catalogService, logg))
			r.Patch("/items/{productId}", cartcontrollers.UpdateItem(cartStore, logg))
			r.Delete("/items/{productId}", cartcontrollers.RemoveItem(cartStore, logg))
		})

		r.Route("/checkout", func(r chi.Router) {
			r.Get("/quote", controllers.CheckoutQuote(checkoutService, logg))
			r.Post("/", controllers.CheckoutSubmit(checkoutService, logg))
		})

		r.Post("/contact", controllers.ContactSubmit(contactService, logg))
	})

	return r
}
