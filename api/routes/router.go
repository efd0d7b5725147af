package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alessaops/storefront-backend/api/controllers"
	"github.com/alessaops/storefront-backend/api/middleware"
	"github.com/alessaops/storefront-backend/internal/menu"
	"github.com/alessaops/storefront-backend/internal/tenants"
	"github.com/alessaops/storefront-backend/pkg/config"
	"github.com/alessaops/storefront-backend/pkg/db"
	"github.com/alessaops/storefront-backend/pkg/logger"
	"github.com/alessaops/storefront-backend/pkg/metrics"
	"github.com/alessaops/storefront-backend/pkg/redis"
)

func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbP db.Pinger,
	redisClient *redis.Client,
	registry *prometheus.Registry,
	tenantService tenants.Service,
	menuService menu.Service,
	deliveryService controllers.DeliveryQuoter,
	quoteMetrics *metrics.QuoteMetrics,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbP, redisClient))
	})

	if registry != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.TenantContext(tenantService, logg))
		r.Get("/menu", controllers.Menu(menuService, logg))
		r.Post("/cart/quote", controllers.CartQuote(menuService, deliveryService, quoteMetrics, logg))
	})

	r.Route("/api/admin/v1", func(r chi.Router) {
		r.Use(middleware.TenantContext(tenantService, logg))
		r.Put("/items/{itemID}/time-rule", controllers.AdminUpsertTimeRule(menuService, logg))
	})

	return r
}
