package httpapi

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Cart           CartService
	Catalog        CatalogService
	Checkout       CheckoutService
	Orders         OrderService
	Logger         *zap.Logger
	RequestTimeout time.Duration
}

// NewRouter mounts the storefront API. Stream routes skip the request
// timeout, they stay open until the client disconnects.
func NewRouter(cfg RouterConfig) http.Handler {
	cartHandler := NewCartHandler(cfg.Cart, cfg.Logger)
	catalogHandler := NewCatalogHandler(cfg.Catalog, cfg.Logger)
	checkoutHandler := NewCheckoutHandler(cfg.Checkout, cfg.Logger)
	ordersHandler := NewOrdersHandler(cfg.Orders, cfg.Logger)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(RequestLogger(cfg.Logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Compress(5))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	timeout := middleware.Timeout(cfg.RequestTimeout)

	r.Route("/api/v1", func(r chi.Router) {
		r.With(timeout).Get("/catalog", catalogHandler.GetMenu)
		r.With(timeout).Post("/checkout", checkoutHandler.PlaceOrder)

		r.Route("/cart", func(r chi.Router) {
			r.Get("/stream", cartHandler.Stream)

			r.Group(func(r chi.Router) {
				r.Use(timeout)
				r.Get("/", cartHandler.GetCart)
				r.Post("/items", cartHandler.AddLine)
				r.Put("/items/{line_id}/quantity", cartHandler.SetQuantity)
				r.Delete("/items/{line_id}", cartHandler.RemoveLine)
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/stream", ordersHandler.Stream)

			r.Group(func(r chi.Router) {
				r.Use(timeout)
				r.Get("/", ordersHandler.ListOrders)
				r.Get("/{order_id}", ordersHandler.GetOrder)
			})
		})
	})

	return r
}
