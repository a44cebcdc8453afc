package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	contactctrl "ynvbites/internal/contact/controller"
	customerctrl "ynvbites/internal/customer/controller"
	orderctrl "ynvbites/internal/order/controller"
	productctrl "ynvbites/internal/product/controller"
	"ynvbites/internal/stats"
	"ynvbites/internal/web"
)

// Controllers bundles everything the router wires up.
type Controllers struct {
	Customers *customerctrl.Controller
	Orders    *orderctrl.Controller
	Products  *productctrl.Controller
	Contacts  *contactctrl.Controller
	Stats     *stats.Controller
	Web       *web.Controller
}

func NewRouter(ctrl Controllers, metrics *Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(logger))
	r.Use(metrics.Middleware)

	r.Route("/api", func(r chi.Router) {
		r.Route("/customers", func(r chi.Router) {
			r.Get("/", ctrl.Customers.List)
			r.Post("/", ctrl.Customers.Create)
			r.Get("/{customerID}", ctrl.Customers.Get)
			r.Put("/{customerID}", ctrl.Customers.Update)
			r.Delete("/{customerID}", ctrl.Customers.Delete)
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ctrl.Orders.List)
			r.Post("/", ctrl.Orders.Create)
			r.Get("/{orderID}", ctrl.Orders.Get)
			r.Put("/{orderID}", ctrl.Orders.Update)
		})

		r.Get("/products", ctrl.Products.List)
		r.Post("/contact", ctrl.Contacts.Create)
		r.Get("/stats", ctrl.Stats.Get)
	})

	r.Get("/", ctrl.Web.Index)
	r.Get("/admin", ctrl.Web.Admin)
	r.Method(http.MethodGet, "/metrics", metrics.Handler())

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			logger.Info("request handled",
				zap.String("requestId", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
