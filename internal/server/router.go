package server

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"portfolio/internal/cart"
	"portfolio/internal/catalog"
	checkoutctrl "portfolio/internal/checkout/controller"
	"portfolio/internal/contact"
	"portfolio/internal/session"
	"portfolio/internal/web"
)

type Controllers struct {
	Catalog  *catalog.Controller
	Cart     *cart.Controller
	Checkout *checkoutctrl.CheckoutController
	Contact  *contact.Controller
}

type SessionOptions struct {
	Store      *session.Store
	CookieName string
}

func NewRouter(ctrls Controllers, sessions SessionOptions, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(web.Trace)
	r.Use(requestLogger(logger))
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		web.WriteJSON(w, logger, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(r chi.Router) {
		r.Get("/services", ctrls.Catalog.HandleListServices)
		r.Get("/services/{serviceId}", ctrls.Catalog.HandleGetService)
		r.Get("/profile", ctrls.Catalog.HandleProfile)
		r.Post("/contact", ctrls.Contact.HandleSubmit)

		r.Group(func(r chi.Router) {
			r.Use(session.Middleware(sessions.Store, sessions.CookieName, logger))

			r.Get("/cart", ctrls.Cart.HandleGetCart)
			r.Post("/cart/items", ctrls.Cart.HandleAddItem)
			r.Delete("/cart/items/{index}", ctrls.Cart.HandleRemoveItem)

			r.Get("/checkout", ctrls.Checkout.GetCheckout)
			r.Post("/checkout/open", ctrls.Checkout.Open)
			r.Post("/checkout/proceed", ctrls.Checkout.Proceed)
			r.Post("/checkout/back", ctrls.Checkout.Back)
			r.Patch("/checkout/form", ctrls.Checkout.UpdateForm)
			r.Post("/checkout/submit", ctrls.Checkout.Submit)
			r.Post("/checkout/close", ctrls.Checkout.Close)

			r.Get("/orders/{orderId}", ctrls.Checkout.GetOrder)
		})
	})

	return r
}

func requestLogger(logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

			next.ServeHTTP(ww, r)

			logger.Info("request completed",
				zap.String("traceId", web.TraceID(r.Context())),
				zap.String("method", r.Method),
				zap.String("path", r.URL.Path),
				zap.Int("status", ww.Status()),
				zap.Int("bytes", ww.BytesWritten()),
				zap.Duration("duration", time.Since(start)),
			)
		})
	}
}
