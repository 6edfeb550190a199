package httpx

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"turkeypos/internal/httpx/middlewares"
)

func NewRouter(handler *Handler) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middlewares.EchoRequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/menu", handler.GetMenu)

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", handler.OpenSession)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", handler.GetSession)
			r.Delete("/", handler.CloseSession)

			r.Post("/selection", handler.BeginSelection)
			r.Delete("/selection", handler.DismissSelection)
			r.Post("/selection/options/{optionID}", handler.ToggleOption)
			r.Post("/selection/keypad", handler.Keypad)
			r.Post("/selection/confirm", handler.ConfirmSelection)

			r.Delete("/cart/lines/{index}", handler.RemoveLine)

			r.Put("/table", handler.SetTable)
			r.Put("/takeout", handler.SetTakeout)
			r.Put("/received", handler.SetReceived)

			r.Post("/checkout", handler.Checkout)
			r.Get("/checkout", handler.CheckoutStatus)
		})
	})

	r.Route("/kitchen", func(r chi.Router) {
		r.Get("/orders", handler.KitchenOrders)
		r.Post("/orders/{orderID}/complete", handler.CompleteKitchenOrder)
		r.Delete("/orders/{orderID}", handler.DeleteKitchenOrder)
	})

	r.Get("/sales/stats", handler.SalesStats)
	r.Get("/sales/overview", handler.SalesOverview)

	return r
}
