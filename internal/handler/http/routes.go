package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization: login and the realtime endpoint.
	// The WebSocket channel authenticates in-band with the first frame.
	router.Group(func(r chi.Router) {
		r.Post("/api/auth/login", h.login)
		r.Get("/api/ws", h.realtime)
	})

	// routes with authorization
	router.Group(func(r chi.Router) {
		r.Use(h.auth)

		r.Post("/api/verifications", h.createVerification)
		r.Get("/api/verifications/{verificationID}", h.getVerification)
		r.Get("/api/verifications/{verificationID}/messages", h.getVerificationMessages)
		r.Delete("/api/verifications/{verificationID}", h.cancelVerification)

		r.Get("/api/wallet/balance", h.walletBalance)

		r.Get("/api/rentals", h.listRentals)
		r.Post("/api/rentals/{rentalID}/extend", h.extendRental)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
