package wire

import (
	"net/http"

	"rental-booking/internal/adaptor"

	"github.com/go-chi/chi/v5"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	userHandler *adaptor.UserHandler,
	auth func(http.Handler) http.Handler,
) {
	// ==================== PUBLIC ROUTES ====================
	r.Post("/users", authHandler.Register)
	r.Post("/users/log-in", authHandler.Login)

	// ==================== PROTECTED ROUTES ====================
	r.With(auth).Post("/users/log-out", authHandler.Logout)
	r.With(auth).Get("/users/me", userHandler.GetProfile)
}
