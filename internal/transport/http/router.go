package http

import (
	"net/http"

	"github.com/glintler/auth-gateway/internal/application/auth"
	"github.com/glintler/auth-gateway/internal/application/otp"
	"github.com/glintler/auth-gateway/internal/config"
	"github.com/glintler/auth-gateway/internal/transport/http/handler"
	appmiddleware "github.com/glintler/auth-gateway/internal/transport/http/middleware"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"golang.org/x/time/rate"
)

// Deps holds the services the router exposes over HTTP.
type Deps struct {
	OTPService  otp.Service
	AuthService auth.Service
}

// NewRouter builds and returns the application router.
func NewRouter(cfg *config.Config, deps *Deps) http.Handler {
	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	// 5 requests/second, burst of 10 — all three auth endpoints are
	// sensitive and public.
	sensitiveRL := appmiddleware.NewRateLimiter(rate.Limit(5), 10)

	otpH := handler.NewOTPHandler(deps.OTPService)
	googleH := handler.NewGoogleAuthHandler(deps.AuthService)
	healthH := handler.NewHealthHandler()

	r.Get("/health-check/ping", healthH.Ping)

	r.Route("/api", func(r chi.Router) {
		r.Use(sensitiveRL.Limit)
		r.Post("/send-otp", otpH.Send)
		r.Post("/verify-otp", otpH.Verify)
		r.Post("/auth/google", googleH.Login)
	})

	return r
}
