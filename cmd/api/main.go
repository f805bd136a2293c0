package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/glintler/auth-gateway/internal/application/auth"
	"github.com/glintler/auth-gateway/internal/application/otp"
	"github.com/glintler/auth-gateway/internal/config"
	"github.com/glintler/auth-gateway/internal/infrastructure/directory"
	"github.com/glintler/auth-gateway/internal/infrastructure/google"
	jwtinfra "github.com/glintler/auth-gateway/internal/infrastructure/jwt"
	"github.com/glintler/auth-gateway/internal/infrastructure/smtp"
	"github.com/glintler/auth-gateway/internal/store"
	transporthttp "github.com/glintler/auth-gateway/internal/transport/http"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// OTP store: process-local map by default, Redis when configured.
	var otpStore store.Store
	if cfg.RedisAddr != "" {
		otpStore = store.NewRedisStore(cfg.RedisAddr, cfg.RedisPassword)
		log.Printf("OTP store: redis (%s)", cfg.RedisAddr)
	} else {
		otpStore = store.NewMemoryStore()
		log.Println("OTP store: in-memory")
	}

	mailer := smtp.NewMailer(cfg)
	verifier := google.NewVerifier(cfg.GoogleClientID)
	dir := directory.NewClient(cfg)

	jwtProvider, err := jwtinfra.NewProvider(cfg.JWTSecret, cfg.JWTExpiry)
	if err != nil {
		log.Fatalf("JWT provider: %v", err)
	}

	deps := &transporthttp.Deps{
		OTPService:  otp.NewService(otpStore, mailer, cfg.OTPTTL, cfg.OTPVerifyDelay),
		AuthService: auth.NewService(verifier, dir, jwtProvider),
	}

	router := transporthttp.NewRouter(cfg, deps)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.AppPort),
		Handler: router,
		// WriteTimeout must leave headroom over the fixed OTP-verification
		// response delay.
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on :%s (env=%s)", cfg.AppPort, cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("forced shutdown: %v", err)
	}
	log.Println("Server stopped")
}
