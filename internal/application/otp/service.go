package otp

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"time"

	"github.com/glintler/auth-gateway/internal/domain"
	"github.com/glintler/auth-gateway/internal/infrastructure/smtp"
	"github.com/glintler/auth-gateway/internal/pkg/validate"
	"github.com/glintler/auth-gateway/internal/store"
)

type Service interface {
	// Issue generates a code for the identity, stores it with a deadline and
	// delivers it by email. An earlier pending code for the same identity is
	// replaced.
	Issue(ctx context.Context, email string) error
	// Verify checks a submitted code and consumes it on success. The response
	// is held back for the configured delay on every branch, success included,
	// so the outcome cannot be read from response timing.
	Verify(ctx context.Context, email, code string) error
}

type service struct {
	store  store.Store
	mailer smtp.Mailer
	ttl    time.Duration
	delay  time.Duration
}

func NewService(st store.Store, mailer smtp.Mailer, ttl, delay time.Duration) Service {
	return &service{store: st, mailer: mailer, ttl: ttl, delay: delay}
}

func (s *service) Issue(ctx context.Context, email string) error {
	if err := validate.Var(email, "required,email"); err != nil {
		return fmt.Errorf("email required: %w", domain.ErrBadRequest)
	}

	code, err := generateCode()
	if err != nil {
		return err
	}

	rec := domain.OtpRecord{
		Identity:  email,
		Code:      code,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.store.Put(ctx, email, rec); err != nil {
		return err
	}

	html, err := renderEmailHTML(code, validityText(s.ttl))
	if err != nil {
		return err
	}
	text := "Your OTP code is " + code
	if err := s.mailer.SendEmail(email, "Your OTP Code", text, html); err != nil {
		// The stored record is intentionally left in place; the caller retries
		// issuance and the retry overwrites it.
		return fmt.Errorf("send otp email: %v: %w", err, domain.ErrDeliveryFailed)
	}
	slog.Info("otp issued", "email", email)
	return nil
}

func (s *service) Verify(ctx context.Context, email, code string) error {
	outcome := s.check(ctx, email, code)

	// Uniform-latency stage: suspends only this call, not the process.
	select {
	case <-time.After(s.delay):
	case <-ctx.Done():
		return ctx.Err()
	}
	return outcome
}

func (s *service) check(ctx context.Context, email, code string) error {
	rec, err := s.store.Get(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrOTPNotFound) {
			return fmt.Errorf("no pending code for %s: %w", email, domain.ErrOTPNotFound)
		}
		return err
	}
	if rec.Expired(time.Now()) {
		// Left in place: a repeat attempt keeps reporting expired, not absent.
		return fmt.Errorf("code expired at %s: %w", rec.ExpiresAt.Format(time.RFC3339), domain.ErrOTPExpired)
	}
	if rec.Code != code {
		// Record retained so the caller can retry until expiry.
		return fmt.Errorf("submitted code does not match: %w", domain.ErrOTPMismatch)
	}
	deleted, err := s.store.Delete(ctx, email)
	if err != nil {
		return err
	}
	if !deleted {
		// A concurrent verification consumed the record first; only one
		// success per outstanding code.
		return fmt.Errorf("code already consumed: %w", domain.ErrOTPNotFound)
	}
	return nil
}

// generateCode draws a uniform 6-digit code. The range starts at 100000 so
// leading-zero codes cannot occur.
func generateCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return "", err
	}
	return strconv.FormatInt(n.Int64()+100000, 10), nil
}

func validityText(ttl time.Duration) string {
	if m := int(ttl.Minutes()); m > 0 {
		return fmt.Sprintf("%d minutes", m)
	}
	return ttl.String()
}
