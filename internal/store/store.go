package store

import (
	"context"

	"github.com/glintler/auth-gateway/internal/domain"
)

// Store is the minimal interface the OTP service requires from a record store.
// Put is an unconditional upsert: the most recent issuance for an identity wins.
// Delete reports whether a record was actually removed, which is what makes a
// concurrent verify-then-delete on the same identity single-winner.
type Store interface {
	Put(ctx context.Context, identity string, rec domain.OtpRecord) error
	// Get returns domain.ErrOTPNotFound when no record exists for the identity.
	Get(ctx context.Context, identity string) (*domain.OtpRecord, error)
	Delete(ctx context.Context, identity string) (bool, error)
}
