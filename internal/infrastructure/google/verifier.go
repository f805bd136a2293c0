package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/glintler/auth-gateway/internal/domain"
	"google.golang.org/api/idtoken"
)

// Verifier validates Google ID tokens against a specific client ID. It is
// the trust boundary between the identity provider and the rest of the
// system: no claim leaves this package unless the token verified.
type Verifier struct {
	audience string
}

func NewVerifier(audience string) *Verifier {
	return &Verifier{audience: audience}
}

// Verify validates the token's signature, issuer, audience and expiry, and
// returns the verified identity with the email normalized.
func (v *Verifier) Verify(ctx context.Context, token string) (*domain.VerifiedIdentity, error) {
	p, err := idtoken.Validate(ctx, token, v.audience)
	if err != nil {
		return nil, classify(err)
	}
	email, _ := p.Claims["email"].(string)
	name, _ := p.Claims["name"].(string)
	picture, _ := p.Claims["picture"].(string)
	if email == "" {
		return nil, fmt.Errorf("token carries no email claim: %w", domain.ErrInvalidAssertion)
	}
	return &domain.VerifiedIdentity{
		Email:       strings.ToLower(strings.TrimSpace(email)),
		DisplayName: name,
		AvatarURL:   picture,
	}, nil
}

// classify maps idtoken validation failures onto the assertion error kinds.
// The idtoken package returns flat errors, so matching on message text is the
// only discrimination available.
func classify(err error) error {
	msg := err.Error()
	switch {
	case strings.Contains(msg, "expired"):
		return fmt.Errorf("google token expired: %w", domain.ErrExpiredAssertion)
	case strings.Contains(msg, "audience"):
		return fmt.Errorf("google token audience mismatch: %w", domain.ErrAudienceMismatch)
	default:
		return fmt.Errorf("invalid google token: %w", domain.ErrInvalidAssertion)
	}
}
