package auth

import (
	"context"
	"crypto/rand"
	"fmt"
	"log/slog"
	"math/big"
	"strings"

	"github.com/glintler/auth-gateway/internal/domain"
	"github.com/glintler/auth-gateway/internal/infrastructure/directory"
)

// AssertionVerifier validates a third-party identity token.
type AssertionVerifier interface {
	Verify(ctx context.Context, token string) (*domain.VerifiedIdentity, error)
}

// Directory is the minimal interface the login flow requires from the
// external account directory.
type Directory interface {
	ListAccounts(ctx context.Context) ([]domain.Account, error)
	ProvisionAccount(ctx context.Context, p directory.ProvisionRequest) (*domain.Account, error)
}

// SessionSigner mints the bearer credential for a resolved account.
type SessionSigner interface {
	Sign(userID, email string) (string, error)
}

// Result is the outcome of a completed federated login.
type Result struct {
	IsNewUser bool
	UserID    string
	Name      string
	Email     string
	Picture   string
	Token     string
}

type Service interface {
	// GoogleLogin runs the federated login chain: verify the assertion,
	// resolve the identity against the directory (provisioning on a miss),
	// then issue a session credential. The first failing step terminates the
	// flow; directory state is not rolled back if signing fails afterwards.
	GoogleLogin(ctx context.Context, rawToken string) (*Result, error)
}

type service struct {
	verifier  AssertionVerifier
	directory Directory
	signer    SessionSigner
}

func NewService(verifier AssertionVerifier, dir Directory, signer SessionSigner) Service {
	return &service{verifier: verifier, directory: dir, signer: signer}
}

func (s *service) GoogleLogin(ctx context.Context, rawToken string) (*Result, error) {
	if rawToken == "" {
		return nil, fmt.Errorf("token required: %w", domain.ErrBadRequest)
	}

	ident, err := s.verifier.Verify(ctx, rawToken)
	if err != nil {
		return nil, err
	}

	accounts, err := s.directory.ListAccounts(ctx)
	if err != nil {
		return nil, err
	}
	for _, a := range accounts {
		if strings.EqualFold(a.Email, ident.Email) {
			token, err := s.signer.Sign(a.AccountID, ident.Email)
			if err != nil {
				return nil, err
			}
			slog.Info("google login", "email", ident.Email, "account_id", a.AccountID)
			return &Result{
				UserID:  a.AccountID,
				Name:    a.DisplayName,
				Email:   ident.Email,
				Picture: ident.AvatarURL,
				Token:   token,
			}, nil
		}
	}

	// No match: provision a directory account. The generated password is
	// throwaway; the account authenticates by token from here on.
	password, err := generatePassword()
	if err != nil {
		return nil, err
	}
	first, last := splitDisplayName(ident.DisplayName)
	acct, err := s.directory.ProvisionAccount(ctx, directory.ProvisionRequest{
		Email:        ident.Email,
		Name:         ident.DisplayName,
		Password:     password,
		FirstName:    first,
		LastName:     last,
		GoogleSignup: true,
	})
	if err != nil {
		return nil, err
	}

	token, err := s.signer.Sign(acct.AccountID, ident.Email)
	if err != nil {
		return nil, err
	}
	slog.Info("google signup", "email", ident.Email, "account_id", acct.AccountID)
	return &Result{
		IsNewUser: true,
		UserID:    acct.AccountID,
		Name:      ident.DisplayName,
		Email:     ident.Email,
		Picture:   ident.AvatarURL,
		Token:     token,
	}, nil
}

// splitDisplayName cuts on the first whitespace: everything before it is the
// first name, the remainder the last name. A single-word name becomes the
// first name with an empty last name.
func splitDisplayName(name string) (first, last string) {
	name = strings.TrimSpace(name)
	first, last, found := strings.Cut(name, " ")
	if !found {
		return name, ""
	}
	return first, strings.TrimSpace(last)
}

const passwordAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// generatePassword builds the 8-random-character throwaway provisioning
// password; the fixed suffix satisfies the directory's complexity rules.
func generatePassword() (string, error) {
	b := make([]byte, 8)
	for i := range b {
		idx, err := rand.Int(rand.Reader, big.NewInt(int64(len(passwordAlphabet))))
		if err != nil {
			return "", err
		}
		b[i] = passwordAlphabet[idx.Int64()]
	}
	return string(b) + "G!1", nil
}
