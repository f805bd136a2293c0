package domain

// VerifiedIdentity holds the claims extracted from a successfully verified
// identity assertion. It exists only within one request's processing and is
// the only way identity-provider claims enter the rest of the system.
type VerifiedIdentity struct {
	Email       string
	DisplayName string
	AvatarURL   string
}
