package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrBadRequest = errors.New("bad request")

	// OTP verification outcomes.
	ErrOTPNotFound = errors.New("otp not found")
	ErrOTPExpired  = errors.New("otp expired")
	ErrOTPMismatch = errors.New("otp mismatch")

	ErrDeliveryFailed = errors.New("delivery failed")

	// Identity assertion outcomes.
	ErrInvalidAssertion = errors.New("invalid identity assertion")
	ErrAudienceMismatch = errors.New("assertion audience mismatch")
	ErrExpiredAssertion = errors.New("identity assertion expired")

	// Account directory outcomes.
	ErrDirectoryUnavailable = errors.New("directory unavailable")
	ErrDirectoryProtocol    = errors.New("directory protocol error")
	ErrProvisioningFailed   = errors.New("provisioning failed")

	ErrSigning = errors.New("session signing error")
)
