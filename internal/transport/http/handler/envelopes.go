package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/glintler/auth-gateway/internal/domain"
)

// Envelope is the generic response wrapper: a success flag plus a
// human-readable message.
type Envelope struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// GoogleAuthEnvelope wraps successful federated-login responses.
type GoogleAuthEnvelope struct {
	Success   bool        `json:"success"`
	IsNewUser bool        `json:"isNewUser"`
	User      UserPayload `json:"user"`
	Token     string      `json:"token"`
}

// UserPayload is the client-facing user shape.
type UserPayload struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Picture string `json:"picture"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Success: false, Message: msg})
}

// httpError maps domain sentinel errors onto HTTP status + message.
// Caller-fault and business-rule failures are 400s; infrastructure failures
// are 500s. Messages are fixed per kind so internals never leak to clients.
func httpError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrBadRequest):
		writeError(w, http.StatusBadRequest, "Email required")
	case errors.Is(err, domain.ErrOTPNotFound):
		writeError(w, http.StatusBadRequest, "No OTP found for this email")
	case errors.Is(err, domain.ErrOTPExpired):
		writeError(w, http.StatusBadRequest, "OTP expired")
	case errors.Is(err, domain.ErrOTPMismatch):
		writeError(w, http.StatusBadRequest, "The entered code is incorrect. Please try again and check for typos.")
	case errors.Is(err, domain.ErrDeliveryFailed):
		writeError(w, http.StatusInternalServerError, "Failed to send OTP")
	case errors.Is(err, domain.ErrExpiredAssertion):
		writeError(w, http.StatusBadRequest, "Google token expired")
	case errors.Is(err, domain.ErrAudienceMismatch),
		errors.Is(err, domain.ErrInvalidAssertion):
		writeError(w, http.StatusBadRequest, "Google authentication failed")
	case errors.Is(err, domain.ErrProvisioningFailed):
		writeError(w, http.StatusBadRequest, "Failed to create user")
	case errors.Is(err, domain.ErrDirectoryUnavailable),
		errors.Is(err, domain.ErrDirectoryProtocol):
		writeError(w, http.StatusInternalServerError, "Account service unavailable")
	case errors.Is(err, domain.ErrSigning):
		writeError(w, http.StatusInternalServerError, "Could not issue session token")
	default:
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}
