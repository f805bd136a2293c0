package handler

import (
	"encoding/json"
	"net/http"

	"github.com/glintler/auth-gateway/internal/application/auth"
)

// GoogleAuthHandler handles the federated-login endpoint.
type GoogleAuthHandler struct {
	svc auth.Service
}

func NewGoogleAuthHandler(svc auth.Service) *GoogleAuthHandler {
	return &GoogleAuthHandler{svc: svc}
}

type googleAuthRequest struct {
	Token string `json:"token"`
}

func (h *GoogleAuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req googleAuthRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Token == "" {
		writeError(w, http.StatusBadRequest, "Token required")
		return
	}
	res, err := h.svc.GoogleLogin(r.Context(), req.Token)
	if err != nil {
		httpError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, GoogleAuthEnvelope{
		Success:   true,
		IsNewUser: res.IsNewUser,
		User: UserPayload{
			ID:      res.UserID,
			Name:    res.Name,
			Email:   res.Email,
			Picture: res.Picture,
		},
		Token: res.Token,
	})
}
