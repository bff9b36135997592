package http

import (
	"net/http"

	"golang.org/x/crypto/bcrypt"

	"festaloc-backend/internal/logger"
	"festaloc-backend/internal/security"
)

// AuthHandler signs the single operator in. There is no user table: the
// credentials come from configuration.
type AuthHandler struct {
	tokens       security.TokenManager
	username     string
	passwordHash string
}

func NewAuthHandler(tokens security.TokenManager, username, passwordHash string) *AuthHandler {
	return &AuthHandler{tokens: tokens, username: username, passwordHash: passwordHash}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, err)
		return
	}

	if req.Username != h.username ||
		bcrypt.CompareHashAndPassword([]byte(h.passwordHash), []byte(req.Password)) != nil {
		logger.Warn("Failed login attempt", "username", req.Username)
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid credentials"})
		return
	}

	token, err := h.tokens.GenerateAccessToken(req.Username)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, loginResponse{Token: token})
}
