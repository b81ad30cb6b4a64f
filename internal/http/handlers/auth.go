package handlers

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"

	"agenda-api/internal/security"
)

type AuthHandler struct {
	resolver *security.Resolver
}

func NewAuthHandler(resolver *security.Resolver) *AuthHandler {
	return &AuthHandler{resolver: resolver}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Login checks the submitted credentials against the configured operator
// and hands out the bearer token on success.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	operator := h.resolver.GetOperator()
	if operator == nil {
		respondError(w, http.StatusInternalServerError, "Operator file not found")
		return
	}

	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	usernameOK := subtle.ConstantTimeCompare([]byte(req.Username), []byte(operator.Username)) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(operator.Password)) == 1
	if !usernameOK || !passwordOK {
		respondError(w, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	respondJSON(w, http.StatusOK, loginResponse{
		Token:    security.ComputeToken(*operator),
		Username: operator.Username,
	})
}
