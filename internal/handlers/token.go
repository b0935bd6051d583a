package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"StoreFront/internal/config"
	"StoreFront/internal/middleware"
)

// TokenHandler выпускает прикладные токены по client credentials.
type TokenHandler struct {
	logger *zap.SugaredLogger
	config *config.Config
}

func NewTokenHandler(logger *zap.SugaredLogger, config *config.Config) *TokenHandler {
	return &TokenHandler{logger: logger, config: config}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"`
}

// Issue — POST /oauth/token. Принимает form-encoded запрос
// grant_type=client_credentials и отвечает JSON с access_token.
func (h *TokenHandler) Issue(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	if r.PostForm.Get("grant_type") != "client_credentials" {
		http.Error(w, "unsupported grant_type", http.StatusBadRequest)
		return
	}
	clientID := r.PostForm.Get("client_id")
	clientSecret := r.PostForm.Get("client_secret")
	if clientID != h.config.ClientID || clientSecret != h.config.ClientSecret {
		h.logger.Infow("token request rejected", "client_id", clientID)
		http.Error(w, "invalid client credentials", http.StatusUnauthorized)
		return
	}

	ttl := time.Duration(h.config.TokenTTL) * time.Second
	token, err := middleware.IssueToken(clientID, h.config.AuthSecret, ttl)
	if err != nil {
		h.logger.Errorw("token issue failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(tokenResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   h.config.TokenTTL,
	})
}
