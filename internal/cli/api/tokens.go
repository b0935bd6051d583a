package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// TokenProvider выпускает свежий прикладной токен у удалённого
// token-эндпойнта. Политика повторов живёт не здесь, а в Client.
type TokenProvider interface {
	FetchToken(ctx context.Context) (token string, expiresIn int64, err error)
}

// OAuthTokenProvider — client-credentials провайдер токенов платформы.
type OAuthTokenProvider struct {
	AuthURL      string
	ClientID     string
	ClientSecret string
	HTTPClient   *http.Client
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int64  `json:"expires_in"` // seconds
}

// NewOAuthTokenProvider создаёт провайдер с разумным таймаутом транспорта.
func NewOAuthTokenProvider(authURL, clientID, clientSecret string) *OAuthTokenProvider {
	return &OAuthTokenProvider{
		AuthURL:      authURL,
		ClientID:     clientID,
		ClientSecret: clientSecret,
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
	}
}

// FetchToken запрашивает токен по grant_type=client_credentials.
// Любой отказ (транспорт, не-200, пустой токен) — *TokenFetchError.
func (p *OAuthTokenProvider) FetchToken(ctx context.Context) (string, int64, error) {
	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {p.ClientID},
		"client_secret": {p.ClientSecret},
	}

	endpoint := strings.TrimRight(p.AuthURL, "/") + "/oauth/token"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return "", 0, &TokenFetchError{Err: err}
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := p.HTTPClient
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", 0, &TokenFetchError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", 0, &TokenFetchError{Err: err}
	}
	if resp.StatusCode != http.StatusOK {
		return "", 0, &TokenFetchError{
			Err: fmt.Errorf("token endpoint status %d: %s", resp.StatusCode, strings.TrimSpace(string(body))),
		}
	}

	var tr tokenResponse
	if err := json.Unmarshal(body, &tr); err != nil {
		return "", 0, &TokenFetchError{Err: fmt.Errorf("decode token response: %w", err)}
	}
	if tr.AccessToken == "" {
		return "", 0, &TokenFetchError{Err: fmt.Errorf("empty access token in response")}
	}
	if tr.ExpiresIn <= 0 {
		return "", 0, &TokenFetchError{Err: fmt.Errorf("invalid expires_in value: %d", tr.ExpiresIn)}
	}

	return tr.AccessToken, tr.ExpiresIn, nil
}
