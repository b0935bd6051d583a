package commands

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"StoreFront/internal/cli/api"
	"StoreFront/internal/cli/repo"
	"StoreFront/internal/cli/repo/fs"
	"StoreFront/internal/cli/service"
	"StoreFront/internal/cli/store"
	"StoreFront/internal/config"
)

// newTokenStore возвращает файловое хранилище токена для текущей конфигурации.
func newTokenStore(cfg *config.Config) repo.TokenStore {
	return &fs.TokenFSStore{Dir: cfg.TokenDir}
}

// newAPIClient собирает клиент коммерц-API из конфигурации.
func newAPIClient(cfg *config.Config) *api.Client {
	provider := api.NewOAuthTokenProvider(cfg.AuthURL, cfg.ClientID, cfg.ClientSecret)
	return api.NewClient(cfg.APIURL, cfg.ProjectKey, newTokenStore(cfg), provider)
}

// newCatalog собирает каталожный сервис. Недоступный локальный кэш — не
// ошибка: сервис продолжает работать только через API.
func newCatalog(cfg *config.Config) (*service.CatalogService, func()) {
	cache, err := store.Open(cfg.ClientDBPath)
	if err != nil {
		return service.NewCatalogService(newAPIClient(cfg), nil), func() {}
	}
	return service.NewCatalogService(newAPIClient(cfg), cache), func() { _ = cache.Close() }
}

// postJSON sends a JSON POST request and returns status code and body.
func postJSON(url string, payload any) (int, []byte, error) {
	b, err := json.Marshal(payload)
	if err != nil {
		return 0, nil, err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)
	return resp.StatusCode, body, nil
}

// formatPrice печатает цену из минорных единиц: 1999 USD -> "19.99 USD".
func formatPrice(cents int64, currency string) string {
	return fmt.Sprintf("%.2f %s", float64(cents)/100, currency)
}
