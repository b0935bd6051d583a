package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"StoreFront/internal/cli/repo"
	"StoreFront/internal/model"
)

// TokenKey — слот прикладного токена в TokenStore.
const TokenKey = "app_token"

// Client выполняет запросы к коммерц-API от имени приложения.
// Перед каждым вызовом он гарантирует наличие токена (при отсутствии —
// получает новый), а на 401 принудительно обновляет токен и повторяет
// запрос ровно один раз. Результат повтора финален.
type Client struct {
	apiURL     string
	projectKey string

	httpClient *http.Client
	tokens     repo.TokenStore
	provider   TokenProvider
}

// NewClient собирает клиент API поверх переданного хранилища токена
// и провайдера. Хранилище передаётся по ссылке, чтобы в тестах его можно
// было заменить на in-memory реализацию.
func NewClient(apiURL, projectKey string, tokens repo.TokenStore, provider TokenProvider) *Client {
	return &Client{
		apiURL:     strings.TrimRight(apiURL, "/"),
		projectKey: projectKey,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		tokens:     tokens,
		provider:   provider,
	}
}

// Do выполняет дескриптор по алгоритму:
//  1. читаем токен из хранилища; нет — получаем у провайдера и сохраняем;
//     отказ провайдера прерывает вызов, запрос к ресурсу не выполняется;
//  2. выполняем запрос с Authorization: Bearer;
//  3. на 401 — всегда свежий токен у провайдера (даже если шаг 1 только
//     что его получил), сохраняем и повторяем запрос один раз;
//  4. итог возвращается вызывающему: 2xx — тело, иначе *APIError.
func (c *Client) Do(ctx context.Context, d Descriptor) ([]byte, error) {
	token, ok := c.tokens.Get(TokenKey)
	if !ok {
		fresh, expiresIn, err := c.provider.FetchToken(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.tokens.Set(TokenKey, fresh, time.Duration(expiresIn)*time.Second); err != nil {
			return nil, fmt.Errorf("storing token: %w", err)
		}
		token = fresh
	}

	status, body, err := c.execute(ctx, d, token)
	if err != nil {
		return nil, err
	}

	if status == http.StatusUnauthorized {
		fresh, expiresIn, err := c.provider.FetchToken(ctx)
		if err != nil {
			return nil, err
		}
		if err := c.tokens.Set(TokenKey, fresh, time.Duration(expiresIn)*time.Second); err != nil {
			return nil, fmt.Errorf("storing token: %w", err)
		}
		status, body, err = c.execute(ctx, d, fresh)
		if err != nil {
			return nil, err
		}
	}

	if status < 200 || status > 299 {
		return nil, &APIError{StatusCode: status, Body: strings.TrimSpace(string(body))}
	}
	return body, nil
}

// execute отправляет один HTTP-запрос и целиком вычитывает тело ответа.
func (c *Client) execute(ctx context.Context, d Descriptor, token string) (int, []byte, error) {
	u := c.apiURL + "/" + c.projectKey + d.Path
	if len(d.Query) > 0 {
		u += "?" + d.Query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, d.Method, u, nil)
	if err != nil {
		return 0, nil, fmt.Errorf("building request: %w", err)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("reading response: %w", err)
	}
	return resp.StatusCode, body, nil
}

func decode[T any](b []byte, err error) (*T, error) {
	if err != nil {
		return nil, err
	}
	var v T
	if err := json.Unmarshal(b, &v); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &v, nil
}

// GetProductByID возвращает проекцию товара по id.
func (c *Client) GetProductByID(ctx context.Context, id string) (*model.Product, error) {
	return decode[model.Product](c.Do(ctx, ProductByID(id)))
}

// GetProductByKey возвращает проекцию товара по ключу.
func (c *Client) GetProductByKey(ctx context.Context, key string) (*model.Product, error) {
	return decode[model.Product](c.Do(ctx, ProductByKey(key)))
}

// SearchProducts выполняет поиск товаров.
func (c *Client) SearchProducts(ctx context.Context, p SearchParams) (*model.PagedProducts, error) {
	return decode[model.PagedProducts](c.Do(ctx, SearchProducts(p)))
}

// GetCategories возвращает страницу категорий.
func (c *Client) GetCategories(ctx context.Context, limit int) (*model.PagedCategories, error) {
	return decode[model.PagedCategories](c.Do(ctx, Categories(limit)))
}

// GetCategoryByID возвращает категорию по id.
func (c *Client) GetCategoryByID(ctx context.Context, id string) (*model.Category, error) {
	return decode[model.Category](c.Do(ctx, CategoryByID(id)))
}

// GetDiscountCodes возвращает страницу промокодов.
func (c *Client) GetDiscountCodes(ctx context.Context, limit int) (*model.PagedDiscountCodes, error) {
	return decode[model.PagedDiscountCodes](c.Do(ctx, DiscountCodes(limit)))
}

// GetDiscountByID возвращает промокод по id.
func (c *Client) GetDiscountByID(ctx context.Context, id string) (*model.DiscountCode, error) {
	return decode[model.DiscountCode](c.Do(ctx, DiscountByID(id)))
}

// GetDiscountByKey возвращает промокод по ключу.
func (c *Client) GetDiscountByKey(ctx context.Context, key string) (*model.DiscountCode, error) {
	return decode[model.DiscountCode](c.Do(ctx, DiscountByKey(key)))
}
