package api

import (
	"errors"
	"fmt"
	"net/http"
)

// APIError — неуспешный ответ ресурсного API. Возвращается вызывающему
// как есть: локального восстановления для статусов кроме 401 нет,
// а 401 к этому моменту уже прошёл единственный цикл refresh+retry.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Body)
}

// TokenFetchError — отказ эндпойнта выдачи токенов (транспорт или не-2xx).
type TokenFetchError struct {
	Err error
}

func (e *TokenFetchError) Error() string {
	return fmt.Sprintf("token fetch failed: %v", e.Err)
}

func (e *TokenFetchError) Unwrap() error { return e.Err }

// IsUnauthorized сообщает, что итоговый ответ — 401.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusUnauthorized
}
