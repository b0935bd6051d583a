package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"StoreFront/internal/config"
	"StoreFront/internal/service"
)

// CatalogHandler обслуживает каталожные ручки платформы.
type CatalogHandler struct {
	catalog *service.CatalogService
	logger  *zap.SugaredLogger
	config  *config.Config
}

func NewCatalogHandler(catalog *service.CatalogService, logger *zap.SugaredLogger, config *config.Config) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger, config: config}
}

// WithProjectKey отсекает запросы к чужому проекту.
func (h *CatalogHandler) WithProjectKey(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if chi.URLParam(r, "projectKey") != h.config.ProjectKey {
			http.Error(w, "project not found", http.StatusNotFound)
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (h *CatalogHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorw("encode response failed", "error", err)
	}
}

// writeResult мапит ошибки репозитория на коды HTTP.
func (h *CatalogHandler) writeResult(w http.ResponseWriter, v any, err error) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		http.Error(w, "not found", http.StatusNotFound)
	case err != nil:
		h.logger.Errorw("catalog request failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
	default:
		h.writeJSON(w, v)
	}
}

// SearchProducts — GET /{projectKey}/product-projections/search
func (h *CatalogHandler) SearchProducts(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.SearchProducts(r.Context(), r.URL.Query())
	h.writeResult(w, page, err)
}

// GetProduct — GET /{projectKey}/product-projections/{idOrKey}.
// Сегмент вида key=<key> означает выборку по ключу, иначе по id.
func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	idOrKey := chi.URLParam(r, "idOrKey")
	if key, ok := strings.CutPrefix(idOrKey, "key="); ok {
		p, err := h.catalog.ProductByKey(r.Context(), key)
		h.writeResult(w, p, err)
		return
	}
	p, err := h.catalog.ProductByID(r.Context(), idOrKey)
	h.writeResult(w, p, err)
}

func limitParam(r *http.Request) int {
	v, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	return v
}

// ListCategories — GET /{projectKey}/categories
func (h *CatalogHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.Categories(r.Context(), limitParam(r))
	h.writeResult(w, page, err)
}

// GetCategory — GET /{projectKey}/categories/{id}
func (h *CatalogHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.CategoryByID(r.Context(), chi.URLParam(r, "id"))
	h.writeResult(w, c, err)
}

// ListDiscountCodes — GET /{projectKey}/discount-codes
func (h *CatalogHandler) ListDiscountCodes(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.DiscountCodes(r.Context(), limitParam(r))
	h.writeResult(w, page, err)
}

// GetDiscountCode — GET /{projectKey}/discount-codes/{idOrKey}
func (h *CatalogHandler) GetDiscountCode(w http.ResponseWriter, r *http.Request) {
	idOrKey := chi.URLParam(r, "idOrKey")
	if key, ok := strings.CutPrefix(idOrKey, "key="); ok {
		d, err := h.catalog.DiscountByKey(r.Context(), key)
		h.writeResult(w, d, err)
		return
	}
	d, err := h.catalog.DiscountByID(r.Context(), idOrKey)
	h.writeResult(w, d, err)
}
