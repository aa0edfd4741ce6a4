package httpapi

import (
	"net/http"

	"github.com/BeratAydogan/coffeehouse/internal/catalog"
	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"go.uber.org/zap"
)

type CatalogHandler struct {
	catalog CatalogService
	logger  *zap.Logger
}

func NewCatalogHandler(catalog CatalogService, logger *zap.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

type CategoryResponseDTO struct {
	Items []domain.CatalogItem `json:"items"`
}

// GetMenu serves the catalog. With ?type= it returns one category, without
// it both; ?q= filters titles either way.
func (h *CatalogHandler) GetMenu(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	if typeParam := r.URL.Query().Get("type"); typeParam != "" {
		category := catalog.Category(typeParam)
		if !category.Valid() {
			respondError(w, http.StatusBadRequest, "invalid_type", "type must be hot or iced")
			return
		}

		items, err := h.catalog.Category(r.Context(), category)
		if err != nil {
			h.logger.Warn("catalog category fetch failed", zap.String("category", typeParam), zap.Error(err))
			respondError(w, http.StatusBadGateway, "catalog_unavailable", "catalog fetch failed")
			return
		}

		respondJSON(w, http.StatusOK, CategoryResponseDTO{Items: catalog.Filter(items, query)})
		return
	}

	menu := h.catalog.Menu(r.Context())
	menu.Hot = catalog.Filter(menu.Hot, query)
	menu.Iced = catalog.Filter(menu.Iced, query)
	respondJSON(w, http.StatusOK, menu)
}
