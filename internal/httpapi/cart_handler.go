package httpapi

import (
	"encoding/json"
	"net/http"

	"github.com/BeratAydogan/coffeehouse/internal/cart"
	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type CartHandler struct {
	cart   CartService
	logger *zap.Logger
}

func NewCartHandler(cart CartService, logger *zap.Logger) *CartHandler {
	return &CartHandler{cart: cart, logger: logger}
}

type AddLineRequestDTO struct {
	CoffeeID          string  `json:"coffeeId"`
	Title             string  `json:"title"`
	Size              string  `json:"size"`
	BasePrice         float64 `json:"basePrice"`
	ExtraShot         bool    `json:"extraShot"`
	ExtraAromaEnabled bool    `json:"extraAromaEnabled"`
	SelectedAroma     string  `json:"selectedAroma"`
	Image             string  `json:"image"`
}

type SetQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

type CartResponseDTO struct {
	Lines []domain.CartLine `json:"lines"`
	Total float64           `json:"total"`
}

// GetCart returns the current snapshot, newest line first.
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	lines, err := h.cart.Snapshot(r.Context())
	if err != nil {
		h.logger.Error("cart snapshot failed", zap.Error(err))
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, CartResponseDTO{
		Lines: lines,
		Total: h.cart.Total(lines),
	})
}

func (h *CartHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	var req AddLineRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	if req.BasePrice < 0 {
		respondError(w, http.StatusBadRequest, "invalid_price", "basePrice must not be negative")
		return
	}

	id, err := h.cart.AddLine(r.Context(), cart.NewLine{
		CoffeeID:          req.CoffeeID,
		Title:             req.Title,
		Size:              req.Size,
		BasePrice:         req.BasePrice,
		ExtraShot:         req.ExtraShot,
		ExtraAromaEnabled: req.ExtraAromaEnabled,
		SelectedAroma:     req.SelectedAroma,
		Image:             req.Image,
	})
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id})
}

// SetQuantity updates a line's quantity; zero or below removes the line.
func (h *CartHandler) SetQuantity(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "line_id")
	if lineID == "" {
		respondError(w, http.StatusBadRequest, "invalid_line_id", "line id is required")
		return
	}

	var req SetQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity > 99 {
		respondError(w, http.StatusBadRequest, "invalid_quantity", "quantity must be at most 99")
		return
	}

	if err := h.cart.SetQuantity(r.Context(), lineID, req.Quantity); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RemoveLine deletes a line outright, the same path a quantity of zero takes.
func (h *CartHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	lineID := chi.URLParam(r, "line_id")
	if lineID == "" {
		respondError(w, http.StatusBadRequest, "invalid_line_id", "line id is required")
		return
	}

	if err := h.cart.SetQuantity(r.Context(), lineID, 0); err != nil {
		handleServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Stream pushes cart snapshots over SSE for the life of the connection.
func (h *CartHandler) Stream(w http.ResponseWriter, r *http.Request) {
	streamSnapshots(w, r, h.logger, func(fn func([]domain.CartLine)) (func(), error) {
		return h.cart.Subscribe(r.Context(), fn)
	})
}
