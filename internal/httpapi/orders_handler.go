package httpapi

import (
	"net/http"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrdersHandler struct {
	orders OrderService
	logger *zap.Logger
}

func NewOrdersHandler(orders OrderService, logger *zap.Logger) *OrdersHandler {
	return &OrdersHandler{orders: orders, logger: logger}
}

type OrderListResponseDTO struct {
	Orders []*domain.Order `json:"orders"`
}

func (h *OrdersHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.List(r.Context())
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, OrderListResponseDTO{Orders: orders})
}

func (h *OrdersHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "order_id"))
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid_order_id", "order id must be a UUID")
		return
	}

	order, err := h.orders.Get(r.Context(), id)
	if err != nil {
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// Stream pushes the full order history over SSE whenever it changes.
func (h *OrdersHandler) Stream(w http.ResponseWriter, r *http.Request) {
	streamSnapshots(w, r, h.logger, func(fn func([]*domain.Order)) (func(), error) {
		return h.orders.Subscribe(r.Context(), fn)
	})
}
