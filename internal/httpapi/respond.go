package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/BeratAydogan/coffeehouse/internal/cart"
	"github.com/BeratAydogan/coffeehouse/internal/checkout"
	"github.com/BeratAydogan/coffeehouse/internal/orders"
	"go.uber.org/zap"
)

type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		zap.L().Warn("failed to encode response", zap.Error(err))
	}
}

func respondError(w http.ResponseWriter, status int, code, message string) {
	respondJSON(w, status, ErrorResponse{
		Error: message,
		Code:  code,
	})
}

// handleServiceError maps store and checkout errors to HTTP status codes.
func handleServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, checkout.ErrEmptyCart):
		respondError(w, http.StatusConflict, "cart_empty", "cart is empty, add an item first")
	case errors.Is(err, cart.ErrLineNotFound):
		respondError(w, http.StatusNotFound, "line_not_found", "cart line not found")
	case errors.Is(err, orders.ErrOrderNotFound):
		respondError(w, http.StatusNotFound, "order_not_found", "order not found")
	case errors.Is(err, cart.ErrMissingTitle),
		errors.Is(err, cart.ErrUnknownSize),
		errors.Is(err, cart.ErrUnknownAroma):
		respondError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}
