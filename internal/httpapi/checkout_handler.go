package httpapi

import (
	"net/http"

	"github.com/BeratAydogan/coffeehouse/internal/checkout"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CheckoutHandler struct {
	checkout CheckoutService
	logger   *zap.Logger
}

func NewCheckoutHandler(checkout CheckoutService, logger *zap.Logger) *CheckoutHandler {
	return &CheckoutHandler{checkout: checkout, logger: logger}
}

type CheckoutResponseDTO struct {
	OrderID string `json:"order_id,omitempty"`
	Status  string `json:"status"`
	Error   string `json:"error,omitempty"`
}

// PlaceOrder runs the two-step checkout. When the order was written but the
// cart could not be cleared the client still gets the order id, with a 207 so
// it can surface the stale cart instead of pretending the order failed.
func (h *CheckoutHandler) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	result, err := h.checkout.PlaceOrder(r.Context())
	if err != nil {
		if result.OrderID != uuid.Nil && result.Status == checkout.StatusOrderWritten {
			h.logger.Warn("checkout left residual cart",
				zap.String("order_id", result.OrderID.String()),
				zap.Error(err))
			respondJSON(w, http.StatusMultiStatus, CheckoutResponseDTO{
				OrderID: result.OrderID.String(),
				Status:  result.Status.String(),
				Error:   "order placed but cart could not be cleared",
			})
			return
		}
		handleServiceError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, CheckoutResponseDTO{
		OrderID: result.OrderID.String(),
		Status:  result.Status.String(),
	})
}
