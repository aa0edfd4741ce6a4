package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BeratAydogan/coffeehouse/internal/checkout"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type checkoutServiceMock struct {
	result checkout.Result
	err    error
}

func (m *checkoutServiceMock) PlaceOrder(ctx context.Context) (checkout.Result, error) {
	return m.result, m.err
}

func TestPlaceOrder_Success(t *testing.T) {
	orderID := uuid.New()
	mock := &checkoutServiceMock{
		result: checkout.Result{OrderID: orderID, Status: checkout.StatusCartCleared},
	}
	handler := NewCheckoutHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.PlaceOrder(recorder, httptest.NewRequest("POST", "/checkout", nil))

	if recorder.Code != http.StatusCreated {
		t.Errorf("Expected status code %d, got %d", http.StatusCreated, recorder.Code)
	}

	var response CheckoutResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.OrderID != orderID.String() {
		t.Errorf("Expected order id %s, got %s", orderID, response.OrderID)
	}
	if response.Status != checkout.StatusCartCleared.String() {
		t.Errorf("Expected status %s, got %s", checkout.StatusCartCleared, response.Status)
	}
	if response.Error != "" {
		t.Errorf("Expected empty error, got '%s'", response.Error)
	}
}

func TestPlaceOrder_EmptyCart(t *testing.T) {
	mock := &checkoutServiceMock{
		result: checkout.Result{Status: checkout.StatusFailed},
		err:    checkout.ErrEmptyCart,
	}
	handler := NewCheckoutHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.PlaceOrder(recorder, httptest.NewRequest("POST", "/checkout", nil))

	if recorder.Code != http.StatusConflict {
		t.Errorf("Expected status code %d, got %d", http.StatusConflict, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "cart_empty" {
		t.Errorf("Expected error code 'cart_empty', got '%s'", response.Code)
	}
}

// The order exists even though the cart could not be cleared. The client must
// learn the order id rather than being told the whole checkout failed.
func TestPlaceOrder_ResidualCart(t *testing.T) {
	orderID := uuid.New()
	mock := &checkoutServiceMock{
		result: checkout.Result{OrderID: orderID, Status: checkout.StatusOrderWritten},
		err:    fmt.Errorf("clear cart after order write: bulk delete failed"),
	}
	handler := NewCheckoutHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.PlaceOrder(recorder, httptest.NewRequest("POST", "/checkout", nil))

	if recorder.Code != http.StatusMultiStatus {
		t.Errorf("Expected status code %d, got %d", http.StatusMultiStatus, recorder.Code)
	}

	var response CheckoutResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if response.OrderID != orderID.String() {
		t.Errorf("Expected order id %s, got %s", orderID, response.OrderID)
	}
	if response.Status != checkout.StatusOrderWritten.String() {
		t.Errorf("Expected status %s, got %s", checkout.StatusOrderWritten, response.Status)
	}
	if response.Error == "" {
		t.Error("Expected an error message in the response")
	}
}

func TestPlaceOrder_OrderWriteFailure(t *testing.T) {
	mock := &checkoutServiceMock{
		result: checkout.Result{Status: checkout.StatusFailed},
		err:    fmt.Errorf("write order: postgres down"),
	}
	handler := NewCheckoutHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.PlaceOrder(recorder, httptest.NewRequest("POST", "/checkout", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Errorf("Expected status code %d, got %d", http.StatusInternalServerError, recorder.Code)
	}
}
