package httpapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/BeratAydogan/coffeehouse/internal/catalog"
	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"go.uber.org/zap"
)

type catalogServiceMock struct {
	menu        catalog.Menu
	items       []domain.CatalogItem
	categoryErr error
}

func (m *catalogServiceMock) Menu(ctx context.Context) catalog.Menu {
	return m.menu
}

func (m *catalogServiceMock) Category(ctx context.Context, category catalog.Category) ([]domain.CatalogItem, error) {
	if m.categoryErr != nil {
		return nil, m.categoryErr
	}
	return m.items, nil
}

func TestGetMenu_BothCategories(t *testing.T) {
	mock := &catalogServiceMock{
		menu: catalog.Menu{
			Hot:  []domain.CatalogItem{{ID: 1, Title: "Latte"}},
			Iced: []domain.CatalogItem{{ID: 2, Title: "Iced Mocha"}},
		},
	}
	handler := NewCatalogHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.GetMenu(recorder, httptest.NewRequest("GET", "/catalog", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response catalog.Menu
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Hot) != 1 || len(response.Iced) != 1 {
		t.Errorf("Expected one item per category, got hot=%d iced=%d", len(response.Hot), len(response.Iced))
	}
}

func TestGetMenu_SingleCategory(t *testing.T) {
	mock := &catalogServiceMock{
		items: []domain.CatalogItem{
			{ID: 1, Title: "Latte"},
			{ID: 2, Title: "Americano"},
		},
	}
	handler := NewCatalogHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.GetMenu(recorder, httptest.NewRequest("GET", "/catalog?type=hot", nil))

	if recorder.Code != http.StatusOK {
		t.Errorf("Expected status code %d, got %d", http.StatusOK, recorder.Code)
	}

	var response CategoryResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Items) != 2 {
		t.Errorf("Expected 2 items, got %d", len(response.Items))
	}
}

func TestGetMenu_QueryFiltersTitles(t *testing.T) {
	mock := &catalogServiceMock{
		items: []domain.CatalogItem{
			{ID: 1, Title: "Latte"},
			{ID: 2, Title: "Americano"},
		},
	}
	handler := NewCatalogHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.GetMenu(recorder, httptest.NewRequest("GET", "/catalog?type=hot&q=latte", nil))

	var response CategoryResponseDTO
	if err := json.NewDecoder(recorder.Body).Decode(&response); err != nil {
		t.Fatalf("Failed to decode response: %v", err)
	}
	if len(response.Items) != 1 || response.Items[0].Title != "Latte" {
		t.Errorf("Expected only Latte, got %+v", response.Items)
	}
}

func TestGetMenu_InvalidType(t *testing.T) {
	handler := NewCatalogHandler(&catalogServiceMock{}, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.GetMenu(recorder, httptest.NewRequest("GET", "/catalog?type=lukewarm", nil))

	if recorder.Code != http.StatusBadRequest {
		t.Errorf("Expected status code %d, got %d", http.StatusBadRequest, recorder.Code)
	}

	var response ErrorResponse
	json.NewDecoder(recorder.Body).Decode(&response)
	if response.Code != "invalid_type" {
		t.Errorf("Expected error code 'invalid_type', got '%s'", response.Code)
	}
}

func TestGetMenu_CategoryFetchFailure(t *testing.T) {
	mock := &catalogServiceMock{categoryErr: fmt.Errorf("upstream down")}
	handler := NewCatalogHandler(mock, zap.NewNop())

	recorder := httptest.NewRecorder()
	handler.GetMenu(recorder, httptest.NewRequest("GET", "/catalog?type=iced", nil))

	if recorder.Code != http.StatusBadGateway {
		t.Errorf("Expected status code %d, got %d", http.StatusBadGateway, recorder.Code)
	}
}
