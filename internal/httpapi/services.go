package httpapi

import (
	"context"

	"github.com/BeratAydogan/coffeehouse/internal/cart"
	"github.com/BeratAydogan/coffeehouse/internal/catalog"
	"github.com/BeratAydogan/coffeehouse/internal/checkout"
	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/google/uuid"
)

// The handlers define the service surface they consume so tests can swap in
// mocks without touching the real stores.

type CartService interface {
	AddLine(ctx context.Context, req cart.NewLine) (string, error)
	SetQuantity(ctx context.Context, id string, quantity int) error
	Snapshot(ctx context.Context) ([]domain.CartLine, error)
	Total(lines []domain.CartLine) float64
	Subscribe(ctx context.Context, fn func([]domain.CartLine)) (func(), error)
}

type CatalogService interface {
	Menu(ctx context.Context) catalog.Menu
	Category(ctx context.Context, category catalog.Category) ([]domain.CatalogItem, error)
}

type CheckoutService interface {
	PlaceOrder(ctx context.Context) (checkout.Result, error)
}

type OrderService interface {
	List(ctx context.Context) ([]*domain.Order, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	Subscribe(ctx context.Context, fn func([]*domain.Order)) (func(), error)
}
