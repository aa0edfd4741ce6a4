package cart

import (
	"context"
	"errors"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
)

var ErrLineNotFound = errors.New("cart line not found")

// LineRepository defines the persistence operations the cart service needs.
// Consumers define this interface, not the MongoDB implementation.
type LineRepository interface {
	Insert(ctx context.Context, line domain.CartLine) (string, error)
	Get(ctx context.Context, id string) (*domain.CartLine, error)
	List(ctx context.Context) ([]domain.CartLine, error)
	UpdateQuantity(ctx context.Context, id string, quantity int, totalPrice float64) error
	Delete(ctx context.Context, id string) error
	DeleteMany(ctx context.Context, ids []string) error
	CreateIndexes(ctx context.Context) error
}
