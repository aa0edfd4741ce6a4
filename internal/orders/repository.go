package orders

import (
	"context"
	"errors"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/google/uuid"
)

var ErrOrderNotFound = errors.New("order not found")

type Credentials struct {
	Host              string
	Port              int
	User              string
	Password          string
	DBName            string
	MigrationsDirPath string
}

// OrderRepository is append-only by design: orders are immutable once
// written, so there is no update or delete.
type OrderRepository interface {
	Insert(ctx context.Context, order *domain.Order) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Order, error)
	List(ctx context.Context) ([]*domain.Order, error)
	RunMigrations(*Credentials) error
	Close() error
}
