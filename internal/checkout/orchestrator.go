// Package checkout turns the current cart into an order: write the order,
// then clear the consumed cart lines as one batch.
package checkout

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrEmptyCart         = errors.New("cart is empty, nothing to checkout")
	ErrIllegalTransition = errors.New("illegal transition of checkout status")
)

// CartGateway is the slice of the cart store checkout needs.
// Consumers define this interface, not the cart package.
type CartGateway interface {
	Snapshot(ctx context.Context) ([]domain.CartLine, error)
	Total(lines []domain.CartLine) float64
	Clear(ctx context.Context, ids []string) error
}

type OrderRecorder interface {
	Record(ctx context.Context, order *domain.Order) error
}

// Result reports how far a checkout got. StatusOrderWritten together with a
// non-nil error means the order exists but the cart was not cleared; callers
// must surface that, not hide it.
type Result struct {
	OrderID uuid.UUID `json:"orderId"`
	Status  Status    `json:"status"`
}

type Orchestrator struct {
	cart      CartGateway
	orders    OrderRecorder
	publisher EventPublisher
	logger    *zap.Logger
	now       func() time.Time
}

func NewOrchestrator(cart CartGateway, orders OrderRecorder, publisher EventPublisher, logger *zap.Logger) *Orchestrator {
	return &Orchestrator{
		cart:      cart,
		orders:    orders,
		publisher: publisher,
		logger:    logger,
		now:       time.Now,
	}
}

// PlaceOrder snapshots the cart, writes one immutable order holding a copy
// of every line, then batch-deletes the consumed lines. The order write
// always comes first: if it fails nothing is deleted. If the clear fails
// after the order landed, the order id and StatusOrderWritten are returned
// alongside the error.
func (o *Orchestrator) PlaceOrder(ctx context.Context) (Result, error) {
	lines, err := o.cart.Snapshot(ctx)
	if err != nil {
		return Result{Status: StatusFailed}, fmt.Errorf("read cart for checkout: %w", err)
	}
	if len(lines) == 0 {
		return Result{Status: StatusFailed}, ErrEmptyCart
	}

	status := StatusPending

	// The order owns its own copy of the lines; cart mutations after this
	// point cannot reach it.
	items := make([]domain.CartLine, len(lines))
	copy(items, lines)

	order := &domain.Order{
		ID:         uuid.New(),
		Items:      items,
		TotalPrice: o.cart.Total(lines),
		CreatedAt:  o.now().UTC(),
	}

	if err := o.orders.Record(ctx, order); err != nil {
		status = StatusFailed
		o.logger.Error("order write failed, cart preserved",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
		return Result{Status: status}, fmt.Errorf("write order: %w", err)
	}

	status, err = advance(status, StatusOrderWritten)
	if err != nil {
		return Result{OrderID: order.ID, Status: status}, err
	}

	ids := make([]string, len(lines))
	for i, line := range lines {
		ids[i] = line.ID
	}
	if err := o.cart.Clear(ctx, ids); err != nil {
		o.logger.Error("cart clear failed after order write",
			zap.String("order_id", order.ID.String()),
			zap.String("status", status.String()),
			zap.Error(err))
		return Result{OrderID: order.ID, Status: status}, fmt.Errorf("clear cart after order write: %w", err)
	}

	status, err = advance(status, StatusCartCleared)
	if err != nil {
		return Result{OrderID: order.ID, Status: status}, err
	}

	o.publishPlaced(ctx, order)

	return Result{OrderID: order.ID, Status: status}, nil
}

func advance(from, to Status) (Status, error) {
	if !CanTransitionTo(from, to) {
		return from, fmt.Errorf("%w: %s -> %s", ErrIllegalTransition, from, to)
	}
	return to, nil
}

// publishPlaced is best effort; a dead broker never fails a checkout.
func (o *Orchestrator) publishPlaced(ctx context.Context, order *domain.Order) {
	if o.publisher == nil {
		return
	}
	event := OrderPlaced{
		OrderID:    order.ID,
		ItemCount:  len(order.Items),
		TotalPrice: order.TotalPrice,
		PlacedAt:   order.CreatedAt,
	}
	if err := o.publisher.Publish(ctx, event); err != nil {
		o.logger.Warn("order-placed event publish failed",
			zap.String("order_id", order.ID.String()),
			zap.Error(err))
	}
}
