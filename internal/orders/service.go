// Package orders keeps the immutable order history and mirrors the cart's
// subscription contract for it.
package orders

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/BeratAydogan/coffeehouse/internal/watch"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	repo   OrderRepository
	hub    *watch.Hub[[]*domain.Order]
	logger *zap.Logger
}

func NewService(repo OrderRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		hub:    watch.NewHub[[]*domain.Order](),
		logger: logger,
	}
}

// Record persists a new order. Orders never change after this.
func (s *Service) Record(ctx context.Context, order *domain.Order) error {
	if err := s.repo.Insert(ctx, order); err != nil {
		return fmt.Errorf("record order: %w", err)
	}
	s.broadcast()
	return nil
}

// List returns the full history, newest first.
func (s *Service) List(ctx context.Context) ([]*domain.Order, error) {
	orders, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return orders, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.Order, error) {
	order, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrOrderNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// Subscribe mirrors the cart store contract: the current history arrives
// immediately, then again after every new order.
func (s *Service) Subscribe(ctx context.Context, fn func([]*domain.Order)) (func(), error) {
	orders, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	fn(orders)
	return s.hub.Subscribe(fn), nil
}

func (s *Service) broadcast() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	orders, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("order snapshot broadcast failed", zap.Error(err))
		return
	}
	s.hub.Publish(orders)
}
