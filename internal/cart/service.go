package cart

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"github.com/BeratAydogan/coffeehouse/internal/pricing"
	"github.com/BeratAydogan/coffeehouse/internal/watch"
	"go.uber.org/zap"
)

var (
	ErrMissingTitle = errors.New("cart line title is required")
	ErrUnknownSize  = errors.New("unknown size label")
	ErrUnknownAroma = errors.New("unknown aroma")
)

// NewLine carries the add-to-cart selection. The store assigns id and
// creation timestamp; price is computed here, never trusted from the caller.
type NewLine struct {
	CoffeeID          string
	Title             string
	Size              string
	BasePrice         float64
	ExtraShot         bool
	ExtraAromaEnabled bool
	SelectedAroma     string
	Image             string
}

// Service owns cart line persistence and pushes a full snapshot to
// subscribers after every successful mutation.
type Service struct {
	repo   LineRepository
	hub    *watch.Hub[[]domain.CartLine]
	logger *zap.Logger
}

func NewService(repo LineRepository, logger *zap.Logger) *Service {
	return &Service{
		repo:   repo,
		hub:    watch.NewHub[[]domain.CartLine](),
		logger: logger,
	}
}

// AddLine validates the selection, prices one unit and persists the line.
// Write failures surface to the caller; nothing is updated optimistically.
func (s *Service) AddLine(ctx context.Context, req NewLine) (string, error) {
	if req.Title == "" {
		return "", ErrMissingTitle
	}

	size, ok := pricing.SizeByLabel(req.Size)
	if !ok {
		return "", ErrUnknownSize
	}

	// Aroma is meaningful only while the extra is enabled.
	if !req.ExtraAromaEnabled {
		req.SelectedAroma = ""
	}
	if req.SelectedAroma != "" && !pricing.ValidAroma(req.SelectedAroma) {
		return "", ErrUnknownAroma
	}

	base := req.BasePrice
	if base == 0 {
		base = pricing.DefaultBasePrice
	}

	// An enabled aroma with nothing picked yet is not charged.
	aromaCharged := req.ExtraAromaEnabled && req.SelectedAroma != ""
	total := pricing.ComputeTotal(base, size.PriceDiff, req.ExtraShot, aromaCharged, pricing.ExtraPrice)

	id, err := s.repo.Insert(ctx, domain.CartLine{
		CoffeeID:          req.CoffeeID,
		Title:             req.Title,
		Size:              req.Size,
		BasePrice:         base,
		ExtraShot:         req.ExtraShot,
		ExtraAromaEnabled: req.ExtraAromaEnabled,
		SelectedAroma:     req.SelectedAroma,
		Quantity:          1,
		TotalPrice:        total,
		Image:             req.Image,
	})
	if err != nil {
		s.logger.Error("add cart line failed", zap.String("title", req.Title), zap.Error(err))
		return "", fmt.Errorf("add cart line: %w", err)
	}

	s.broadcast()
	return id, nil
}

// SetQuantity persists a quantity change. A target of zero or below deletes
// the line; no quantity-0 state is ever stored. The new total is rescaled
// from the line's current unit price so extras chosen at add time stick.
func (s *Service) SetQuantity(ctx context.Context, id string, quantity int) error {
	if quantity <= 0 {
		err := s.repo.Delete(ctx, id)
		if err != nil && !errors.Is(err, ErrLineNotFound) {
			// Non-fatal: subscribers resync from whatever the store holds.
			s.logger.Warn("delete cart line failed", zap.String("line_id", id), zap.Error(err))
			return fmt.Errorf("delete cart line: %w", err)
		}
		s.broadcast()
		return nil
	}

	line, err := s.repo.Get(ctx, id)
	if err != nil {
		if errors.Is(err, ErrLineNotFound) {
			return ErrLineNotFound
		}
		s.logger.Warn("load cart line failed", zap.String("line_id", id), zap.Error(err))
		return fmt.Errorf("load cart line: %w", err)
	}

	total := pricing.Rescale(line.TotalPrice, line.BasePrice, line.Quantity, quantity)
	if err := s.repo.UpdateQuantity(ctx, id, quantity, total); err != nil {
		if errors.Is(err, ErrLineNotFound) {
			return ErrLineNotFound
		}
		s.logger.Warn("update cart quantity failed", zap.String("line_id", id), zap.Error(err))
		return fmt.Errorf("update cart quantity: %w", err)
	}

	s.broadcast()
	return nil
}

// Snapshot reads the full cart, newest line first.
func (s *Service) Snapshot(ctx context.Context) ([]domain.CartLine, error) {
	lines, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("read cart snapshot: %w", err)
	}
	return lines, nil
}

// Total sums line totals; missing totals count as zero.
func (s *Service) Total(lines []domain.CartLine) float64 {
	return pricing.CartTotal(lines)
}

// Clear removes the given lines as one batched delete.
func (s *Service) Clear(ctx context.Context, ids []string) error {
	if err := s.repo.DeleteMany(ctx, ids); err != nil {
		return fmt.Errorf("clear cart: %w", err)
	}
	s.broadcast()
	return nil
}

// Subscribe registers fn for cart snapshots and delivers the current one
// immediately; the initial load counts as a change. The returned disposer
// must be called when the observer goes away.
func (s *Service) Subscribe(ctx context.Context, fn func([]domain.CartLine)) (func(), error) {
	lines, err := s.Snapshot(ctx)
	if err != nil {
		return nil, err
	}
	fn(lines)
	return s.hub.Subscribe(fn), nil
}

func (s *Service) broadcast() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	lines, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Warn("cart snapshot broadcast failed", zap.Error(err))
		return
	}
	s.hub.Publish(lines)
}
