package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/BeratAydogan/coffeehouse/internal/domain"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// Menu is the combined catalog. Partial marks that at least one category
// fetch failed and came back empty, so clients can tell an empty category
// from a failed one.
type Menu struct {
	Hot     []domain.CatalogItem `json:"hot"`
	Iced    []domain.CatalogItem `json:"iced"`
	Partial bool                 `json:"partial"`
}

type fetcher interface {
	FetchCategory(ctx context.Context, category Category) ([]domain.CatalogItem, error)
}

type Service struct {
	client fetcher
	cache  ListCache
	sfg    singleflight.Group // Prevents cache stampede
	logger *zap.Logger
}

func NewService(client fetcher, cache ListCache, logger *zap.Logger) *Service {
	return &Service{
		client: client,
		cache:  cache,
		logger: logger,
	}
}

// Menu fetches both categories concurrently and returns once both settled.
// A failed category degrades to an empty list; the error is logged and the
// result flagged partial rather than failing the whole menu.
func (s *Service) Menu(ctx context.Context) Menu {
	var (
		wg   sync.WaitGroup
		mu   sync.Mutex
		menu Menu
	)

	fetch := func(category Category, dst *[]domain.CatalogItem) {
		defer wg.Done()
		items, err := s.Category(ctx, category)
		mu.Lock()
		defer mu.Unlock()
		if err != nil {
			s.logger.Warn("catalog category fetch failed",
				zap.String("category", string(category)),
				zap.Error(err))
			*dst = []domain.CatalogItem{}
			menu.Partial = true
			return
		}
		*dst = items
	}

	wg.Add(2)
	go fetch(CategoryHot, &menu.Hot)
	go fetch(CategoryIced, &menu.Iced)
	wg.Wait()

	return menu
}

// Category returns one list, from cache when possible.
func (s *Service) Category(ctx context.Context, category Category) ([]domain.CatalogItem, error) {
	v, err, _ := s.sfg.Do(string(category), func() (interface{}, error) {
		items, err := s.cache.Get(ctx, category)
		if err == nil {
			return items, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			s.logger.Warn("catalog cache get failed", zap.Error(err))
		}

		items, err = s.client.FetchCategory(ctx, category)
		if err != nil {
			return nil, err
		}

		go func() {
			setCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			if err := s.cache.Set(setCtx, category, items); err != nil {
				s.logger.Warn("catalog cache set failed", zap.Error(err))
			}
		}()

		return items, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.CatalogItem), nil
}

// Filter keeps items whose title contains the query, case-insensitively.
// An empty query keeps everything.
func Filter(items []domain.CatalogItem, query string) []domain.CatalogItem {
	if query == "" {
		return items
	}
	query = strings.ToLower(query)

	out := make([]domain.CatalogItem, 0, len(items))
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Title), query) {
			out = append(out, item)
		}
	}
	return out
}
