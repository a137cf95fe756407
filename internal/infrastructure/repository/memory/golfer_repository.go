package memory

import (
	"context"
	"sync"

	"github.com/Keegs21/Bunkered/internal/domain/golfer"
)

type GolferRepository struct {
	mu    sync.RWMutex
	items map[string]golfer.Golfer
	order []string
}

func NewGolferRepository(golfers []golfer.Golfer) *GolferRepository {
	items := make(map[string]golfer.Golfer, len(golfers))
	order := make([]string, 0, len(golfers))
	for _, g := range golfers {
		items[g.ID] = g
		order = append(order, g.ID)
	}

	return &GolferRepository{
		items: items,
		order: order,
	}
}

func (r *GolferRepository) List(_ context.Context) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]golfer.Golfer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}

func (r *GolferRepository) GetByIDs(_ context.Context, golferIDs []string) ([]golfer.Golfer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	seen := make(map[string]struct{}, len(golferIDs))
	out := make([]golfer.Golfer, 0, len(golferIDs))
	for _, id := range golferIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if item, ok := r.items[id]; ok {
			out = append(out, item)
		}
	}
	return out, nil
}
