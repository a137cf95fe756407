package memory

import (
	"context"
	"sync"

	"github.com/Keegs21/Bunkered/internal/domain/jobdispatch"
)

type JobDispatchRepository struct {
	mu    sync.RWMutex
	items map[string]jobdispatch.Event
	order []string
}

func NewJobDispatchRepository() *JobDispatchRepository {
	return &JobDispatchRepository{
		items: make(map[string]jobdispatch.Event),
	}
}

func (r *JobDispatchRepository) UpsertEvent(_ context.Context, event jobdispatch.Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.items[event.DispatchID]; !exists {
		r.order = append(r.order, event.DispatchID)
	}
	r.items[event.DispatchID] = event
	return nil
}

// ListEvents returns every recorded dispatch in insertion order. Test and
// debug helper.
func (r *JobDispatchRepository) ListEvents(_ context.Context) ([]jobdispatch.Event, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]jobdispatch.Event, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.items[id])
	}
	return out, nil
}
