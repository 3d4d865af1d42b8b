package slot

import (
	"context"
	"sync"

	"storefront/internal/domain"
)

type memoryRepo struct {
	mu    sync.RWMutex
	slots map[string]string
}

// NewMemory returns an in-process slot repository. State does not survive
// a restart; hydration then starts from empty, which is the documented
// degradation mode.
func NewMemory() Repository {
	return &memoryRepo{slots: make(map[string]string)}
}

func (r *memoryRepo) Get(_ context.Context, key string) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	value, ok := r.slots[key]
	if !ok {
		return "", domain.ErrNotFound
	}
	return value, nil
}

func (r *memoryRepo) Set(_ context.Context, key, value string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.slots[key] = value
	return nil
}

func (r *memoryRepo) Delete(_ context.Context, key string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.slots, key)
	return nil
}
