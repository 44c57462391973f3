package persistence

import (
	"context"
	"fmt"
	"sync"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// MemoryRepository keeps encoded saves in process. Payloads go through the
// codec so loads exercise the same migration path as durable storage.
type MemoryRepository struct {
	mu    sync.RWMutex
	codec *Codec
	saves map[string][]byte
}

// NewMemoryRepository creates an empty in-memory repository
func NewMemoryRepository(codec *Codec) *MemoryRepository {
	return &MemoryRepository{codec: codec, saves: make(map[string][]byte)}
}

// Load decodes the stored payload
func (r *MemoryRepository) Load(ctx context.Context, saveID string) (*domain.State, error) {
	r.mu.RLock()
	data, ok := r.saves[saveID]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, saveID)
	}
	return r.codec.Decode(ctx, data)
}

// Save encodes and stores the state
func (r *MemoryRepository) Save(_ context.Context, saveID string, st *domain.State) error {
	data, err := r.codec.Encode(st)
	if err != nil {
		return err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[saveID] = data
	return nil
}

// Put stores a raw payload as-is, e.g. a save written by an older build
func (r *MemoryRepository) Put(saveID string, data []byte) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.saves[saveID] = append([]byte(nil), data...)
}

// Delete removes a save
func (r *MemoryRepository) Delete(_ context.Context, saveID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.saves, saveID)
	return nil
}
