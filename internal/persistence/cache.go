package persistence

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// CacheSchemaVersion is bumped to invalidate cached snapshots after a format change
const CacheSchemaVersion = CurrentVersion

type cachedSave struct {
	Version  int
	State    *domain.State
	CachedAt time.Time
}

// CachedRepository fronts another repository with an expiring LRU. Cached
// states are cloned on the way in and out so callers never share them.
type CachedRepository struct {
	next Repository
	lru  *expirable.LRU[string, *cachedSave]
}

// NewCachedRepository wraps next with a cache of size entries living ttl
func NewCachedRepository(next Repository, size int, ttl time.Duration) *CachedRepository {
	return &CachedRepository{
		next: next,
		lru:  expirable.NewLRU[string, *cachedSave](size, nil, ttl),
	}
}

// Load serves from cache when possible
func (r *CachedRepository) Load(ctx context.Context, saveID string) (*domain.State, error) {
	if entry, ok := r.lru.Get(saveID); ok {
		if entry.Version == CacheSchemaVersion {
			return entry.State.Clone(), nil
		}
		r.lru.Remove(saveID)
	}
	st, err := r.next.Load(ctx, saveID)
	if err != nil {
		return nil, err
	}
	r.set(saveID, st)
	return st.Clone(), nil
}

// Save writes through and refreshes the cache
func (r *CachedRepository) Save(ctx context.Context, saveID string, st *domain.State) error {
	if err := r.next.Save(ctx, saveID, st); err != nil {
		r.lru.Remove(saveID)
		return err
	}
	r.set(saveID, st)
	return nil
}

// Delete removes the save everywhere
func (r *CachedRepository) Delete(ctx context.Context, saveID string) error {
	r.lru.Remove(saveID)
	return r.next.Delete(ctx, saveID)
}

// Len reports how many saves are cached
func (r *CachedRepository) Len() int {
	return r.lru.Len()
}

func (r *CachedRepository) set(saveID string, st *domain.State) {
	r.lru.Add(saveID, &cachedSave{Version: CacheSchemaVersion, State: st.Clone(), CachedAt: time.Now()})
}
