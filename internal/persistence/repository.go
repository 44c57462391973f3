package persistence

import (
	"context"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

// Repository stores whole snapshots by save id. Saves are full replaces.
type Repository interface {
	Load(ctx context.Context, saveID string) (*domain.State, error)
	Save(ctx context.Context, saveID string, st *domain.State) error
	Delete(ctx context.Context, saveID string) error
}
