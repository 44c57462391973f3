// Package postgres stores save snapshots in PostgreSQL
package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/hypez33/grow-lab-zen-sub000/internal/database/generated"
	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
	"github.com/hypez33/grow-lab-zen-sub000/internal/persistence"
)

// SaveRepository implements persistence.Repository on the saves table.
// Payloads are the codec's JSON documents, so loads run the migration chain.
type SaveRepository struct {
	q     *generated.Queries
	codec *persistence.Codec
}

var _ persistence.Repository = (*SaveRepository)(nil)

// NewSaveRepository creates a new SaveRepository
func NewSaveRepository(db generated.DBTX, codec *persistence.Codec) *SaveRepository {
	return &SaveRepository{q: generated.New(db), codec: codec}
}

// Load reads and decodes a save
func (r *SaveRepository) Load(ctx context.Context, saveID string) (*domain.State, error) {
	payload, err := r.q.GetSavePayload(ctx, saveID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", domain.ErrSaveNotFound, saveID)
		}
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadSave, err)
	}
	return r.codec.Decode(ctx, payload)
}

// Save upserts a save
func (r *SaveRepository) Save(ctx context.Context, saveID string, st *domain.State) error {
	payload, err := r.codec.Encode(st)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeSave, err)
	}
	err = r.q.UpsertSave(ctx, generated.UpsertSaveParams{
		SaveID:  saveID,
		Version: int32(persistence.CurrentVersion),
		Payload: payload,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToWriteSave, err)
	}
	return nil
}

// Delete removes a save. Deleting a missing save is not an error.
func (r *SaveRepository) Delete(ctx context.Context, saveID string) error {
	if err := r.q.DeleteSave(ctx, saveID); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToDeleteSave, err)
	}
	return nil
}
