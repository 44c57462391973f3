package persistence

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/klauspost/compress/zstd"

	"github.com/hypez33/grow-lab-zen-sub000/internal/domain"
)

var (
	zstdOnce sync.Once
	zstdEnc  *zstd.Encoder
	zstdDec  *zstd.Decoder
	zstdErr  error
)

func codecs() (*zstd.Encoder, *zstd.Decoder, error) {
	zstdOnce.Do(func() {
		zstdEnc, zstdErr = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
		if zstdErr != nil {
			return
		}
		zstdDec, zstdErr = zstd.NewReader(nil)
	})
	return zstdEnc, zstdDec, zstdErr
}

// Export renders the full state as a portable text string
// (JSON, zstd-compressed, base64).
func (c *Codec) Export(st *domain.State) (string, error) {
	data, err := c.Encode(st)
	if err != nil {
		return "", err
	}
	enc, _, err := codecs()
	if err != nil {
		return "", fmt.Errorf(ErrMsgEncodeSave, err)
	}
	return base64.StdEncoding.EncodeToString(enc.EncodeAll(data, nil)), nil
}

// Import restores a state from an Export string. Anything that does not
// decode to a save object is rejected with ErrCorruptSave; the caller's
// current state is never touched.
func (c *Codec) Import(ctx context.Context, text string) (*domain.State, error) {
	packed, err := base64.StdEncoding.DecodeString(text)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgExportEncoding, domain.ErrCorruptSave, err)
	}
	_, dec, err := codecs()
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecompress, domain.ErrCorruptSave, err)
	}
	data, err := dec.DecodeAll(packed, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecompress, domain.ErrCorruptSave, err)
	}

	var raw map[string]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: "+ErrMsgDecodeSave, domain.ErrCorruptSave, err)
	}
	if raw == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrCorruptSave, ErrMsgNotAnObject)
	}
	if !hasKnownField(raw) {
		return nil, fmt.Errorf("%w: %s", domain.ErrCorruptSave, ErrMsgNoKnownFields)
	}
	return c.FromRaw(ctx, raw)
}

func hasKnownField(raw map[string]any) bool {
	targets := fieldTargets(&domain.State{})
	for k := range raw {
		if _, ok := targets[k]; ok {
			return true
		}
	}
	return false
}
