package event

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryBus_PublishSubscribe(t *testing.T) {
	bus := NewMemoryBus()
	var got SaleCompletedPayloadV1

	bus.Subscribe(SaleCompleted, func(ctx context.Context, e Event) error {
		p, err := DecodePayload[SaleCompletedPayloadV1](e.Payload)
		got = p
		return err
	})

	err := bus.Publish(context.Background(), New(SaleCompleted, SaleCompletedPayloadV1{ChannelID: "street", Grams: 3, Revenue: 12}))
	require.NoError(t, err)
	assert.Equal(t, "street", got.ChannelID)
	assert.Equal(t, 12, got.Revenue)
}

func TestMemoryBus_PublishMultipleHandlers(t *testing.T) {
	bus := NewMemoryBus()
	count := 0
	handler := func(ctx context.Context, e Event) error {
		count++
		return nil
	}

	bus.Subscribe(TickCompleted, handler)
	bus.Subscribe(TickCompleted, handler)
	bus.Subscribe(LevelUp, handler)

	require.NoError(t, bus.Publish(context.Background(), New(TickCompleted, nil)))
	assert.Equal(t, 2, count)
}

func TestMemoryBus_PublishError(t *testing.T) {
	bus := NewMemoryBus()
	bus.Subscribe(LevelUp, func(ctx context.Context, e Event) error {
		return errors.New("handler error")
	})

	assert.Error(t, bus.Publish(context.Background(), New(LevelUp, LevelUpPayloadV1{NewLevel: 2})))
	assert.NoError(t, bus.Publish(context.Background(), New(SaveWritten, nil)), "no subscribers is not an error")
}

func TestDecodePayload_JSONFallback(t *testing.T) {
	raw := map[string]any{"new_level": 4, "levels_gained": 2}

	p, err := DecodePayload[LevelUpPayloadV1](raw)
	require.NoError(t, err)
	assert.Equal(t, LevelUpPayloadV1{NewLevel: 4, LevelsGained: 2}, p)
}
