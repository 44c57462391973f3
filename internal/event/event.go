package event

import (
	"context"
	"fmt"
	"sync"
)

// Type represents the type of an event
type Type string

// Event represents a generic event in the system
type Event struct {
	Version string `json:"version"` // Event schema version (e.g., "1.0")
	Type    Type   `json:"type"`
	Payload any    `json:"payload"`
}

// Game event types
const (
	HarvestCompleted Type = "grow.harvest.completed"
	SaleCompleted    Type = "sales.sale.completed"
	DealerActivity   Type = "dealer.activity"
	LevelUp          Type = "ledger.level_up"
	TickCompleted    Type = "game.tick.completed"
	OfflineResumed   Type = "game.offline.resumed"
	SaveWritten      Type = "persistence.save.written"
)

// Sale sources
const (
	SourcePlayer   = "player"
	SourceAutoSell = "auto_sell"
	SourceDealer   = "dealer"
)

// HarvestCompletedPayloadV1 is published for every harvested slot
type HarvestCompletedPayloadV1 struct {
	SlotIndex int    `json:"slot_index"`
	Strain    string `json:"strain"`
	Rarity    string `json:"rarity"`
	Grams     int    `json:"grams"`
	Quality   int    `json:"quality"`
	Crit      bool   `json:"crit"`
	Double    bool   `json:"double"`
	Drops     int    `json:"drops"`
	Automated bool   `json:"automated"`
}

// SaleCompletedPayloadV1 is published for player and auto-sell sales
type SaleCompletedPayloadV1 struct {
	ChannelID string `json:"channel_id"`
	Grams     int    `json:"grams"`
	Revenue   int    `json:"revenue"`
	Source    string `json:"source"`
}

// DealerActivityPayloadV1 mirrors one narrative log entry
type DealerActivityPayloadV1 struct {
	WorkerID string `json:"worker_id"`
	Kind     string `json:"kind"`
	Grams    int    `json:"grams"`
	Revenue  int    `json:"revenue"`
}

// LevelUpPayloadV1 is published when XP crosses one or more level thresholds
type LevelUpPayloadV1 struct {
	NewLevel     int `json:"new_level"`
	LevelsGained int `json:"levels_gained"`
}

// TickCompletedPayloadV1 summarizes one simulation step
type TickCompletedPayloadV1 struct {
	DeltaSeconds    float64 `json:"delta_seconds"`
	DurationSeconds float64 `json:"duration_seconds"`
	Harvested       int     `json:"harvested"`
	Planted         int     `json:"planted"`
	Collected       int     `json:"collected"`
	AutoSales       int     `json:"auto_sales"`
}

// OfflineResumedPayloadV1 reports catch-up rewards granted on resume
type OfflineResumedPayloadV1 struct {
	ElapsedSeconds int64 `json:"elapsed_seconds"`
	Capped         bool  `json:"capped"`
	Coins          int   `json:"coins"`
	Cycles         int   `json:"cycles"`
}

// SaveWrittenPayloadV1 is published after a snapshot reached the repository
type SaveWrittenPayloadV1 struct {
	SaveID  string `json:"save_id"`
	Trigger string `json:"trigger"`
}

// New wraps a payload in a versioned event
func New(t Type, payload any) Event {
	return Event{Version: EventSchemaVersion, Type: t, Payload: payload}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// Publish runs every subscriber synchronously and joins their errors
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers := b.handlers[event.Type]
	b.mu.RUnlock()

	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}
	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// NopBus drops every event
type NopBus struct{}

func (NopBus) Publish(context.Context, Event) error { return nil }

func (NopBus) Subscribe(Type, Handler) {}
