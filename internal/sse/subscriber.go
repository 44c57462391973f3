package sse

import (
	"context"

	"github.com/hypez33/grow-lab-zen-sub000/internal/event"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// StreamedTypes are the bus events forwarded to clients. Tick summaries are
// left out; clients poll the state instead.
var StreamedTypes = []event.Type{
	event.HarvestCompleted,
	event.SaleCompleted,
	event.DealerActivity,
	event.LevelUp,
	event.OfflineResumed,
	event.SaveWritten,
}

// Subscriber bridges the internal event bus to the SSE hub
type Subscriber struct {
	hub *Hub
	bus event.Bus
}

// NewSubscriber creates a new SSE subscriber
func NewSubscriber(hub *Hub, bus event.Bus) *Subscriber {
	return &Subscriber{
		hub: hub,
		bus: bus,
	}
}

// Subscribe registers the forwarding handler for every streamed type
func (s *Subscriber) Subscribe(ctx context.Context) {
	names := make([]string, 0, len(StreamedTypes))
	for _, t := range StreamedTypes {
		s.bus.Subscribe(t, s.forward)
		names = append(names, string(t))
	}
	logger.FromContext(ctx).Info(LogMsgSubscribed, "types", names)
}

// forward never fails the publisher: a full hub only drops the event
func (s *Subscriber) forward(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	if !s.hub.Broadcast(string(evt.Type), evt.Payload) {
		log.Warn(LogMsgEventDropped, "event_type", evt.Type)
		return nil
	}
	log.Debug(LogMsgEventBroadcast, "event_type", evt.Type)
	return nil
}
