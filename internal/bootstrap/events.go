package bootstrap

import (
	"context"

	"github.com/hypez33/grow-lab-zen-sub000/internal/event"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
	"github.com/hypez33/grow-lab-zen-sub000/internal/metrics"
	"github.com/hypez33/grow-lab-zen-sub000/internal/sse"
)

// InitializeEventSystem creates the in-process event bus, subscribes the
// prometheus collector to every game event and starts the SSE hub that
// forwards player-facing events to streaming clients.
func InitializeEventSystem(ctx context.Context) (event.Bus, *sse.Hub) {
	bus := event.NewMemoryBus()
	metrics.NewEventMetricsCollector().Register(bus)

	hub := sse.NewHub()
	hub.Start()
	sse.NewSubscriber(hub, bus).Subscribe(ctx)

	logger.FromContext(ctx).Info(LogMsgEventSystemReady)
	return bus, hub
}
