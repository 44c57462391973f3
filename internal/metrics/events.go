package metrics

import (
	"context"

	"github.com/hypez33/grow-lab-zen-sub000/internal/event"
	"github.com/hypez33/grow-lab-zen-sub000/internal/logger"
)

// EventMetricsCollector subscribes to game events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to every game event type
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.HarvestCompleted,
		event.SaleCompleted,
		event.DealerActivity,
		event.LevelUp,
		event.TickCompleted,
		event.OfflineResumed,
		event.SaveWritten,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	var err error
	switch evt.Type {
	case event.HarvestCompleted:
		var p event.HarvestCompletedPayloadV1
		if p, err = event.DecodePayload[event.HarvestCompletedPayloadV1](evt.Payload); err == nil {
			HarvestsTotal.WithLabelValues(p.Rarity).Inc()
			GramsHarvested.Add(float64(p.Grams))
		}

	case event.SaleCompleted:
		var p event.SaleCompletedPayloadV1
		if p, err = event.DecodePayload[event.SaleCompletedPayloadV1](evt.Payload); err == nil {
			SalesTotal.WithLabelValues(p.ChannelID, p.Source).Inc()
			GramsSold.WithLabelValues(p.ChannelID).Add(float64(p.Grams))
			RevenueTotal.WithLabelValues(p.Source).Add(float64(p.Revenue))
		}

	case event.DealerActivity:
		var p event.DealerActivityPayloadV1
		if p, err = event.DecodePayload[event.DealerActivityPayloadV1](evt.Payload); err == nil {
			DealerEventsTotal.WithLabelValues(p.Kind).Inc()
			if p.Revenue > 0 {
				RevenueTotal.WithLabelValues(event.SourceDealer).Add(float64(p.Revenue))
			}
		}

	case event.LevelUp:
		var p event.LevelUpPayloadV1
		if p, err = event.DecodePayload[event.LevelUpPayloadV1](evt.Payload); err == nil {
			LevelUpsTotal.Add(float64(p.LevelsGained))
		}

	case event.TickCompleted:
		var p event.TickCompletedPayloadV1
		if p, err = event.DecodePayload[event.TickCompletedPayloadV1](evt.Payload); err == nil {
			TicksTotal.Inc()
			TickDuration.Observe(p.DurationSeconds)
		}

	case event.OfflineResumed:
		var p event.OfflineResumedPayloadV1
		if p, err = event.DecodePayload[event.OfflineResumedPayloadV1](evt.Payload); err == nil {
			OfflineCoins.Add(float64(p.Coins))
		}

	case event.SaveWritten:
		var p event.SaveWrittenPayloadV1
		if p, err = event.DecodePayload[event.SaveWrittenPayloadV1](evt.Payload); err == nil {
			SavesTotal.WithLabelValues(p.Trigger).Inc()
		}
	}

	if err != nil {
		EventHandlerErrors.WithLabelValues(string(evt.Type)).Inc()
		log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
		return nil
	}
	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
