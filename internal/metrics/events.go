package metrics

import (
	"context"
	"strconv"

	"github.com/osse101/Cultivation_Go/internal/event"
	"github.com/osse101/Cultivation_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all cultivation events
func (e *EventMetricsCollector) Register(bus event.Bus) {
	for _, t := range []event.Type{
		event.SessionStarted,
		event.SessionEnded,
		event.RealmAdvanced,
		event.DailyResetComplete,
	} {
		bus.Subscribe(t, e.HandleEvent)
	}
}

// HandleEvent updates metrics for one event
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	switch p := evt.Payload.(type) {
	case event.SessionStartedPayloadV1:
		SessionsStarted.Inc()
	case event.SessionEndedPayloadV1:
		SessionsEnded.WithLabelValues(strconv.FormatBool(p.Truncated)).Inc()
		SessionDuration.Observe(float64(p.DurationMinutes))
		ExpGranted.Add(float64(p.ExpGained))
	case event.RealmAdvancedPayloadV1:
		for r := p.FromRealm + 1; r <= p.ToRealm; r++ {
			RealmAdvancements.WithLabelValues(strconv.Itoa(r)).Inc()
		}
	case event.DailyResetCompletePayloadV1:
		DailyResets.Inc()
	default:
		log.Debug(LogMsgUnexpectedPayload, "type", evt.Type)
		return nil
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
