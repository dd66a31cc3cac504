package bootstrap

import (
	"log/slog"

	"github.com/osse101/Cultivation_Go/internal/event"
	"github.com/osse101/Cultivation_Go/internal/metrics"
)

// RegisterEventHandlers subscribes the metrics collector to cultivation events
func RegisterEventHandlers(bus event.Bus) {
	metrics.NewEventMetricsCollector().Register(bus)
	slog.Info(LogMsgMetricsCollectorRegistered)
}
