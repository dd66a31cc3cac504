package event

import (
	"context"
	"sync"
	"time"

	"github.com/osse101/Cultivation_Go/internal/logger"
)

// ResilientConfig configures the ResilientPublisher
type ResilientConfig struct {
	MaxRetries int
	RetryDelay time.Duration
}

// ResilientPublisher wraps a Bus and retries failed deliveries in the background.
// Callers never see a publish error.
type ResilientPublisher struct {
	inner    Bus
	config   ResilientConfig
	wg       sync.WaitGroup
	shutdown chan struct{}
	once     sync.Once
}

// NewResilientPublisher creates a new ResilientPublisher
func NewResilientPublisher(inner Bus, config ResilientConfig) *ResilientPublisher {
	if config.MaxRetries <= 0 {
		config.MaxRetries = RetryMaxAttempts
	}
	if config.RetryDelay <= 0 {
		config.RetryDelay = RetryInitialDelay
	}
	return &ResilientPublisher{
		inner:    inner,
		config:   config,
		shutdown: make(chan struct{}),
	}
}

// PublishWithRetry delivers the event, retrying asynchronously on failure
func (p *ResilientPublisher) PublishWithRetry(ctx context.Context, evt Event) {
	err := p.inner.Publish(ctx, evt)
	if err == nil {
		return
	}

	logger.FromContext(ctx).Warn(LogMsgEventPublishFailed,
		"event_type", evt.Type,
		"error", err,
		"retries", p.config.MaxRetries)

	p.wg.Add(1)
	go p.retryLoop(evt)
}

// Publish satisfies Bus; delivery failures are absorbed
func (p *ResilientPublisher) Publish(ctx context.Context, evt Event) error {
	p.PublishWithRetry(ctx, evt)
	return nil
}

// Subscribe delegates to the inner bus
func (p *ResilientPublisher) Subscribe(eventType Type, handler Handler) {
	p.inner.Subscribe(eventType, handler)
}

func (p *ResilientPublisher) retryLoop(evt Event) {
	defer p.wg.Done()
	ctx := context.Background()

	for attempt := 1; attempt <= p.config.MaxRetries; attempt++ {
		timer := time.NewTimer(CalculateRetryDelay(p.config.RetryDelay, attempt))
		select {
		case <-p.shutdown:
			timer.Stop()
			logger.FromContext(ctx).Warn(LogMsgEventDroppedShutdown, "event_type", evt.Type)
			return
		case <-timer.C:
		}

		if err := p.inner.Publish(ctx, evt); err != nil {
			logger.FromContext(ctx).Warn(LogMsgEventRetryFailed, "event_type", evt.Type, "attempt", attempt, "error", err)
			continue
		}
		logger.FromContext(ctx).Info(LogMsgEventRetrySucceeded, "event_type", evt.Type, "attempt", attempt)
		return
	}

	logger.FromContext(ctx).Error(LogMsgEventRetryExhausted, "event_type", evt.Type)
}

// Shutdown stops pending retries and waits for in-flight ones
func (p *ResilientPublisher) Shutdown(ctx context.Context) error {
	p.once.Do(func() { close(p.shutdown) })

	done := make(chan struct{})
	go func() {
		p.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
