package temporal

import (
	"context"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/osse101/Cultivation_Go/internal/domain"
	"github.com/osse101/Cultivation_Go/internal/logger"
	"github.com/osse101/Cultivation_Go/internal/metrics"
)

const (
	// DefaultWeatherTimeout bounds the external weather lookup
	DefaultWeatherTimeout = 3 * time.Second
	// DefaultCity is used when no location hint is supplied
	DefaultCity = "Beijing"
)

// Config configures the temporal engine
type Config struct {
	Location       *time.Location
	WeatherTimeout time.Duration
	DefaultCity    string
}

// Engine computes TemporalContext values. The four calendar sub-models are pure;
// only the weather snapshot touches the network.
type Engine struct {
	weather     WeatherProvider
	loc         *time.Location
	timeout     time.Duration
	defaultCity string
	rnd         func() float64
}

// Option customizes an Engine
type Option func(*Engine)

// WithRandom replaces the placeholder weather random source
func WithRandom(rnd func() float64) Option {
	return func(e *Engine) {
		e.rnd = rnd
	}
}

// NewEngine creates a new temporal engine. weather may be nil.
func NewEngine(weather WeatherProvider, cfg Config, opts ...Option) *Engine {
	e := &Engine{
		weather:     weather,
		loc:         cfg.Location,
		timeout:     cfg.WeatherTimeout,
		defaultCity: cfg.DefaultCity,
		rnd:         rand.Float64,
	}
	if e.loc == nil {
		e.loc = time.UTC
	}
	if e.timeout <= 0 {
		e.timeout = DefaultWeatherTimeout
	}
	if e.defaultCity == "" {
		e.defaultCity = DefaultCity
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Location returns the time zone calendar fields are read in
func (e *Engine) Location() *time.Location {
	return e.loc
}

// Calendar computes the deterministic part of the context (no weather)
func (e *Engine) Calendar(at time.Time) (*domain.TemporalContext, error) {
	if at.IsZero() {
		return nil, fmt.Errorf("%w: timestamp is unset", domain.ErrTemporalCompute)
	}

	local := at.In(e.loc)
	annual := Annual(local.Year())
	seasonal := Seasonal(local.Month(), local.Day())
	meridian := Meridian(local.Hour())
	lunar := Lunar(at)

	return &domain.TemporalContext{
		At:              local,
		Annual:          annual,
		Seasonal:        seasonal,
		Meridian:        meridian,
		Lunar:           lunar,
		TotalMultiplier: Round2(annual.Bonus * meridian.Bonus * lunar.Bonus),
	}, nil
}

// Compute returns the full temporal context for an instant. Weather failures
// degrade to a placeholder and never abort the computation.
func (e *Engine) Compute(ctx context.Context, at time.Time, location string) (*domain.TemporalContext, error) {
	tc, err := e.Calendar(at)
	if err != nil {
		return nil, err
	}
	if location == "" {
		location = e.defaultCity
	}
	tc.Weather = *e.lookupWeather(ctx, location)
	return tc, nil
}

func (e *Engine) lookupWeather(ctx context.Context, location string) *domain.Weather {
	log := logger.FromContext(ctx)

	if e.weather == nil {
		metrics.WeatherFallbacks.WithLabelValues(metrics.FallbackReasonUnconfigured).Inc()
		return PlaceholderWeather(location, e.rnd)
	}

	lookupCtx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	w, err := e.weather.Current(lookupCtx, location)
	if err != nil || w == nil {
		reason := metrics.FallbackReasonError
		if lookupCtx.Err() != nil {
			reason = metrics.FallbackReasonTimeout
		}
		metrics.WeatherFallbacks.WithLabelValues(reason).Inc()
		log.Warn("Weather lookup failed, using placeholder", "location", location, "reason", reason, "error", err)
		return PlaceholderWeather(location, e.rnd)
	}
	return w
}
