package temporal

import (
	"context"

	"github.com/osse101/Cultivation_Go/internal/domain"
)

// WeatherProvider looks up current conditions for a location hint
type WeatherProvider interface {
	Current(ctx context.Context, location string) (*domain.Weather, error)
}

// Placeholder condition labels
var placeholderConditions = []string{"Clear", "Cloudy", "Overcast", "Light Rain", "Breezy"}

// PlaceholderWeather synthesizes a plausible snapshot. rnd must return values in [0,1).
func PlaceholderWeather(location string, rnd func() float64) *domain.Weather {
	pick := int(rnd() * float64(len(placeholderConditions)))
	if pick >= len(placeholderConditions) {
		pick = len(placeholderConditions) - 1
	}

	return &domain.Weather{
		Condition:   placeholderConditions[pick],
		Temperature: float64(15 + int(rnd()*10)),
		Humidity:    50 + int(rnd()*30),
		Pressure:    1003 + int(rnd()*20),
		WindSpeed:   Round2(rnd() * 5),
		Visibility:  10,
		Location:    location,
		Source:      domain.WeatherSourcePlaceholder,
	}
}
