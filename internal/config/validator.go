package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func configValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
	})
	return validate
}

// Validate checks struct tags and the cross-field rules that tags can't express
func (c *Config) Validate() error {
	if err := configValidator().Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			fields := make([]string, 0, len(verrs))
			for _, fe := range verrs {
				fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
			}
			return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	if !c.IsDev() && len(c.JWTSecret) < minJWTSecretLength {
		return fmt.Errorf("invalid configuration: JWT_SECRET must be at least %d characters outside dev", minJWTSecretLength)
	}

	return nil
}

// Warnings lists non-fatal configuration issues worth logging at startup
func (c *Config) Warnings() []string {
	var warnings []string
	if c.WeatherAPIKey == "" {
		warnings = append(warnings, "WEATHER_API_KEY not set, placeholder weather will be used")
	}
	if c.UsesPostgres() && c.DBPassword == "postgres" && !c.IsDev() {
		warnings = append(warnings, "DB_PASSWORD is using the default value")
	}
	if !c.DailyResetEnabled {
		warnings = append(warnings, "daily reset worker disabled, streaks will not roll over")
	}
	return warnings
}
