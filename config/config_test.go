package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInitConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := InitConfig()
		require.NoError(t, err)

		assert.Equal(t, "8000", cfg.Server.HTTPPort)
		assert.Equal(t, 60*time.Second, cfg.Server.Timeout)
		assert.Equal(t, 10*time.Second, cfg.Client.Timeout)
		assert.Equal(t, 10*time.Minute, cfg.Cache.TTL)
		assert.Equal(t, "https://nominatim.openstreetmap.org", cfg.Providers.Geocode.BaseURL)
		assert.Equal(t, "https://openweathermap.org/img/wn", cfg.Providers.Weather.IconBaseURL)
		assert.Equal(t, "gemini-2.0-flash", cfg.Providers.Tips.Model)
		assert.Empty(t, cfg.Providers.Routing.APIKey)
		assert.Contains(t, cfg.Server.AllowedOrigins, "http://localhost:5173")
	})

	t.Run("environment overrides file values", func(t *testing.T) {
		t.Setenv("PROVIDERS_PLACES_APIKEY", "otm-key")
		t.Setenv("SERVER_HTTPPORT", "9999")

		cfg, err := InitConfig()
		require.NoError(t, err)

		assert.Equal(t, "otm-key", cfg.Providers.Places.APIKey)
		assert.Equal(t, "9999", cfg.Server.HTTPPort)
	})
}
