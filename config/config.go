package config

import (
	"bytes"
	_ "embed"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

//go:embed config.yml
var embeddedConfig []byte

// ProviderConfig describes one upstream REST service.
type ProviderConfig struct {
	BaseURL     string `mapstructure:"baseURL"`
	APIKey      string `mapstructure:"apiKey"`
	IconBaseURL string `mapstructure:"iconBaseURL"`
	Model       string `mapstructure:"model"`
}

type Config struct {
	Mode     string `mapstructure:"mode"`
	Dotenv   string `mapstructure:"dotenv"`
	Handlers struct {
		Prometheus struct {
			Port string `mapstructure:"port"`
		} `mapstructure:"prometheus"`
	} `mapstructure:"handlers"`
	Server struct {
		HTTPPort       string        `mapstructure:"HTTPPort"`
		Timeout        time.Duration `mapstructure:"HTTPTimeout"`
		AllowedOrigins []string      `mapstructure:"allowedOrigins"`
	} `mapstructure:"server"`
	Client struct {
		Timeout   time.Duration `mapstructure:"timeout"`
		UserAgent string        `mapstructure:"userAgent"`
	} `mapstructure:"client"`
	Cache struct {
		TTL     time.Duration `mapstructure:"ttl"`
		Cleanup time.Duration `mapstructure:"cleanup"`
	} `mapstructure:"cache"`
	Providers struct {
		Geocode ProviderConfig `mapstructure:"geocode"`
		Weather ProviderConfig `mapstructure:"weather"`
		Places  ProviderConfig `mapstructure:"places"`
		Routing ProviderConfig `mapstructure:"routing"`
		Tips    ProviderConfig `mapstructure:"tips"`
	} `mapstructure:"providers"`
}

func InitConfig() (Config, error) {
	var config Config
	v := viper.New()

	v.AddConfigPath(".")
	v.AddConfigPath("config")
	v.AddConfigPath("/app/config")

	v.SetConfigName("config")
	v.SetConfigType("yml")

	// PROVIDERS_PLACES_APIKEY overrides providers.places.apiKey
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	err := v.ReadInConfig()
	if err != nil {
		fmt.Printf("Warning: Failed to find file-based config: %s. Falling back to embedded config.\n", err)
		if err = v.ReadConfig(bytes.NewReader(embeddedConfig)); err != nil {
			return Config{}, fmt.Errorf("failed to read embedded config: %w", err)
		}
	}

	if err = v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	fmt.Println("Successfully loaded app configs...")
	return config, nil
}
