package config

import (
	"log"
	"sync"

	"github.com/spf13/viper"
)

type AppConfig struct {
	Name    string
	Env     string
	Port    string
	BaseURL string
	// LogJSON switches zap to the json encoder.
	LogJSON bool
	// RateLimit is the number of requests per minute allowed per client.
	RateLimit int
}

var (
	appConfig *AppConfig
	appOnce   sync.Once
)

func LoadAppConfig() *AppConfig {
	appOnce.Do(func() {
		appConfig = newAppConfig(viper.GetViper())
	})
	return appConfig
}

func newAppConfig(v *viper.Viper) *AppConfig {
	v.SetDefault("APP_NAME", "mentor-eval")
	v.SetDefault("APP_PORT", ":8080")
	v.SetDefault("APP_RATE_LIMIT", 50)

	env := v.GetString("APP_ENV")
	if env == "" {
		env = "development"
		log.Printf("Warning: APP_ENV not set, defaulting to %s", env)
	}
	return &AppConfig{
		Name:      v.GetString("APP_NAME"),
		Env:       env,
		Port:      v.GetString("APP_PORT"),
		BaseURL:   v.GetString("APP_URL"),
		LogJSON:   v.GetBool("LOG_JSON"),
		RateLimit: v.GetInt("APP_RATE_LIMIT"),
	}
}

func (c *AppConfig) IsProduction() bool {
	return c.Env == "production"
}
