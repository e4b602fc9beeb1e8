package config

import (
	"sync"

	"github.com/spf13/viper"
)

// RedisConfig configures the summary change publisher. An empty Addr disables it.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	Channel  string
}

var (
	redisConfig *RedisConfig
	redisOnce   sync.Once
)

func LoadRedisConfig() *RedisConfig {
	redisOnce.Do(func() {
		redisConfig = newRedisConfig(viper.GetViper())
	})
	return redisConfig
}

func newRedisConfig(v *viper.Viper) *RedisConfig {
	v.SetDefault("REDIS_CHANNEL", "evaluation-summary")

	return &RedisConfig{
		Addr:     v.GetString("REDIS_ADDR"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
		Channel:  v.GetString("REDIS_CHANNEL"),
	}
}
