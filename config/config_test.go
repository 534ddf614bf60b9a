package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadEnvDefaults(t *testing.T) {
	cfg := LoadEnv()

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, ":8083", cfg.Server.GRPCPort)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "en", cfg.I18n.DefaultLanguage)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("DB_DRIVER", "sqlite")
	t.Setenv("POSTGRES_MAX_OPEN_CONNS", "25")
	t.Setenv("REDIS_ENABLED", "false")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092,")
	t.Setenv("POSTGRES_MAX_IDLE_CONNS", "not-a-number")

	cfg := LoadEnv()

	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.False(t, cfg.Redis.Enabled)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
}
