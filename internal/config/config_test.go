package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"APP_PORT", "LOG_LEVEL", "REDIS_DB", "REDIS_ADDR",
		"POSTGRES_MAX_CONNS", "POSTGRES_MIN_CONNS",
		"AUTH_ENABLED", "AUTH_JWT_SECRET", "AUTH_OPERATOR_USERNAME", "AUTH_OPERATOR_PASSWORD_HASH", "AUTH_OPERATOR_ROLE",
		"EVENTS_KAFKA_BROKERS", "EVENTS_KAFKA_TOPIC", "EVENTS_REDIS_STREAM", "EVENTS_KAFKA_MAX_RETRIES",
		"HTTP_REQUEST_TIMEOUT_SECONDS",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "developer-service", cfg.App.Name)
	assert.Equal(t, "0.0.0.0:8080", cfg.App.Addr())
	assert.Equal(t, 30*time.Second, cfg.App.RequestTimeout())
	assert.Equal(t, "info", cfg.Logger.Level)
	assert.False(t, cfg.Auth.Enabled)
	assert.Equal(t, "ADMIN", cfg.Auth.OperatorRole)
	assert.Equal(t, "migrations", cfg.Postgres.MigrationsDir)
	assert.False(t, cfg.Events.KafkaEnabled())
	assert.Equal(t, 5, cfg.Events.KafkaMaxRetries)
}

func TestLoadParsesLists(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENTS_KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("EVENTS_KAFKA_TOPIC", "developers")
	t.Setenv("LOG_LEVEL", "DEBUG")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.KafkaBrokers)
	assert.True(t, cfg.Events.KafkaEnabled())
	assert.Equal(t, "debug", cfg.Logger.Level)
}

func TestLoadRejectsInvalid(t *testing.T) {
	cases := map[string]map[string]string{
		"auth without secret":   {"AUTH_ENABLED": "true", "AUTH_OPERATOR_USERNAME": "ops", "AUTH_OPERATOR_PASSWORD_HASH": "x"},
		"kafka without topic":   {"EVENTS_KAFKA_BROKERS": "kafka:9092"},
		"unknown log level":     {"LOG_LEVEL": "verbose"},
		"non numeric port":      {"APP_PORT": "http"},
		"min conns above max":   {"POSTGRES_MAX_CONNS": "2", "POSTGRES_MIN_CONNS": "5"},
		"unknown operator role": {"AUTH_OPERATOR_ROLE": "ROOT"},
		"non numeric redis db":  {"REDIS_DB": "zero"},
		"zero kafka retries":    {"EVENTS_KAFKA_MAX_RETRIES": "0"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
