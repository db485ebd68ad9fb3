package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.Equal(t, 5*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("RABBITMQ_URL", "amqp://broker:5672/")
	t.Setenv("SHUTDOWN_TIMEOUT", "30s")

	cfg := Load()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "amqp://broker:5672/", cfg.RabbitURL)
	assert.Equal(t, 30*time.Second, cfg.ShutdownTimeout)
}

func TestLoad_BlankAndInvalidValuesFallBack(t *testing.T) {
	t.Setenv("PORT", "   ")
	t.Setenv("READ_TIMEOUT", "soon")

	cfg := Load()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, 5*time.Second, cfg.ReadTimeout)
}
