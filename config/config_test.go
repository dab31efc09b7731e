package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("APP_TZ", "")
	t.Setenv("ERROR_ENVELOPE_ENABLED", "")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "")

	c := Load()
	assert.Equal(t, "America/Sao_Paulo", c.TimeZone)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, 10*time.Minute, c.CacheTTL)
	assert.False(t, c.ErrorEnvelopeEnabled)
	assert.False(t, c.EventsEnabled)
	assert.Equal(t, "nutricionistas.cadastradas", c.RabbitMQCadastroQueue)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("PUBLIC_BASE_URL", "https://api.example.com/")
	t.Setenv("ERROR_ENVELOPE_ENABLED", "true")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "not-a-number")
	t.Setenv("CACHE_TTL", "30s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("DB_USER", "app")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db")
	t.Setenv("DB_PORT", "5433")
	t.Setenv("DB_NAME", "cadastro")
	t.Setenv("DB_SSLMODE", "require")

	c := Load()
	assert.Equal(t, "https://api.example.com", c.PublicBaseURL)
	assert.True(t, c.ErrorEnvelopeEnabled)
	assert.Equal(t, 60, c.RateLimitPerMinute)
	assert.Equal(t, 30*time.Second, c.CacheTTL)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, c.CORSOrigins())
	assert.Equal(t, "postgres://app:secret@db:5433/cadastro?sslmode=require", c.PostgresDSN())
}

func TestLocation(t *testing.T) {
	c := &Config{TimeZone: "America/Sao_Paulo"}
	assert.Equal(t, "America/Sao_Paulo", c.Location().String())

	c.TimeZone = "Mars/Olympus_Mons"
	assert.Equal(t, time.UTC, c.Location())
}
