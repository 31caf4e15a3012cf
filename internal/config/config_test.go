package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-CruiseBookingService/internal/domain"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad_AppliesDefaults(t *testing.T) {
	path := writeConfig(t, `
[server]
http_port = 8080
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.HTTPPort)
	assert.Equal(t, 15, cfg.Server.ReadTimeout)
	assert.Equal(t, "production", cfg.Server.Environment)
	assert.False(t, cfg.Server.IsDevelopment())
	assert.Equal(t, "info", cfg.Logs.Level)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
	assert.Equal(t, EventsChannel, cfg.Events.Driver)
	assert.Equal(t, int64(64), cfg.Events.BufferSize)
	assert.Equal(t, domain.ReferencePrefix, cfg.Booking.ReferencePrefix)
	assert.Equal(t, "/metrics", cfg.Metrics.Path)
}

func TestLoad_FullFile(t *testing.T) {
	path := writeConfig(t, `
[server]
environment = "development"

[logs]
level = "debug"

[metrics]
enabled = true
path = "/internal/metrics"

[storage]
driver = "postgres"

[database]
host = "db"
port = 5433
user = "cruise"
password = "secret"
dbname = "bookings"

[events]
driver = "redis"
redis_addr = "redis:6379"
consumer_group = "audit"
`)

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.True(t, cfg.Server.IsDevelopment())
	assert.True(t, cfg.Metrics.Enabled)
	assert.Equal(t, "/internal/metrics", cfg.Metrics.Path)
	assert.Equal(t, StoragePostgres, cfg.Storage.Driver)
	assert.Equal(t, "host=db port=5433 user=cruise password=secret dbname=bookings sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, EventsRedis, cfg.Events.Driver)
	assert.Equal(t, "audit", cfg.Events.ConsumerGroup)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown storage driver",
			content: "[storage]\ndriver = \"mongo\"\n",
		},
		{
			name:    "postgres without host",
			content: "[storage]\ndriver = \"postgres\"\n",
		},
		{
			name:    "unknown events driver",
			content: "[events]\ndriver = \"kafka\"\n",
		},
		{
			name:    "redis without address",
			content: "[events]\ndriver = \"redis\"\n",
		},
		{
			name:    "unknown log level",
			content: "[logs]\nlevel = \"verbose\"\n",
		},
		{
			name:    "unknown environment",
			content: "[server]\nenvironment = \"staging\"\n",
		},
		{
			name:    "port out of range",
			content: "[server]\nhttp_port = 70000\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)

	_, err = Load(writeConfig(t, "[server\nhttp_port = "))
	assert.Error(t, err)
}

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Default().Validate())
}

func TestRepositoryConfigFile(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "config.toml"))
	require.NoError(t, err)
	assert.Equal(t, StorageMemory, cfg.Storage.Driver)
}
