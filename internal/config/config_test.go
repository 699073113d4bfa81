package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	for _, key := range []string{"HTTP_ADDRESS", "STORAGE_DRIVER", "KAFKA_BROKERS", "SEED_DEMO_DATA", "SHUTDOWN_TIMEOUT", "HTTP_READ_HEADER_TIMEOUT", "EVENTS_PUBLISH_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()
	require.Equal(t, ":5000", cfg.HTTPAddress)
	require.Equal(t, StorageMemory, cfg.StorageDriver)
	require.True(t, cfg.SeedDemoData)
	require.Empty(t, cfg.KafkaBrokers)
	require.Equal(t, 15*time.Second, cfg.ShutdownTimeout)
	require.Equal(t, 2*time.Second, cfg.HTTPHeaderTimeout)
	require.Equal(t, 3*time.Second, cfg.EventsPublishTimeout)
	require.NoError(t, cfg.Validate())
}

func TestLoadOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("HTTP_ADDRESS", ":9090")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("POSTGRES_URL", "postgres://u:p@db:5432/x")
	t.Setenv("SEED_DEMO_DATA", "false")
	t.Setenv("KAFKA_BROKERS", " kafka-1:9092, ,kafka-2:9092 ")
	t.Setenv("HTTP_READ_TIMEOUT", "2s")
	t.Setenv("HTTP_READ_HEADER_TIMEOUT", "750ms")
	t.Setenv("EVENTS_PUBLISH_TIMEOUT", "1s")
	t.Setenv("HTTP_WRITE_TIMEOUT", "not-a-duration")

	cfg := Load()
	require.Equal(t, ":9090", cfg.HTTPAddress)
	require.Equal(t, StoragePostgres, cfg.StorageDriver)
	require.Equal(t, "postgres://u:p@db:5432/x", cfg.PostgresURL)
	require.False(t, cfg.SeedDemoData)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.KafkaBrokers)
	require.Equal(t, 2*time.Second, cfg.HTTPReadTimeout)
	require.Equal(t, 10*time.Second, cfg.HTTPWriteTimeout)
	require.Equal(t, 750*time.Millisecond, cfg.HTTPHeaderTimeout)
	require.Equal(t, time.Second, cfg.EventsPublishTimeout)
}

func TestLoadReadsDotEnvWithoutOverridingEnvironment(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("HTTP_ADDRESS=:7000\nCORS_ORIGIN=https://app.example.com\n"), 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_ADDRESS", ":8081")
	t.Setenv("CORS_ORIGIN", "")
	os.Unsetenv("CORS_ORIGIN")

	cfg := Load()
	require.Equal(t, ":8081", cfg.HTTPAddress)
	require.Equal(t, "https://app.example.com", cfg.CORSOrigin)
}

func TestValidateRejectsUnknownDriver(t *testing.T) {
	cfg := Config{StorageDriver: "sqlite"}
	require.ErrorContains(t, cfg.Validate(), "unknown STORAGE_DRIVER")

	cfg = Config{StorageDriver: StoragePostgres}
	require.ErrorContains(t, cfg.Validate(), "POSTGRES_URL")
}
