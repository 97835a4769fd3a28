package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{configPathEnv, databaseDrvEnv, databaseDSNEnv, logLevelEnv, signalsPathEnv} {
		t.Setenv(key, "")
	}
}

func TestDefaults(t *testing.T) {
	clearEnv(t)
	cfg := LoadFrom(filepath.Join(t.TempDir(), "missing.yaml"))

	assert.Equal(t, DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "lawtracker.db", cfg.Database.DSN)
	assert.Equal(t, 30, cfg.Fetch.DaysBack)
	assert.Equal(t, 10, cfg.Fetch.MinPrimary)
	assert.Equal(t, 24*time.Hour, cfg.Scheduler.Every())
	assert.Equal(t, time.Minute, cfg.Fetch.TimeoutDuration())
	assert.Equal(t, time.Second, cfg.Fetch.Interval())
	require.Len(t, cfg.Sources, 2)
	assert.Equal(t, "sparql", cfg.Sources[0].Scanner)
	assert.Equal(t, "rss", cfg.Sources[1].Scanner)
	assert.Equal(t, "100", cfg.Sources[1].Options["maxItems"])
	assert.Equal(t, "UTC", cfg.Scheduler.Location().String())
}

func TestLoadFromFileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lawtracker.yaml")
	raw := `
logging:
  level: warn
database:
  driver: postgres
  dsn: postgres://localhost/law
scheduler:
  interval: 6h
  timezone: Europe/Brussels
fetch:
  daysBack: 7
  requestInterval: 0s
sources:
  - name: search
    scanner: search
    url: https://eur-lex.europa.eu/search.html
    options:
      maxPages: "3"
metrics:
  addr: ":9100"
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	clearEnv(t)
	t.Setenv("DATABASE_DSN", "postgres://override/law")
	t.Setenv("LAWTRACKER_SIGNALS", "/etc/lawtracker/signals.yaml")

	cfg := LoadFrom(path)

	assert.Equal(t, "warn", cfg.Logging.Level)
	assert.Equal(t, DriverPostgres, cfg.Database.Driver)
	assert.Equal(t, "postgres://override/law", cfg.Database.DSN)
	assert.Equal(t, 6*time.Hour, cfg.Scheduler.Every())
	assert.Equal(t, "Europe/Brussels", cfg.Scheduler.Location().String())
	assert.Equal(t, 7, cfg.Fetch.DaysBack)
	assert.Equal(t, 200, cfg.Fetch.Limit, "unset fields keep defaults")
	assert.Equal(t, time.Duration(0), cfg.Fetch.Interval())
	require.Len(t, cfg.Sources, 1)
	assert.Equal(t, "3", cfg.Sources[0].Options["maxPages"])
	assert.Equal(t, "/etc/lawtracker/signals.yaml", cfg.Signals.Path)
	assert.Equal(t, ":9100", cfg.Metrics.Addr)
}

func TestLoadUsesEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cfg.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch:\n  limit: 50\n"), 0o600))
	clearEnv(t)
	t.Setenv("LAWTRACKER_CONFIG", path)

	assert.Equal(t, 50, Load().Fetch.Limit)
}

func TestBadFileFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("fetch: [oops"), 0o600))
	clearEnv(t)

	cfg := LoadFrom(path)
	assert.Equal(t, 200, cfg.Fetch.Limit)
}

func TestUnknownTimezone(t *testing.T) {
	cfg := defaultConfig()
	cfg.Scheduler.Timezone = "Mars/Olympus"
	cfg.bindTimezone()

	assert.Equal(t, "UTC", cfg.Scheduler.Location().String())
}

func TestParse(t *testing.T) {
	t.Parallel()

	cfg, err := Parse([]byte("database:\n  driver: sqlite\n"))
	require.NoError(t, err)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Empty(t, cfg.Sources)

	_, err = Parse([]byte("database: [x"))
	assert.Error(t, err)
}
