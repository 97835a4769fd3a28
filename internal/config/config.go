package config

import (
	"log"
	"os"
	"time"
	_ "time/tzdata"

	"gopkg.in/yaml.v3"
)

const (
	defaultTimezone = "UTC"
	configPathEnv   = "LAWTRACKER_CONFIG"
	databaseDrvEnv  = "DATABASE_DRIVER"
	databaseDSNEnv  = "DATABASE_DSN"
	logLevelEnv     = "LAWTRACKER_LOG_LEVEL"
	signalsPathEnv  = "LAWTRACKER_SIGNALS"

	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging   LoggingConfig   `yaml:"logging"`
	Database  DatabaseConfig  `yaml:"database"`
	Scheduler SchedulerConfig `yaml:"scheduler"`
	Fetch     FetchConfig     `yaml:"fetch"`
	Sources   []SourceConfig  `yaml:"sources"`
	Signals   SignalsConfig   `yaml:"signals"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

// LoggingConfig selects the slog level.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// DatabaseConfig names the SQL driver and its DSN.
type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	DSN    string `yaml:"dsn"`
}

// SchedulerConfig defines how often watch mode reruns the pipeline.
type SchedulerConfig struct {
	Interval string         `yaml:"interval"`
	Timezone string         `yaml:"timezone"`
	location *time.Location `yaml:"-"`
}

// Location resolves the scheduler timezone string to a time.Location.
func (s SchedulerConfig) Location() *time.Location {
	if s.location != nil {
		return s.location
	}
	loc, _ := time.LoadLocation(defaultTimezone)
	return loc
}

// Every parses Interval, defaulting to a day.
func (s SchedulerConfig) Every() time.Duration {
	if d, err := time.ParseDuration(s.Interval); err == nil && d > 0 {
		return d
	}
	return 24 * time.Hour
}

// FetchConfig tunes the upstream producers.
type FetchConfig struct {
	DaysBack        int    `yaml:"daysBack"`
	Limit           int    `yaml:"limit"`
	MinPrimary      int    `yaml:"minPrimary"`
	UserAgent       string `yaml:"userAgent"`
	Timeout         string `yaml:"timeout"`
	RequestInterval string `yaml:"requestInterval"`
}

// TimeoutDuration parses Timeout, defaulting to a minute.
func (f FetchConfig) TimeoutDuration() time.Duration {
	if d, err := time.ParseDuration(f.Timeout); err == nil && d > 0 {
		return d
	}
	return time.Minute
}

// Interval parses RequestInterval; zero disables rate limiting.
func (f FetchConfig) Interval() time.Duration {
	if d, err := time.ParseDuration(f.RequestInterval); err == nil && d >= 0 {
		return d
	}
	return time.Second
}

// SourceConfig describes one fetch channel. Their order is the merge order.
type SourceConfig struct {
	Name    string            `yaml:"name"`
	Scanner string            `yaml:"scanner"`
	URL     string            `yaml:"url"`
	Options map[string]string `yaml:"options"`
}

// SignalsConfig points at the optional external signals file.
type SignalsConfig struct {
	Path string `yaml:"path"`
}

// MetricsConfig enables a prometheus listener when Addr is set.
type MetricsConfig struct {
	Addr string `yaml:"addr"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
func Load() Config {
	return LoadFrom("")
}

// LoadFrom is Load with an explicit file path; empty falls back to the
// LAWTRACKER_CONFIG variable.
func LoadFrom(path string) Config {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			log.Printf("config: cannot read %s: %v (falling back to defaults)", path, err)
		} else {
			fileCfg, err := Parse(raw)
			if err != nil {
				log.Printf("config: cannot parse %s: %v (falling back to defaults)", path, err)
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	cfg.bindTimezone()

	if len(cfg.Sources) == 0 {
		cfg.Sources = defaultConfig().Sources
	}

	return cfg
}

// Parse decodes a YAML document without applying defaults.
func Parse(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(databaseDrvEnv); v != "" {
		c.Database.Driver = v
	}

	if v := os.Getenv(databaseDSNEnv); v != "" {
		c.Database.DSN = v
	}

	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(signalsPathEnv); v != "" {
		c.Signals.Path = v
	}
}

func (c *Config) bindTimezone() {
	tz := c.Scheduler.Timezone
	if tz == "" {
		tz = defaultTimezone
	}
	loc, err := time.LoadLocation(tz)
	if err != nil {
		log.Printf("config: unknown timezone %s, reverting to %s", tz, defaultTimezone)
		loc, _ = time.LoadLocation(defaultTimezone)
	}
	c.Scheduler.location = loc
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}

	if override.Database.DSN != "" {
		base.Database.DSN = override.Database.DSN
	}
	if override.Database.Driver != "" {
		base.Database.Driver = override.Database.Driver
	}

	if override.Scheduler.Interval != "" {
		base.Scheduler.Interval = override.Scheduler.Interval
	}
	if override.Scheduler.Timezone != "" {
		base.Scheduler.Timezone = override.Scheduler.Timezone
	}

	if override.Fetch.DaysBack > 0 {
		base.Fetch.DaysBack = override.Fetch.DaysBack
	}
	if override.Fetch.Limit > 0 {
		base.Fetch.Limit = override.Fetch.Limit
	}
	if override.Fetch.MinPrimary > 0 {
		base.Fetch.MinPrimary = override.Fetch.MinPrimary
	}
	if override.Fetch.UserAgent != "" {
		base.Fetch.UserAgent = override.Fetch.UserAgent
	}
	if override.Fetch.Timeout != "" {
		base.Fetch.Timeout = override.Fetch.Timeout
	}
	if override.Fetch.RequestInterval != "" {
		base.Fetch.RequestInterval = override.Fetch.RequestInterval
	}

	if len(override.Sources) > 0 {
		base.Sources = override.Sources
	}

	if override.Signals.Path != "" {
		base.Signals.Path = override.Signals.Path
	}

	if override.Metrics.Addr != "" {
		base.Metrics.Addr = override.Metrics.Addr
	}

	return base
}

func defaultConfig() Config {
	tz, _ := time.LoadLocation(defaultTimezone)
	return Config{
		Logging:   LoggingConfig{Level: "info"},
		Database:  DatabaseConfig{Driver: DriverSQLite, DSN: "lawtracker.db"},
		Scheduler: SchedulerConfig{Interval: "24h", Timezone: defaultTimezone, location: tz},
		Fetch: FetchConfig{
			DaysBack:        30,
			Limit:           200,
			MinPrimary:      10,
			UserAgent:       "NI-EU-Law-Tracker/1.0",
			Timeout:         "60s",
			RequestInterval: "1s",
		},
		Sources: []SourceConfig{
			{
				Name:    "eurlex-sparql",
				Scanner: "sparql",
				URL:     "https://publications.europa.eu/webapi/rdf/sparql",
			},
			{
				Name:    "eurlex-rss",
				Scanner: "rss",
				URL:     "https://eur-lex.europa.eu/EN/display-feed.html?rssId=legislation",
				Options: map[string]string{"maxItems": "100"},
			},
		},
	}
}
