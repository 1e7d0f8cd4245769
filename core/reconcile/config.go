package reconcile

import "time"

// Config holds lookup table synchronization settings.
type Config struct {
	// Languages lists the language codes rows are maintained for.
	Languages []string `mapstructure:"languages" default:"en,tr"`
	// Schema is the database schema holding the lookup table.
	Schema string `mapstructure:"schema" default:"core"`
	// DeleteOrphans removes rows whose value is no longer declared.
	DeleteOrphans bool `mapstructure:"delete_orphans" default:"true"`
	// OnStartup runs a pass when the server starts.
	OnStartup bool `mapstructure:"on_startup" default:"true"`
	// IntervalSeconds runs a pass periodically; 0 disables it.
	IntervalSeconds int `mapstructure:"interval_seconds" default:"0"`
	// TimeoutSeconds bounds a single unit.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"60"`
	// Concurrency is the number of units applied at once.
	Concurrency int `mapstructure:"concurrency" default:"4"`
	// AutoMigrate creates or migrates the lookup table before syncing.
	AutoMigrate bool `mapstructure:"auto_migrate" default:"true"`
	// PlanCacheSeconds is how long dry-run plans are reused.
	PlanCacheSeconds int `mapstructure:"plan_cache_seconds" default:"30"`
}

// Options converts the configuration into pass options.
func (c Config) Options() Options {
	return Options{
		Languages:     c.Languages,
		DeleteOrphans: c.DeleteOrphans,
		Concurrency:   c.Concurrency,
		UnitTimeout:   time.Duration(c.TimeoutSeconds) * time.Second,
	}
}

// Interval returns the periodic pass interval, zero when disabled.
func (c Config) Interval() time.Duration {
	if c.IntervalSeconds <= 0 {
		return 0
	}
	return time.Duration(c.IntervalSeconds) * time.Second
}

// PlanCacheTTL returns how long dry-run plans are cached.
func (c Config) PlanCacheTTL() time.Duration {
	if c.PlanCacheSeconds <= 0 {
		return 0
	}
	return time.Duration(c.PlanCacheSeconds) * time.Second
}
