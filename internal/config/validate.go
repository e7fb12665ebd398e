package config

import (
	"fmt"
	"strings"
	"time"
)

// Validate performs business-rule validation on the loaded configuration.
// It must be called after loading; Load calls it automatically.
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535 (got %d)", c.Server.Port)
	}
	if c.Server.BasePath != "" && !strings.HasPrefix(c.Server.BasePath, "/") {
		return fmt.Errorf("server.base_path must start with / (got %q)", c.Server.BasePath)
	}
	c.Server.BasePath = strings.TrimRight(c.Server.BasePath, "/")

	if err := c.validateStorage(); err != nil {
		return fmt.Errorf("storage: %w", err)
	}

	if err := c.AI.validate(); err != nil {
		return fmt.Errorf("ai: %w", err)
	}

	// Zero means no write deadline.
	if w, need := c.Server.WriteTimeout, c.RewriteBudget(); w > 0 && w < need {
		return fmt.Errorf("server.write_timeout (%s) must be at least 2*ai.timeout + storage.save_timeout (%s)", w, need)
	}

	if err := c.RateLimit.validate(); err != nil {
		return fmt.Errorf("ratelimit: %w", err)
	}

	if c.Metrics.Enabled && !strings.HasPrefix(c.Metrics.Path, "/") {
		return fmt.Errorf("metrics.path must start with / (got %q)", c.Metrics.Path)
	}

	return nil
}

// RewriteBudget is the longest a rewrite request can take: the connectivity
// probe and the rewrite each race ai.timeout, then the history save runs.
func (c *Config) RewriteBudget() time.Duration {
	return 2*c.AI.Timeout + c.Storage.SaveTimeout
}

func (c *Config) validateStorage() error {
	if c.Storage.SaveTimeout <= 0 {
		return fmt.Errorf("save_timeout must be > 0 (got %s)", c.Storage.SaveTimeout)
	}

	switch c.Storage.Driver {
	case DriverMongo:
		if c.Mongo.URI == "" {
			return fmt.Errorf("mongo.uri is required for driver %q", DriverMongo)
		}
		if c.Mongo.Database == "" || c.Mongo.Collection == "" {
			return fmt.Errorf("mongo.database and mongo.collection are required")
		}
	case DriverPostgres:
		if c.Database.DSN == "" {
			return fmt.Errorf("database.dsn is required for driver %q", DriverPostgres)
		}
		if c.Database.MinConns > c.Database.MaxConns {
			return fmt.Errorf("database.min_conns (%d) exceeds max_conns (%d)", c.Database.MinConns, c.Database.MaxConns)
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown driver %q (want %s, %s or %s)", c.Storage.Driver, DriverMongo, DriverPostgres, DriverMemory)
	}
	return nil
}

func (a *AIConfig) validate() error {
	switch a.Provider {
	case ProviderGemini, ProviderOpenAI, ProviderAnthropic:
	default:
		return fmt.Errorf("unknown provider %q (want %s, %s or %s)", a.Provider, ProviderGemini, ProviderOpenAI, ProviderAnthropic)
	}
	if a.Timeout <= 0 {
		return fmt.Errorf("timeout must be > 0 (got %s)", a.Timeout)
	}
	return nil
}

func (r *RateLimitConfig) validate() error {
	if !r.Enabled {
		return nil
	}
	if r.RequestsPerWindow <= 0 || r.RewritePerWindow <= 0 {
		return fmt.Errorf("limits must be > 0 (got %d and %d)", r.RequestsPerWindow, r.RewritePerWindow)
	}
	if r.Window <= 0 {
		return fmt.Errorf("window must be > 0 (got %s)", r.Window)
	}
	return nil
}
