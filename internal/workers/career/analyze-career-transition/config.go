// internal/workers/career/analyze-career-transition/config.go
package analyzecareertransition

import "time"

type Config struct {
	Timeout  time.Duration
	CacheTTL time.Duration
	// CacheEnabled must stay off unless the engine is deterministic.
	CacheEnabled bool
}

func LoadConfig() *Config {
	return &Config{
		Timeout:      30 * time.Second,
		CacheTTL:     24 * time.Hour,
		CacheEnabled: true,
	}
}
