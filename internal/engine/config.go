// internal/engine/config.go
package engine

import (
	"time"

	"career-pivot/internal/common/concurrency"
	"career-pivot/internal/common/config"
	"career-pivot/internal/engine/alternatives"
	"career-pivot/internal/engine/feasibility"
	"career-pivot/internal/engine/financial"
	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/engine/risk"
	"career-pivot/internal/engine/roadmap"
	"career-pivot/internal/engine/skillgap"
	"career-pivot/internal/engine/variety"
)

type Config struct {
	Matcher      *matcher.Config
	Feasibility  *feasibility.Config
	SkillGap     *skillgap.Config
	Financial    *financial.Config
	Roadmap      *roadmap.Config
	Alternatives *alternatives.Config
	Risk         *risk.Config

	EnrichmentEnabled bool
	Enrichment        concurrency.ParallelOptions
}

func LoadConfig() *Config {
	return &Config{
		Matcher:           matcher.LoadConfig(),
		Feasibility:       feasibility.LoadConfig(),
		SkillGap:          skillgap.LoadConfig(),
		Financial:         financial.LoadConfig(),
		Roadmap:           roadmap.LoadConfig(),
		Alternatives:      alternatives.LoadConfig(),
		Risk:              risk.LoadConfig(),
		EnrichmentEnabled: true,
		Enrichment: concurrency.ParallelOptions{
			MaxWorkers:  3,
			ItemTimeout: 2 * time.Second,
		},
	}
}

// ConfigFrom overlays the engine section of the application config on the
// component defaults.
func ConfigFrom(ec config.EngineConfig) *Config {
	cfg := LoadConfig()
	cfg.EnrichmentEnabled = ec.Enrichment.Enabled
	if ec.Enrichment.MaxWorkers > 0 {
		cfg.Enrichment.MaxWorkers = ec.Enrichment.MaxWorkers
	}
	if ec.Enrichment.Timeout > 0 {
		cfg.Enrichment.ItemTimeout = ec.EnrichmentTimeout()
	}
	return cfg
}

// VarietyFrom picks the display randomness source. Deterministic engines, and
// the default, use fixed midpoints; a zero seed means seed from the clock.
func VarietyFrom(ec config.EngineConfig) variety.Source {
	if ec.Deterministic {
		return variety.Fixed{}
	}
	seed := ec.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return variety.Seeded(seed)
}
