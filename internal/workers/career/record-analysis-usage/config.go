// internal/workers/career/record-analysis-usage/config.go
package recordanalysisusage

import "time"

type Config struct {
	Timeout time.Duration
}

func LoadConfig() *Config {
	return &Config{
		Timeout: 10 * time.Second,
	}
}
