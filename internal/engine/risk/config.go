// internal/engine/risk/config.go
package risk

type Config struct {
	BaseScore int
	MaxScore  int

	CriticalRunway int
	ShortRunway    int
	WideGap        int
	ModerateGap    int
	LowHours       float64

	// Point increments per triggered risk.
	CriticalRunwayPoints int
	ShortRunwayPoints    int
	WideGapPoints        int
	ModerateGapPoints    int
	MarketPoints         int
	AgePoints            int
	LocationPoints       int
	TimePoints           int

	WeakDemand []string
}

func LoadConfig() *Config {
	return &Config{
		BaseScore:            30,
		MaxScore:             90,
		CriticalRunway:       6,
		ShortRunway:          12,
		WideGap:              60,
		ModerateGap:          40,
		LowHours:             5,
		CriticalRunwayPoints: 20,
		ShortRunwayPoints:    10,
		WideGapPoints:        15,
		ModerateGapPoints:    8,
		MarketPoints:         10,
		AgePoints:            8,
		LocationPoints:       5,
		TimePoints:           12,
		WeakDemand:           []string{"low", "stable"},
	}
}
