// internal/enrichment/support/config.go
package support

type Config struct {
	ExcellentScore  int
	AchievableScore int

	// DayShares splits weekly hours across Monday to Friday.
	DayShares          []float64
	HoursPerInterview  float64
	MaxInterviews      int
	MaxApplications    int
	DefaultExpenses    float64
	BridgeMonths       float64
	PivotOptions       int
	RoutineMinutes     int
	MinPracticeMinutes int
}

func LoadConfig() *Config {
	return &Config{
		ExcellentScore:     80,
		AchievableScore:    60,
		DayShares:          []float64{0.2, 0.25, 0.15, 0.25, 0.15},
		HoursPerInterview:  2.5,
		MaxInterviews:      4,
		MaxApplications:    10,
		DefaultExpenses:    50000,
		BridgeMonths:       6,
		PivotOptions:       3,
		RoutineMinutes:     35,
		MinPracticeMinutes: 10,
	}
}
