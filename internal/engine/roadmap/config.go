// internal/engine/roadmap/config.go
package roadmap

type Config struct {
	BaseMonths int
	MinMonths  int
	MaxMonths  int

	FastHours       float64
	FastHoursFactor float64
	SlowHours       float64
	SlowHoursFactor float64

	WideGap         int
	WideGapFactor   float64
	NarrowGap       int
	NarrowGapFactor float64

	BoldRisk           int
	BoldRiskFactor     float64
	CautiousRisk       int
	CautiousRiskFactor float64

	// Share of totalMonths and minimum length for phases 1-4.
	PhaseShares []float64
	PhaseFloors []int

	OnboardingMonths int
	HighSkillTasks   int
	MediumSkillTasks int
	DaysPerMonth     int
}

func LoadConfig() *Config {
	return &Config{
		BaseMonths:         12,
		MinMonths:          4,
		MaxMonths:          36,
		FastHours:          20,
		FastHoursFactor:    0.7,
		SlowHours:          5,
		SlowHoursFactor:    1.5,
		WideGap:            60,
		WideGapFactor:      1.3,
		NarrowGap:          30,
		NarrowGapFactor:    0.8,
		BoldRisk:           4,
		BoldRiskFactor:     0.8,
		CautiousRisk:       2,
		CautiousRiskFactor: 1.2,
		PhaseShares:        []float64{0.2, 0.4, 0.25, 0.15},
		PhaseFloors:        []int{1, 2, 2, 2},
		OnboardingMonths:   3,
		HighSkillTasks:     3,
		MediumSkillTasks:   2,
		DaysPerMonth:       30,
	}
}
