// internal/engine/feasibility/config.go
package feasibility

type Config struct {
	BaseScore     float64
	OverlapBase   float64
	OverlapWeight float64

	SeniorYears      int
	JuniorYears      int
	ExperienceAdjust float64

	HighHours   float64
	LowHours    float64
	HoursAdjust float64

	ConstraintPenalty float64
	SameCategoryBonus float64

	// Clamp bounds, applied after rounding.
	MinScore int
	MaxScore int
}

func LoadConfig() *Config {
	return &Config{
		BaseScore:         50,
		OverlapBase:       40,
		OverlapWeight:     50,
		SeniorYears:       5,
		JuniorYears:       2,
		ExperienceAdjust:  10,
		HighHours:         15,
		LowHours:          5,
		HoursAdjust:       10,
		ConstraintPenalty: 5,
		SameCategoryBonus: 8,
		MinScore:          15,
		MaxScore:          95,
	}
}
