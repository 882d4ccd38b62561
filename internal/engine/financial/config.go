// internal/engine/financial/config.go
package financial

type Config struct {
	// RunwaySentinel stands for an effectively infinite runway (no burn).
	RunwaySentinel int
	SafetyMonths   int

	TransitionDip float64
	YearOneFactor float64
	YearTwoFactor float64

	BaseHealth      int
	MinHealth       int
	MaxHealth       int
	DebtRatioLimit  float64
	SavingsRate     float64
	LearningBudget  float64
	BudgetPerHour   float64
	AggressiveAfter int
}

func LoadConfig() *Config {
	return &Config{
		RunwaySentinel:  999,
		SafetyMonths:    6,
		TransitionDip:   0.85,
		YearOneFactor:   0.9,
		YearTwoFactor:   1.1,
		BaseHealth:      50,
		MinHealth:       20,
		MaxHealth:       100,
		DebtRatioLimit:  0.3,
		SavingsRate:     0.2,
		LearningBudget:  30000,
		BudgetPerHour:   1000,
		AggressiveAfter: 12,
	}
}
