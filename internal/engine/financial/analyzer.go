// internal/engine/financial/analyzer.go
package financial

import (
	"fmt"
	"math"

	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

type Analyzer struct {
	config *Config
}

func NewAnalyzer(config *Config) *Analyzer {
	if config == nil {
		config = LoadConfig()
	}
	return &Analyzer{config: config}
}

// Analyze models burn, runway and the salary path through the transition.
// target may be nil, in which case the current salary is carried forward.
func (a *Analyzer) Analyze(profile models.UserProfile, target *knowledge.RoleProfile) models.FinancialAnalysis {
	cfg := a.config

	burn := profile.MonthlyExpenses + profile.MonthlyDebtPayments
	savings := profile.MonthlySalary - burn
	runway := a.runway(profile.Savings, burn)

	currentAnnual := profile.MonthlySalary * 12
	targetAnnual := currentAnnual
	if target != nil {
		// startup founder carries a zero median; the trajectory then shows zero income
		targetAnnual = target.SalaryRange.Median
	}
	transitionAnnual := math.Min(currentAnnual, targetAnnual*cfg.TransitionDip)

	bridge := math.Max(0, float64(cfg.SafetyMonths-runway)*burn)

	health := a.healthScore(runway, savings, profile)

	return models.FinancialAnalysis{
		CurrentRunway:    runway,
		MonthlyBurn:      burn,
		MonthlySavings:   savings,
		BridgeFundNeeded: bridge,
		SalaryTrajectory: []models.SalaryPoint{
			{Period: "Current", Amount: currentAnnual},
			{Period: "During Transition", Amount: transitionAnnual},
			{Period: "Year 1 in New Role", Amount: targetAnnual * cfg.YearOneFactor},
			{Period: "Year 2+ (Established)", Amount: targetAnnual * cfg.YearTwoFactor},
		},
		HealthScore:           health,
		HealthRating:          Rate(health),
		Recommendations:       a.recommendations(runway, bridge, profile),
		ProjectedSalaryChange: salaryChange(currentAnnual, targetAnnual),
	}
}

func (a *Analyzer) runway(savings, burn float64) int {
	if burn <= 0 {
		return a.config.RunwaySentinel
	}
	months := math.Floor(savings / burn)
	if months > float64(a.config.RunwaySentinel) {
		return a.config.RunwaySentinel
	}
	return int(months)
}

func (a *Analyzer) healthScore(runway int, savings float64, profile models.UserProfile) int {
	cfg := a.config
	score := cfg.BaseHealth

	if runway >= 12 {
		score += 30
	} else if runway >= cfg.SafetyMonths {
		score += 15
	} else if runway < 3 {
		score -= 20
	}

	if savings > 0 {
		score += 10
	}
	if a.heavyDebt(profile) {
		score -= 15
	}

	return max(cfg.MinHealth, min(cfg.MaxHealth, score))
}

func (a *Analyzer) heavyDebt(profile models.UserProfile) bool {
	return profile.MonthlyDebtPayments > profile.MonthlySalary*a.config.DebtRatioLimit
}

func (a *Analyzer) recommendations(runway int, bridge float64, profile models.UserProfile) []models.Recommendation {
	cfg := a.config
	var recs []models.Recommendation

	if runway < cfg.SafetyMonths {
		timeline := "Depends on income"
		if monthly := profile.MonthlySalary * cfg.SavingsRate; monthly > 0 {
			timeline = fmt.Sprintf("%d months if saving 20%% of salary", int(math.Ceil(bridge/monthly)))
		}
		recs = append(recs, models.Recommendation{
			Priority: "High",
			Action:   "Build Emergency Fund",
			Detail:   fmt.Sprintf("Accumulate ₹%s before transitioning", FormatCurrency(bridge)),
			Timeline: timeline,
		})
	}

	if a.heavyDebt(profile) {
		recs = append(recs, models.Recommendation{
			Priority: "High",
			Action:   "Reduce Debt Burden",
			Detail:   "EMIs consuming >30% of income limits flexibility",
			Timeline: "Prioritize high-interest debt payoff",
		})
	}

	recs = append(recs, models.Recommendation{
		Priority: "Medium",
		Action:   "Create Transition Budget",
		Detail:   "Account for courses, certifications, and networking costs",
		Timeline: fmt.Sprintf("Budget ₹%s for learning", FormatCurrency(cfg.LearningBudget+profile.WeeklyLearningHours*cfg.BudgetPerHour)),
	})

	if runway >= cfg.AggressiveAfter {
		recs = append(recs, models.Recommendation{
			Priority: "Low",
			Action:   "Consider Aggressive Timeline",
			Detail:   "Strong financial position allows faster transition",
			Timeline: "Could attempt transition in 6-9 months",
		})
	}

	return recs
}

// Rate maps a health score onto its display band.
func Rate(score int) models.Rating {
	switch {
	case score >= 80:
		return models.Rating{Label: "Strong Position", Color: "emerald", Icon: "💪"}
	case score >= 60:
		return models.Rating{Label: "Adequate Runway", Color: "gold", Icon: "👍"}
	case score >= 40:
		return models.Rating{Label: "Needs Attention", Color: "orange", Icon: "⚠️"}
	default:
		return models.Rating{Label: "High Risk", Color: "rose", Icon: "🚨"}
	}
}

// FormatCurrency renders an amount with Indian Cr/L/K suffixes.
func FormatCurrency(amount float64) string {
	switch {
	case amount >= 1e7:
		return fmt.Sprintf("%.1fCr", amount/1e7)
	case amount >= 1e5:
		return fmt.Sprintf("%.1fL", amount/1e5)
	case amount >= 1e3:
		return fmt.Sprintf("%.0fK", amount/1e3)
	}
	return fmt.Sprintf("%.0f", amount)
}

func salaryChange(current, target float64) string {
	if current == 0 {
		return "+0%"
	}
	change := math.Round((target - current) / current * 100)
	if change >= 0 {
		return fmt.Sprintf("+%d%%", int(change))
	}
	return fmt.Sprintf("%d%%", int(change))
}
