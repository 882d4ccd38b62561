// internal/models/profile.go
package models

import (
	"math"
	"strings"
)

// Constraint tags recognised by the scorers.
const (
	ConstraintFamily    = "family"
	ConstraintLocation  = "location"
	ConstraintEducation = "education"
	ConstraintAge       = "age"
	ConstraintHealth    = "health"
	ConstraintVisa      = "visa"
)

// UserProfile is the intake form. It is passed by value and never mutated.
type UserProfile struct {
	CurrentTitle        string   `json:"currentTitle"`
	YearsExperience     int      `json:"yearsExperience"`
	Industry            string   `json:"industry,omitempty"`
	Location            string   `json:"location,omitempty"`
	Skills              []string `json:"skills"`
	MonthlySalary       float64  `json:"monthlySalary"`
	MonthlyExpenses     float64  `json:"monthlyExpenses"`
	Savings             float64  `json:"savings"`
	MonthlyDebtPayments float64  `json:"monthlyDebtPayments"`
	DreamRole           string   `json:"dreamRole"`
	PivotReason         string   `json:"pivotReason,omitempty"`
	RiskTolerance       int      `json:"riskTolerance"`
	WeeklyLearningHours float64  `json:"weeklyLearningHours"`
	Constraints         []string `json:"constraints"`
}

// Sanitize returns a copy with negatives clamped to 0, riskTolerance capped at
// 5 and blank list entries dropped. Absent numbers stay 0.
func (p UserProfile) Sanitize() UserProfile {
	out := p
	out.CurrentTitle = strings.TrimSpace(p.CurrentTitle)
	out.DreamRole = strings.TrimSpace(p.DreamRole)

	if out.YearsExperience < 0 {
		out.YearsExperience = 0
	}
	out.MonthlySalary = nonNegative(p.MonthlySalary)
	out.MonthlyExpenses = nonNegative(p.MonthlyExpenses)
	out.Savings = nonNegative(p.Savings)
	out.MonthlyDebtPayments = nonNegative(p.MonthlyDebtPayments)

	out.RiskTolerance = min(max(p.RiskTolerance, 0), 5)
	out.WeeklyLearningHours = nonNegative(p.WeeklyLearningHours)

	out.Skills = compact(p.Skills)
	out.Constraints = compact(p.Constraints)
	return out
}

// HasConstraint matches tags case-insensitively.
func (p UserProfile) HasConstraint(tag string) bool {
	for _, c := range p.Constraints {
		if strings.EqualFold(strings.TrimSpace(c), tag) {
			return true
		}
	}
	return false
}

// LowerSkills returns the skills lowercased and trimmed.
func (p UserProfile) LowerSkills() []string {
	out := make([]string, 0, len(p.Skills))
	for _, s := range p.Skills {
		if s = strings.ToLower(strings.TrimSpace(s)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

func nonNegative(v float64) float64 {
	if v < 0 || math.IsNaN(v) {
		return 0
	}
	return v
}

func compact(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}
