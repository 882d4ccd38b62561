// internal/engine/financial/analyzer_test.go
package financial

import (
	"testing"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestProfile() models.UserProfile {
	return models.UserProfile{
		CurrentTitle:        "Software Engineer",
		DreamRole:           "Product Manager",
		MonthlySalary:       150000,
		MonthlyExpenses:     60000,
		Savings:             900000,
		WeeklyLearningHours: 15,
	}.Sanitize()
}

func actions(f models.FinancialAnalysis) []string {
	out := make([]string, 0, len(f.Recommendations))
	for _, r := range f.Recommendations {
		out = append(out, r.Action)
	}
	return out
}

// ==========================
// Analyze
// ==========================

func TestAnalyzer_Analyze(t *testing.T) {
	a := NewAnalyzer(LoadConfig())
	m := matcher.New(nil, knowledge.Default())

	tests := []struct {
		name           string
		mutate         func(p *models.UserProfile)
		validateOutput func(t *testing.T, f models.FinancialAnalysis)
	}{
		{
			name:   "comfortable runway",
			mutate: func(p *models.UserProfile) {},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, 15, f.CurrentRunway)
				assert.Equal(t, float64(60000), f.MonthlyBurn)
				assert.Equal(t, float64(90000), f.MonthlySavings)
				assert.Equal(t, float64(0), f.BridgeFundNeeded)
				assert.Equal(t, 90, f.HealthScore)
				assert.Equal(t, "Strong Position", f.HealthRating.Label)
				assert.Equal(t, "+22%", f.ProjectedSalaryChange)

				require.Len(t, f.SalaryTrajectory, 4)
				assert.Equal(t, "Current", f.SalaryTrajectory[0].Period)
				assert.Equal(t, float64(1800000), f.SalaryTrajectory[0].Amount)
				assert.Equal(t, float64(1800000), f.SalaryTrajectory[1].Amount)
				assert.InDelta(t, 1980000, f.SalaryTrajectory[2].Amount, 0.01)
				assert.InDelta(t, 2420000, f.SalaryTrajectory[3].Amount, 0.01)
				assert.Equal(t, "Year 2+ (Established)", f.SalaryTrajectory[3].Period)

				assert.Equal(t, []string{"Create Transition Budget", "Consider Aggressive Timeline"}, actions(f))
				assert.Equal(t, "Budget ₹45K for learning", f.Recommendations[0].Timeline)
			},
		},
		{
			name: "thin runway with heavy debt",
			mutate: func(p *models.UserProfile) {
				p.MonthlySalary = 50000
				p.MonthlyExpenses = 40000
				p.MonthlyDebtPayments = 20000
				p.Savings = 100000
				p.WeeklyLearningHours = 10
			},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, 1, f.CurrentRunway)
				assert.Equal(t, float64(-10000), f.MonthlySavings)
				assert.Equal(t, float64(300000), f.BridgeFundNeeded)
				assert.Equal(t, 20, f.HealthScore)
				assert.Equal(t, "High Risk", f.HealthRating.Label)
				assert.Equal(t, "🚨", f.HealthRating.Icon)

				assert.Equal(t, []string{"Build Emergency Fund", "Reduce Debt Burden", "Create Transition Budget"}, actions(f))
				assert.Equal(t, "Accumulate ₹3.0L before transitioning", f.Recommendations[0].Detail)
				assert.Equal(t, "30 months if saving 20% of salary", f.Recommendations[0].Timeline)
				assert.Equal(t, "Budget ₹40K for learning", f.Recommendations[2].Timeline)
			},
		},
		{
			name: "moderate runway",
			mutate: func(p *models.UserProfile) {
				p.MonthlySalary = 100000
				p.MonthlyExpenses = 50000
				p.Savings = 400000
			},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, 8, f.CurrentRunway)
				assert.Equal(t, 75, f.HealthScore)
				assert.Equal(t, "Adequate Runway", f.HealthRating.Label)
				assert.Equal(t, []string{"Create Transition Budget"}, actions(f))
			},
		},
		{
			name: "no burn gives the sentinel runway",
			mutate: func(p *models.UserProfile) {
				p.MonthlySalary = 0
				p.MonthlyExpenses = 0
				p.Savings = 0
			},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, 999, f.CurrentRunway)
				assert.Equal(t, "+0%", f.ProjectedSalaryChange)
				assert.Equal(t, 80, f.HealthScore)
			},
		},
		{
			name: "no income and no savings",
			mutate: func(p *models.UserProfile) {
				p.MonthlySalary = 0
				p.MonthlyExpenses = 10000
				p.Savings = 0
			},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, 0, f.CurrentRunway)
				assert.Equal(t, float64(60000), f.BridgeFundNeeded)
				assert.Equal(t, 30, f.HealthScore)
				assert.Equal(t, "Depends on income", f.Recommendations[0].Timeline)
			},
		},
		{
			name: "unmatched target carries the current salary",
			mutate: func(p *models.UserProfile) {
				p.DreamRole = "Astronaut"
			},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, "+0%", f.ProjectedSalaryChange)
				assert.InDelta(t, 1800000*1.1, f.SalaryTrajectory[3].Amount, 0.01)
			},
		},
		{
			name: "founder median is zero",
			mutate: func(p *models.UserProfile) {
				p.DreamRole = "Startup Founder"
			},
			validateOutput: func(t *testing.T, f models.FinancialAnalysis) {
				assert.Equal(t, "-100%", f.ProjectedSalaryChange)
				assert.Equal(t, float64(0), f.SalaryTrajectory[1].Amount)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestProfile()
			tt.mutate(&p)
			f := a.Analyze(p, m.Lookup(p.DreamRole))

			assert.GreaterOrEqual(t, f.HealthScore, 20)
			assert.LessOrEqual(t, f.HealthScore, 100)
			tt.validateOutput(t, f)
		})
	}
}

func TestAnalyzer_HealthMonotonicInRunway(t *testing.T) {
	a := NewAnalyzer(nil)
	p := createTestProfile()

	prev := 0
	for _, savings := range []float64{0, 120000, 300000, 360000, 720000, 1500000} {
		p.Savings = savings
		f := a.Analyze(p, nil)
		assert.GreaterOrEqual(t, f.HealthScore, prev, "savings %v", savings)
		prev = f.HealthScore
	}
}

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{15000000, "1.5Cr"},
		{10000000, "1.0Cr"},
		{250000, "2.5L"},
		{45000, "45K"},
		{1000, "1K"},
		{999, "999"},
		{0, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(tt.amount))
		})
	}
}

func TestSalaryChange(t *testing.T) {
	assert.Equal(t, "+0%", salaryChange(0, 100))
	assert.Equal(t, "+0%", salaryChange(100, 100))
	assert.Equal(t, "+50%", salaryChange(100, 150))
	assert.Equal(t, "-25%", salaryChange(100, 75))
}
