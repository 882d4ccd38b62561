// internal/engine/feasibility/scorer_test.go
package feasibility

import (
	"testing"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestScorer() (*Scorer, *matcher.Matcher) {
	kb := knowledge.Default()
	m := matcher.New(nil, kb)
	return NewScorer(LoadConfig(), kb, m), m
}

func createTestProfile() models.UserProfile {
	return models.UserProfile{
		CurrentTitle:        "Software Engineer",
		YearsExperience:     6,
		Skills:              []string{"programming", "communication"},
		DreamRole:           "Product Manager",
		MonthlySalary:       150000,
		MonthlyExpenses:     60000,
		Savings:             900000,
		WeeklyLearningHours: 15,
		RiskTolerance:       3,
	}.Sanitize()
}

func factorNames(f models.Feasibility) []string {
	out := make([]string, 0, len(f.Factors))
	for _, x := range f.Factors {
		out = append(out, x.Name)
	}
	return out
}

// ==========================
// Score
// ==========================

func TestScorer_Score(t *testing.T) {
	s, m := createTestScorer()

	tests := []struct {
		name           string
		mutate         func(p *models.UserProfile)
		validateOutput func(t *testing.T, f models.Feasibility)
	}{
		{
			name:   "known pattern seeds score and is clamped",
			mutate: func(p *models.UserProfile) {},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				assert.Equal(t, 95, f.Score)
				assert.Equal(t, "Highly Feasible", f.Rating.Label)
				assert.Equal(t, "emerald", f.Rating.Color)
				assert.Equal(t, []string{"Known Transition Path", "Experience Level", "Learning Commitment", "Industry Knowledge"}, factorNames(f))
				assert.Equal(t, "This is a well-documented career transition with 72% success rate", f.Factors[0].Description)
				assert.Equal(t, "15 hours/week for learning significantly accelerates transition", f.Factors[2].Description)
				assert.Contains(t, f.Summary, "Your transition to Product Manager is highly achievable")
			},
		},
		{
			name: "seniority prefix still hits the pattern",
			mutate: func(p *models.UserProfile) {
				p.CurrentTitle = "Senior Software Engineer"
				p.YearsExperience = 3
				p.WeeklyLearningHours = 10
			},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				// 72 + 8 same category
				assert.Equal(t, 80, f.Score)
				assert.Equal(t, "Known Transition Path", f.Factors[0].Name)
			},
		},
		{
			name: "unknown pair falls back to skill overlap",
			mutate: func(p *models.UserProfile) {
				p.CurrentTitle = "Product Manager"
				p.DreamRole = "Data Scientist"
				p.YearsExperience = 3
				p.WeeklyLearningHours = 10
			},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				// 40 + 0.125*50 + 8 = 54.25
				assert.Equal(t, 54, f.Score)
				assert.Equal(t, "Challenging", f.Rating.Label)
				require.Len(t, f.Factors, 2)
				assert.Equal(t, "Skill Transferability", f.Factors[0].Name)
				assert.Equal(t, ImpactNeutral, f.Factors[0].Impact)
				assert.Equal(t, "13% of your skills are relevant to the target role", f.Factors[0].Description)
			},
		},
		{
			name: "unmatched target uses default overlap",
			mutate: func(p *models.UserProfile) {
				p.CurrentTitle = "Teacher"
				p.DreamRole = "Astronaut"
				p.YearsExperience = 3
				p.WeeklyLearningHours = 10
			},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				assert.Equal(t, 55, f.Score)
				assert.Equal(t, "30% of your skills are relevant to the target role", f.Factors[0].Description)
				assert.Contains(t, f.Summary, "This transition to Astronaut is challenging")
			},
		},
		{
			name: "penalties stack and clamp at the floor",
			mutate: func(p *models.UserProfile) {
				p.CurrentTitle = "Teacher"
				p.DreamRole = "DevOps Engineer"
				p.YearsExperience = 0
				p.WeeklyLearningHours = 2
				p.Constraints = []string{"Family", "location"}
			},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				assert.Equal(t, 15, f.Score)
				assert.Equal(t, "Difficult", f.Rating.Label)
				assert.Equal(t, []string{"Skill Transferability", "Experience Level", "Learning Time", "Family Responsibilities", "Location Constraint"}, factorNames(f))
				assert.Equal(t, ImpactCaution, f.Factors[3].Impact)
			},
		},
		{
			name: "known pattern without matched target",
			mutate: func(p *models.UserProfile) {
				p.CurrentTitle = "Teacher"
				p.DreamRole = "Corporate Trainer"
				p.YearsExperience = 1
				p.WeeklyLearningHours = 3
				p.Constraints = []string{"family", "location"}
			},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				// 85 - 10 - 10 - 5 - 5
				assert.Equal(t, 55, f.Score)
				assert.NotContains(t, factorNames(f), "Industry Knowledge")
			},
		},
		{
			name: "empty dream role uses generic summary",
			mutate: func(p *models.UserProfile) {
				p.DreamRole = ""
			},
			validateOutput: func(t *testing.T, f models.Feasibility) {
				assert.Contains(t, f.Summary, "your target role")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestProfile()
			tt.mutate(&p)
			f := s.Score(p, m.Lookup(p.CurrentTitle), m.Lookup(p.DreamRole))

			assert.GreaterOrEqual(t, f.Score, 15)
			assert.LessOrEqual(t, f.Score, 95)
			tt.validateOutput(t, f)
		})
	}
}

func TestScorer_Deterministic(t *testing.T) {
	s, m := createTestScorer()
	p := createTestProfile()
	first := s.Score(p, m.Lookup(p.CurrentTitle), m.Lookup(p.DreamRole))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, s.Score(p, m.Lookup(p.CurrentTitle), m.Lookup(p.DreamRole)))
	}
}

func TestRate(t *testing.T) {
	assert.Equal(t, "Highly Feasible", Rate(80).Label)
	assert.Equal(t, "Achievable", Rate(79).Label)
	assert.Equal(t, "Achievable", Rate(60).Label)
	assert.Equal(t, "Challenging", Rate(40).Label)
	assert.Equal(t, "Difficult", Rate(39).Label)
}

func TestScorer_CustomConfig(t *testing.T) {
	kb := knowledge.Default()
	m := matcher.New(nil, kb)
	cfg := LoadConfig()
	cfg.MaxScore = 90
	s := NewScorer(cfg, kb, m)

	p := createTestProfile()
	f := s.Score(p, m.Lookup(p.CurrentTitle), m.Lookup(p.DreamRole))
	assert.Equal(t, 90, f.Score)
}
