// internal/engine/skillgap/analyzer_test.go
package skillgap

import (
	"strings"
	"testing"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestAnalyzer(src variety.Source) (*Analyzer, *matcher.Matcher) {
	kb := knowledge.Default()
	m := matcher.New(nil, kb)
	return NewAnalyzer(LoadConfig(), kb, m, src), m
}

func createTestProfile() models.UserProfile {
	return models.UserProfile{
		CurrentTitle:        "Software Engineer",
		YearsExperience:     6,
		Skills:              []string{"programming", "communication"},
		DreamRole:           "Product Manager",
		WeeklyLearningHours: 15,
		RiskTolerance:       3,
	}.Sanitize()
}

func names[T any](items []T, name func(T) string) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, name(it))
	}
	return out
}

func acquireNames(g models.SkillGap) []string {
	return names(g.SkillsToAcquire, func(s models.SkillAcquire) string { return s.Name })
}

func haveNames(g models.SkillGap) []string {
	return names(g.SkillsYouHave, func(s models.SkillHave) string { return s.Name })
}

// ==========================
// Analyze
// ==========================

func TestAnalyzer_Analyze(t *testing.T) {
	a, m := createTestAnalyzer(nil)

	tests := []struct {
		name           string
		mutate         func(p *models.UserProfile)
		validateOutput func(t *testing.T, g models.SkillGap)
	}{
		{
			name:   "software engineer to product manager",
			mutate: func(p *models.UserProfile) {},
			validateOutput: func(t *testing.T, g models.SkillGap) {
				assert.Equal(t, []string{"Communication"}, haveNames(g))
				assert.Equal(t, 75, g.SkillsYouHave[0].Proficiency)
				assert.Equal(t, "Soft", g.SkillsYouHave[0].Category)

				assert.Equal(t, []string{
					"Product Strategy", "User Research", "Data Analysis",
					"Roadmapping", "Stakeholder Management", "Agile", "Prioritization",
					"Sql",
				}, acquireNames(g))
				assert.Equal(t, 89, g.GapPercentage)
				// 84 weeks / 4 / 1.5
				assert.Equal(t, 14, g.EstimatedLearningMonths)

				last := g.SkillsToAcquire[len(g.SkillsToAcquire)-1]
				assert.Equal(t, PriorityLow, last.Priority)
				assert.Equal(t, ImportanceRecommended, last.Importance)
				assert.Equal(t, 8, last.LearnTimeWeeks)
				assert.Equal(t, []string{"SQLZoo", "Mode SQL Tutorial", "W3Schools SQL"}, last.Resources)

				roadmapping := g.SkillsToAcquire[3]
				assert.Equal(t, 12, roadmapping.LearnTimeWeeks)
				assert.Equal(t, []string{"Online courses", "Books", "Practice"}, roadmapping.Resources)

				assert.Contains(t, g.Summary, "You'll need to develop 8 new skills")
			},
		},
		{
			name: "unmatched target uses the generic list",
			mutate: func(p *models.UserProfile) {
				p.DreamRole = "Astronaut"
				p.Skills = nil
				p.WeeklyLearningHours = 10
			},
			validateOutput: func(t *testing.T, g models.SkillGap) {
				assert.Empty(t, g.SkillsYouHave)
				assert.Equal(t, []string{"Communication", "Problem Solving", "Leadership"}, acquireNames(g))
				assert.Equal(t, 100, g.GapPercentage)
				assert.Equal(t, 10, g.EstimatedLearningMonths)
				for _, s := range g.SkillsToAcquire {
					assert.Equal(t, PriorityHigh, s.Priority)
				}
			},
		},
		{
			name: "adjacent skill the user already has is skipped",
			mutate: func(p *models.UserProfile) {
				p.Skills = []string{"SQL", "product strategy", "user research", "data analysis"}
			},
			validateOutput: func(t *testing.T, g models.SkillGap) {
				assert.NotContains(t, acquireNames(g), "Sql")
				assert.Len(t, g.SkillsYouHave, 3)
				assert.Equal(t, 63, g.GapPercentage)
				assert.Contains(t, g.Summary, "Create a structured learning plan")
			},
		},
		{
			name: "small gap summary",
			mutate: func(p *models.UserProfile) {
				p.DreamRole = "Data Scientist"
				p.Skills = []string{"python", "machine learning", "statistics", "sql", "data visualization", "deep learning", "communication", "cloud platforms"}
			},
			validateOutput: func(t *testing.T, g models.SkillGap) {
				assert.Len(t, g.SkillsYouHave, 7)
				assert.Empty(t, g.SkillsToAcquire)
				assert.Equal(t, 0, g.GapPercentage)
				assert.Equal(t, 0, g.EstimatedLearningMonths)
				assert.True(t, strings.HasPrefix(g.Summary, "Excellent!"))
			},
		},
		{
			name: "synonym covers a required skill",
			mutate: func(p *models.UserProfile) {
				p.DreamRole = "Software Engineer"
				p.Skills = []string{"coding"}
			},
			validateOutput: func(t *testing.T, g models.SkillGap) {
				assert.Contains(t, haveNames(g), "Programming")
				assert.NotContains(t, acquireNames(g), "Programming")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := createTestProfile()
			tt.mutate(&p)
			tt.validateOutput(t, a.Analyze(p, m.Lookup(p.DreamRole)))
		})
	}
}

func TestAnalyzer_Partition(t *testing.T) {
	a, m := createTestAnalyzer(nil)

	skillSets := [][]string{
		nil,
		{"programming"},
		{"figma", "user research", "writing"},
		{"excel", "sql", "stakeholder management", "documentation"},
	}

	for _, role := range knowledge.Default().Roles() {
		for _, skills := range skillSets {
			p := createTestProfile()
			p.DreamRole = role.Name
			p.Skills = skills

			g := a.Analyze(p, m.Lookup(p.DreamRole))

			seen := map[string]int{}
			for _, n := range haveNames(g) {
				seen[strings.ToLower(n)]++
			}
			for _, s := range g.SkillsToAcquire {
				if s.Importance == ImportanceRequired {
					seen[strings.ToLower(s.Name)]++
				}
			}
			require.GreaterOrEqual(t, len(g.SkillsYouHave)+len(g.SkillsToAcquire), len(role.RequiredSkills))
			for _, req := range role.RequiredSkills {
				assert.Equal(t, 1, seen[req], "%s / %s", role.Name, req)
			}
		}
	}
}

func TestAnalyzer_PriorityOrder(t *testing.T) {
	a, m := createTestAnalyzer(nil)
	p := createTestProfile()
	p.DreamRole = "DevOps Engineer"
	p.Skills = []string{"docker"}

	g := a.Analyze(p, m.Lookup(p.DreamRole))
	last := -1
	for _, s := range g.SkillsToAcquire {
		rank := priorityOrder[s.Priority]
		assert.GreaterOrEqual(t, rank, last)
		last = rank
	}
	assert.Equal(t, "Cloud Platforms", g.SkillsToAcquire[0].Name)
	assert.Equal(t, "Ci/cd", g.SkillsToAcquire[1].Name)
}

func TestAnalyzer_ZeroHoursDoesNotDivideByZero(t *testing.T) {
	a, m := createTestAnalyzer(nil)
	p := createTestProfile()
	p.WeeklyLearningHours = 0

	g := a.Analyze(p, m.Lookup(p.DreamRole))
	// 84 weeks / 4 / 0.1
	assert.Equal(t, 210, g.EstimatedLearningMonths)
}

func TestAnalyzer_SeededProficiencyInRange(t *testing.T) {
	a, m := createTestAnalyzer(variety.Seeded(42))
	p := createTestProfile()
	p.DreamRole = "Data Scientist"
	p.Skills = []string{"python", "statistics", "sql", "communication"}

	for i := 0; i < 20; i++ {
		g := a.Analyze(p, m.Lookup(p.DreamRole))
		require.NotEmpty(t, g.SkillsYouHave)
		for _, s := range g.SkillsYouHave {
			assert.GreaterOrEqual(t, s.Proficiency, 60)
			assert.Less(t, s.Proficiency, 90)
		}
	}
}
