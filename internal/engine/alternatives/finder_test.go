// internal/engine/alternatives/finder_test.go
package alternatives

import (
	"testing"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestFinder(src variety.Source) (*Finder, *matcher.Matcher) {
	kb := knowledge.Default()
	m := matcher.New(nil, kb)
	return NewFinder(LoadConfig(), kb, m, src), m
}

func createTestProfile() models.UserProfile {
	return models.UserProfile{
		CurrentTitle:        "Software Engineer",
		DreamRole:           "Product Manager",
		WeeklyLearningHours: 15,
	}.Sanitize()
}

func roles(alts []models.Alternative) []string {
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		out = append(out, a.Role)
	}
	return out
}

func byRole(alts []models.Alternative, role string) *models.Alternative {
	for i := range alts {
		if alts[i].Role == role {
			return &alts[i]
		}
	}
	return nil
}

// ==========================
// Find
// ==========================

func TestFinder_Find_SoftwareEngineer(t *testing.T) {
	f, m := createTestFinder(nil)
	p := createTestProfile()

	alts := f.Find(p, m.Lookup(p.CurrentTitle))

	require.Len(t, alts, 4)
	assert.Equal(t, []string{"Data Engineer", "Tech Lead", "Solutions Architect", "Engineering Manager"}, roles(alts))

	de := alts[0]
	assert.Equal(t, 95, de.MatchScore)
	assert.Equal(t, "Low", de.Difficulty)
	assert.Equal(t, "Similar", de.SalaryChange)
	assert.Equal(t, "Growing field with good opportunities", de.WhyConsider)

	lead := alts[1]
	assert.Equal(t, 67, lead.MatchScore)
	assert.Equal(t, "Variable", lead.SalaryChange)
	assert.Equal(t, "medium", lead.DemandLevel)
	assert.Equal(t, "High", lead.Difficulty)
	assert.Equal(t, "Stay technical while leading, high impact", lead.WhyConsider)

	em := alts[3]
	assert.Equal(t, 55, em.MatchScore)
	assert.Equal(t, "+47%", em.SalaryChange)
	assert.Equal(t, "12-18 months", em.Timeline)
}

func TestFinder_Find_FullRanking(t *testing.T) {
	f, m := createTestFinder(nil)
	f.config.Limit = 20
	p := createTestProfile()

	alts := f.Find(p, m.Lookup(p.CurrentTitle))

	assert.NotContains(t, roles(alts), "Product Manager")

	founder := byRole(alts, "Startup Founder")
	require.NotNil(t, founder)
	assert.Equal(t, "3-7 months", founder.Timeline)
	assert.Equal(t, "-100%", founder.SalaryChange)
	assert.Equal(t, "Ultimate autonomy, unlimited upside potential", founder.WhyConsider)

	devops := byRole(alts, "Devops Engineer")
	require.NotNil(t, devops)
	assert.Equal(t, "+20%", devops.SalaryChange)
	assert.Equal(t, knowledge.DemandVeryHigh, devops.DemandLevel)

	ux := byRole(alts, "Ux Designer")
	require.NotNil(t, ux)
	assert.Equal(t, 55, ux.MatchScore)
	assert.Equal(t, "+15-30%", ux.SalaryChange)
	assert.Equal(t, "High demand role with good growth prospects", ux.WhyConsider)
	assert.Equal(t, knowledge.DemandHigh, ux.DemandLevel)

	assert.Len(t, alts, 9)
}

func TestFinder_Find_UnmatchedCurrentRole(t *testing.T) {
	f, m := createTestFinder(nil)
	p := createTestProfile()
	p.CurrentTitle = "Astronaut"

	alts := f.Find(p, m.Lookup(p.CurrentTitle))

	assert.Equal(t, []string{"Data Scientist", "Ux Designer", "Consultant"}, roles(alts))
	for _, a := range alts {
		assert.Equal(t, "12-18 months", a.Timeline)
		assert.Equal(t, "Medium", a.Difficulty)
	}
}

func TestFinder_Find_ExcludesTarget(t *testing.T) {
	f, m := createTestFinder(nil)
	p := createTestProfile()
	p.CurrentTitle = "Teacher"
	p.DreamRole = "Corporate Trainer"
	f.config.Limit = 20

	alts := f.Find(p, m.Lookup(p.CurrentTitle))
	assert.NotContains(t, roles(alts), "Corporate Trainer")
	assert.Contains(t, roles(alts), "Curriculum Designer")
}

func TestFinder_Find_OrderAndBounds(t *testing.T) {
	f, m := createTestFinder(variety.Seeded(7))

	for _, r := range knowledge.Default().Roles() {
		p := createTestProfile()
		p.CurrentTitle = r.Name

		for i := 0; i < 5; i++ {
			alts := f.Find(p, m.Lookup(p.CurrentTitle))
			require.LessOrEqual(t, len(alts), 4)
			for j, a := range alts {
				assert.LessOrEqual(t, a.MatchScore, 95)
				assert.GreaterOrEqual(t, a.MatchScore, 40)
				if j > 0 {
					assert.GreaterOrEqual(t, alts[j-1].MatchScore, a.MatchScore)
				}
			}
		}
	}
}

func TestSalaryChange(t *testing.T) {
	low := &knowledge.RoleProfile{SalaryRange: knowledge.SalaryRange{Median: 100}}
	high := &knowledge.RoleProfile{SalaryRange: knowledge.SalaryRange{Median: 150}}
	zero := &knowledge.RoleProfile{}

	assert.Equal(t, "+50%", salaryChange(low, high))
	assert.Equal(t, "-33%", salaryChange(high, low))
	assert.Equal(t, "Similar", salaryChange(low, low))
	assert.Equal(t, "Variable", salaryChange(nil, low))
	assert.Equal(t, "Variable", salaryChange(zero, low))
}
