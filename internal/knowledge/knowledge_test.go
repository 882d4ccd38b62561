// internal/knowledge/knowledge_test.go
package knowledge

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Built-in tables
// ==========================

func TestDefault_IsValid(t *testing.T) {
	require.NoError(t, Validate(DefaultData()))

	kb := Default()
	require.NotNil(t, kb)
	assert.Same(t, kb, Default(), "default knowledge base should be built once")

	stats := kb.Stats()
	assert.Equal(t, 15, stats["roles"])
	assert.Equal(t, 19, stats["skills"])
	assert.Equal(t, 8, stats["industries"])
	assert.Equal(t, 9, stats["patterns"])
	assert.Equal(t, 12, stats["catalogs"])
	assert.Equal(t, 5, stats["guides"])
	assert.Equal(t, 2, stats["learningPaths"])
}

func TestDefault_RoleInvariants(t *testing.T) {
	for _, r := range Default().Roles() {
		t.Run(r.Name, func(t *testing.T) {
			assert.NotEmpty(t, r.RequiredSkills)
			assert.LessOrEqual(t, r.SalaryRange.Min, r.SalaryRange.Median)
			assert.LessOrEqual(t, r.SalaryRange.Median, r.SalaryRange.Max)
			assert.NotEmpty(t, r.TransitionsTo)
		})
	}
}

func TestDefault_DeclarationOrder(t *testing.T) {
	roles := Default().Roles()
	require.GreaterOrEqual(t, len(roles), 3)
	assert.Equal(t, "software engineer", roles[0].Name)
	assert.Equal(t, "product manager", roles[1].Name)
	assert.Equal(t, "devops engineer", roles[len(roles)-1].Name)
}

// ==========================
// Lookups
// ==========================

func TestKnowledgeBase_Lookups(t *testing.T) {
	kb := Default()

	pm, ok := kb.Role("product manager")
	require.True(t, ok)
	assert.Equal(t, float64(2200000), pm.SalaryRange.Median)
	assert.Len(t, pm.RequiredSkills, 8)

	_, ok = kb.Role("astronaut")
	assert.False(t, ok)

	sql, ok := kb.Skill("sql")
	require.True(t, ok)
	assert.Equal(t, 2, sql.LearnTimeMonths)
	assert.Equal(t, "low", sql.Difficulty)

	p, ok := kb.Pattern("software engineer", "product manager")
	require.True(t, ok)
	assert.Equal(t, 72, p.SuccessRate)
	assert.Equal(t, 12, p.TimelineMonths)
	assert.Equal(t, "software engineer->product manager", p.Key())

	_, ok = kb.Pattern("product manager", "software engineer")
	assert.False(t, ok)

	c, ok := kb.Catalog("Product Strategy")
	require.True(t, ok)
	assert.Len(t, c.Beginner, 3)

	path, ok := kb.LearningPath("data scientist")
	require.True(t, ok)
	assert.Equal(t, 15, path.WeeklyHours)

	assert.Len(t, kb.Companies("Bengaluru"), 3)
	assert.Nil(t, kb.Companies("Atlantis"))
}

func TestKnowledgeBase_Industry(t *testing.T) {
	kb := Default()

	tests := []struct {
		name    string
		input   string
		wantKey string
		wantOK  bool
	}{
		{name: "by key", input: "tech", wantKey: "tech", wantOK: true},
		{name: "by display name", input: "Healthcare", wantKey: "healthcare", wantOK: true},
		{name: "key inside free text", input: "corporate finance", wantKey: "finance", wantOK: true},
		{name: "partial display name", input: "banking", wantKey: "finance", wantOK: true},
		{name: "unknown", input: "space exploration", wantOK: false},
		{name: "empty", input: "  ", wantOK: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ind, ok := kb.Industry(tt.input)
			assert.Equal(t, tt.wantOK, ok)
			if tt.wantOK {
				assert.Equal(t, tt.wantKey, ind.Key)
			}
		})
	}
}

// ==========================
// Validation
// ==========================

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(d *Data)
		want   string
	}{
		{
			name:   "no roles",
			mutate: func(d *Data) { d.Roles = nil },
			want:   "no roles defined",
		},
		{
			name:   "empty required skills",
			mutate: func(d *Data) { d.Roles[0].RequiredSkills = nil },
			want:   "no required skills",
		},
		{
			name:   "median above max",
			mutate: func(d *Data) { d.Roles[1].SalaryRange.Median = d.Roles[1].SalaryRange.Max + 1 },
			want:   "salary range",
		},
		{
			name:   "uppercase role key",
			mutate: func(d *Data) { d.Roles[2].Name = "Data Scientist" },
			want:   "lowercase",
		},
		{
			name:   "duplicate role",
			mutate: func(d *Data) { d.Roles[3].Name = d.Roles[0].Name },
			want:   "duplicate",
		},
		{
			name:   "bad difficulty",
			mutate: func(d *Data) { d.Skills[0].Difficulty = "extreme" },
			want:   "difficulty",
		},
		{
			name:   "success rate out of range",
			mutate: func(d *Data) { d.Patterns[0].SuccessRate = 120 },
			want:   "success rate",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := DefaultData()
			tt.mutate(&data)

			err := Validate(data)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)
			assert.Contains(t, err.Error(), tt.want)

			_, err = New(data)
			assert.Error(t, err)
		})
	}
}

// ==========================
// Loading
// ==========================

func TestParse_PartialDocumentKeepsDefaults(t *testing.T) {
	doc := []byte(`
roles:
  - name: astronaut
    category: Science
    salaryRange: {min: 1000000, max: 6000000, median: 3000000}
    skills: [physics, fitness, teamwork]
    demandLevel: low
    transitionsTo: [engineer]
`)

	kb, err := Parse(doc)
	require.NoError(t, err)

	require.Len(t, kb.Roles(), 1)
	astro, ok := kb.Role("astronaut")
	require.True(t, ok)
	assert.Equal(t, []string{"physics", "fitness", "teamwork"}, astro.RequiredSkills)

	_, ok = kb.Skill("sql")
	assert.True(t, ok, "skills should fall back to built-in tables")
	_, ok = kb.Pattern("software engineer", "product manager")
	assert.True(t, ok)
}

func TestParse_InvalidDocument(t *testing.T) {
	_, err := Parse([]byte("roles: [this is: not, valid"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode knowledge base")

	_, err = Parse([]byte(`{"roles":[{"name":"x","skills":[]}]}`))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidKnowledgeBase)
}

func TestLoadFile(t *testing.T) {
	kb, err := LoadFile("")
	require.NoError(t, err)
	assert.Same(t, Default(), kb)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)

	raw, err := Marshal(DefaultData())
	require.NoError(t, err)
	path := filepath.Join(t.TempDir(), "kb.yaml")
	require.NoError(t, os.WriteFile(path, raw, 0o600))

	loaded, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, Default().Stats(), loaded.Stats())

	se, ok := loaded.Role("software engineer")
	require.True(t, ok)
	assert.Equal(t, "product manager", se.TransitionsTo[1])
}
