// internal/engine/skillgap/config.go
package skillgap

type Config struct {
	// FallbackSkills stands in for the required list of an unmatched target.
	FallbackSkills []string
	DefaultSkill   SkillDefaults

	HighPriorityCount int
	AdjacentLimit     int
	AdjacentWeeks     int
	Adjacent          map[string][]string
	DefaultAdjacent   []string

	ProficiencyMin float64
	ProficiencyMax float64

	// Hours per week that count as one unit of learning pace.
	PaceHours float64
}

type SkillDefaults struct {
	LearnTimeMonths int
	Difficulty      string
	Resources       []string
	Category        string
}

func LoadConfig() *Config {
	return &Config{
		FallbackSkills: []string{"communication", "problem solving", "leadership"},
		DefaultSkill: SkillDefaults{
			LearnTimeMonths: 3,
			Difficulty:      "medium",
			Resources:       []string{"Online courses", "Books", "Practice"},
			Category:        "General",
		},
		HighPriorityCount: 3,
		AdjacentLimit:     2,
		AdjacentWeeks:     8,
		Adjacent: map[string][]string{
			"product manager": {"sql", "user research", "a/b testing"},
			"data scientist":  {"cloud platforms", "communication", "business acumen"},
			"ux designer":     {"front-end basics", "analytics", "copywriting"},
			"startup founder": {"financial modeling", "marketing", "legal basics"},
		},
		DefaultAdjacent: []string{"communication", "problem solving"},
		ProficiencyMin:  60,
		ProficiencyMax:  90,
		PaceHours:       10,
	}
}
