// internal/engine/skillgap/analyzer.go
package skillgap

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/engine/variety"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

const (
	PriorityHigh   = "High"
	PriorityMedium = "Medium"
	PriorityLow    = "Low"

	ImportanceRequired    = "Required"
	ImportanceRecommended = "Recommended"
)

var priorityOrder = map[string]int{
	PriorityHigh:   0,
	PriorityMedium: 1,
	PriorityLow:    2,
}

type Analyzer struct {
	config  *Config
	kb      *knowledge.KnowledgeBase
	matcher *matcher.Matcher
	variety variety.Source
}

func NewAnalyzer(config *Config, kb *knowledge.KnowledgeBase, m *matcher.Matcher, src variety.Source) *Analyzer {
	if config == nil {
		config = LoadConfig()
	}
	if src == nil {
		src = variety.Fixed{}
	}
	return &Analyzer{config: config, kb: kb, matcher: m, variety: src}
}

// Analyze splits the target's required skills into those the user already
// covers and those still to learn, then appends adjacent bonus skills.
func (a *Analyzer) Analyze(profile models.UserProfile, target *knowledge.RoleProfile) models.SkillGap {
	cfg := a.config
	userSkills := profile.LowerSkills()

	required := cfg.FallbackSkills
	if target != nil && len(target.RequiredSkills) > 0 {
		required = target.RequiredSkills
	}

	have := make([]models.SkillHave, 0, len(required))
	acquire := make([]models.SkillAcquire, 0, len(required)+cfg.AdjacentLimit)

	for i, skill := range required {
		sp := a.skillProfile(skill)

		if a.matcher.HasSkill(userSkills, skill) {
			have = append(have, models.SkillHave{
				Name:        matcher.Title(skill),
				Proficiency: int(variety.Between(a.variety, cfg.ProficiencyMin, cfg.ProficiencyMax)),
				Category:    sp.Category,
			})
			continue
		}

		priority := PriorityMedium
		if i < cfg.HighPriorityCount {
			priority = PriorityHigh
		}
		acquire = append(acquire, models.SkillAcquire{
			Name:           matcher.Title(skill),
			Importance:     ImportanceRequired,
			LearnTimeWeeks: sp.LearnTimeMonths * 4,
			Difficulty:     sp.Difficulty,
			Resources:      sp.Resources,
			Priority:       priority,
		})
	}

	acquire = a.appendAdjacent(acquire, userSkills, matcher.Normalize(profile.DreamRole))

	sort.SliceStable(acquire, func(i, j int) bool {
		return priorityOrder[acquire[i].Priority] < priorityOrder[acquire[j].Priority]
	})

	gap := gapPercentage(len(have), len(acquire))

	return models.SkillGap{
		SkillsYouHave:           have,
		SkillsToAcquire:         acquire,
		GapPercentage:           gap,
		EstimatedLearningMonths: a.learningMonths(acquire, profile.WeeklyLearningHours),
		Summary:                 summarize(len(have), len(acquire), gap),
	}
}

func (a *Analyzer) appendAdjacent(acquire []models.SkillAcquire, userSkills []string, target string) []models.SkillAcquire {
	cfg := a.config
	adjacent, ok := cfg.Adjacent[target]
	if !ok {
		adjacent = cfg.DefaultAdjacent
	}
	if len(adjacent) > cfg.AdjacentLimit {
		adjacent = adjacent[:cfg.AdjacentLimit]
	}

	for _, skill := range adjacent {
		if containsSkill(acquire, skill) || a.matcher.HasSkill(userSkills, skill) {
			continue
		}
		resources := []string{"Online learning"}
		if sp, ok := a.kb.Skill(skill); ok && len(sp.Resources) > 0 {
			resources = sp.Resources
		}
		acquire = append(acquire, models.SkillAcquire{
			Name:           matcher.Title(skill),
			Importance:     ImportanceRecommended,
			LearnTimeWeeks: cfg.AdjacentWeeks,
			Difficulty:     "medium",
			Resources:      resources,
			Priority:       PriorityLow,
		})
	}
	return acquire
}

func (a *Analyzer) skillProfile(name string) knowledge.SkillProfile {
	if sp, ok := a.kb.Skill(name); ok {
		return sp
	}
	d := a.config.DefaultSkill
	return knowledge.SkillProfile{
		Name:            name,
		Category:        d.Category,
		LearnTimeMonths: d.LearnTimeMonths,
		Difficulty:      d.Difficulty,
		Resources:       d.Resources,
	}
}

func (a *Analyzer) learningMonths(acquire []models.SkillAcquire, hours float64) int {
	weeks := 0
	for _, s := range acquire {
		weeks += s.LearnTimeWeeks
	}
	pace := math.Max(hours, 1) / a.config.PaceHours
	return int(math.Ceil(float64(weeks) / 4 / pace))
}

func containsSkill(list []models.SkillAcquire, name string) bool {
	for _, s := range list {
		if strings.ToLower(s.Name) == name {
			return true
		}
	}
	return false
}

func gapPercentage(have, acquire int) int {
	total := have + acquire
	if total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(acquire) / float64(total)))
}

func summarize(have, need, gap int) string {
	switch {
	case gap < 30:
		return fmt.Sprintf("Excellent! You already have %d relevant skills. Only %d skills to develop for a smooth transition.", have, need)
	case gap < 60:
		return fmt.Sprintf("You have a solid foundation with %d relevant skills. Focus on acquiring the %d remaining skills systematically.", have, need)
	}
	return fmt.Sprintf("You'll need to develop %d new skills. Create a structured learning plan and consider courses or bootcamps to accelerate.", need)
}
