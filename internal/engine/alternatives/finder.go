// internal/engine/alternatives/finder.go
package alternatives

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

type Finder struct {
	config  *Config
	kb      *knowledge.KnowledgeBase
	matcher *matcher.Matcher
	variety variety.Source
}

func NewFinder(config *Config, kb *knowledge.KnowledgeBase, m *matcher.Matcher, src variety.Source) *Finder {
	if config == nil {
		config = LoadConfig()
	}
	if src == nil {
		src = variety.Fixed{}
	}
	return &Finder{config: config, kb: kb, matcher: m, variety: src}
}

// Find ranks the roles reachable from current, excluding the user's own
// target, and tops the list up with popular roles.
func (f *Finder) Find(profile models.UserProfile, current *knowledge.RoleProfile) []models.Alternative {
	cfg := f.config
	currentKey := matcher.Normalize(profile.CurrentTitle)
	targetKey := matcher.Normalize(profile.DreamRole)

	var out []models.Alternative
	if current != nil {
		for _, alt := range current.TransitionsTo {
			if strings.ToLower(alt) == targetKey {
				continue
			}
			out = append(out, f.candidate(profile, current, currentKey, alt))
		}
	}

	for _, role := range cfg.PopularRoles {
		if role == targetKey || listed(out, role) {
			continue
		}
		data, ok := f.kb.Role(role)
		if !ok {
			continue
		}
		out = append(out, models.Alternative{
			Role:         matcher.Title(role),
			MatchScore:   int(cfg.BackfillBase + math.Round(f.variety.Float64()*cfg.BackfillJitter)),
			Timeline:     cfg.BackfillTimeline,
			SalaryChange: cfg.BackfillSalary,
			Difficulty:   "Medium",
			WhyConsider:  cfg.BackfillReason,
			DemandLevel:  data.DemandLevel,
		})
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].MatchScore > out[j].MatchScore })
	if len(out) > cfg.Limit {
		out = out[:cfg.Limit]
	}
	return out
}

func (f *Finder) candidate(profile models.UserProfile, current *knowledge.RoleProfile, currentKey, alt string) models.Alternative {
	cfg := f.config
	altData := f.matcher.Lookup(alt)

	overlap := f.matcher.SkillOverlap(current, altData)
	score := int(math.Round(cfg.BaseScore + overlap*cfg.OverlapWeight + variety.Between(f.variety, 0, cfg.JitterRange)))

	demand := cfg.UnknownDemand
	if altData != nil && altData.DemandLevel != "" {
		demand = altData.DemandLevel
	}

	return models.Alternative{
		Role:         matcher.Title(alt),
		MatchScore:   min(cfg.MaxScore, score),
		Timeline:     f.timeline(currentKey, alt, profile.WeeklyLearningHours),
		SalaryChange: salaryChange(current, altData),
		Difficulty:   f.difficulty(overlap),
		WhyConsider:  f.whyConsider(alt),
		DemandLevel:  demand,
	}
}

func (f *Finder) timeline(from, to string, hours float64) string {
	p, ok := f.kb.Pattern(from, to)
	if !ok {
		return f.config.DefaultTimeline
	}
	months := p.TimelineMonths
	if hours >= f.config.FastHours {
		months = int(math.Round(float64(months) * f.config.PatternFastFactor))
	}
	return fmt.Sprintf("%d-%d months", months-2, months+2)
}

func (f *Finder) difficulty(overlap float64) string {
	switch {
	case overlap > f.config.LowDifficultyOverlap:
		return "Low"
	case overlap > f.config.MediumDifficultyOverlap:
		return "Medium"
	default:
		return "High"
	}
}

func (f *Finder) whyConsider(role string) string {
	if r, ok := f.config.Reasons[role]; ok {
		return r
	}
	return f.config.DefaultWhy
}

func salaryChange(from, to *knowledge.RoleProfile) string {
	if from == nil || to == nil || from.SalaryRange.Median == 0 {
		return "Variable"
	}
	change := (to.SalaryRange.Median - from.SalaryRange.Median) / from.SalaryRange.Median * 100
	switch {
	case change > 0:
		return fmt.Sprintf("+%d%%", int(math.Round(change)))
	case change < 0:
		return fmt.Sprintf("%d%%", int(math.Round(change)))
	}
	return "Similar"
}

func listed(alts []models.Alternative, role string) bool {
	for _, a := range alts {
		if strings.ToLower(a.Role) == role {
			return true
		}
	}
	return false
}
