// internal/engine/feasibility/scorer.go
package feasibility

import (
	"fmt"
	"math"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

const (
	ImpactPositive = "positive"
	ImpactNegative = "negative"
	ImpactNeutral  = "neutral"
	ImpactCaution  = "caution"
)

type Scorer struct {
	config  *Config
	kb      *knowledge.KnowledgeBase
	matcher *matcher.Matcher
}

func NewScorer(config *Config, kb *knowledge.KnowledgeBase, m *matcher.Matcher) *Scorer {
	if config == nil {
		config = LoadConfig()
	}
	return &Scorer{config: config, kb: kb, matcher: m}
}

// Score rates how achievable the move from current to target is. Either role
// may be nil when the matcher found nothing.
func (s *Scorer) Score(profile models.UserProfile, current, target *knowledge.RoleProfile) models.Feasibility {
	cfg := s.config
	score := cfg.BaseScore
	var factors []models.Factor

	if pattern, ok := s.kb.Pattern(matcher.Normalize(profile.CurrentTitle), matcher.Normalize(profile.DreamRole)); ok {
		score = float64(pattern.SuccessRate)
		factors = append(factors, models.Factor{
			Name:        "Known Transition Path",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("This is a well-documented career transition with %d%% success rate", pattern.SuccessRate),
		})
	} else {
		overlap := s.matcher.SkillOverlap(current, target)
		score = cfg.OverlapBase + overlap*cfg.OverlapWeight
		impact := ImpactNeutral
		if overlap > 0.5 {
			impact = ImpactPositive
		}
		factors = append(factors, models.Factor{
			Name:        "Skill Transferability",
			Impact:      impact,
			Description: fmt.Sprintf("%d%% of your skills are relevant to the target role", int(math.Round(overlap*100))),
		})
	}

	if profile.YearsExperience >= cfg.SeniorYears {
		score += cfg.ExperienceAdjust
		factors = append(factors, models.Factor{
			Name:        "Experience Level",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%d years of experience shows strong professional foundation", profile.YearsExperience),
		})
	} else if profile.YearsExperience < cfg.JuniorYears {
		score -= cfg.ExperienceAdjust
		factors = append(factors, models.Factor{
			Name:        "Experience Level",
			Impact:      ImpactNegative,
			Description: "Less experience means more to prove, but also more flexibility",
		})
	}

	if profile.WeeklyLearningHours >= cfg.HighHours {
		score += cfg.HoursAdjust
		factors = append(factors, models.Factor{
			Name:        "Learning Commitment",
			Impact:      ImpactPositive,
			Description: fmt.Sprintf("%s hours/week for learning significantly accelerates transition", formatHours(profile.WeeklyLearningHours)),
		})
	} else if profile.WeeklyLearningHours < cfg.LowHours {
		score -= cfg.HoursAdjust
		factors = append(factors, models.Factor{
			Name:        "Learning Time",
			Impact:      ImpactNegative,
			Description: "Limited learning time will extend your transition timeline",
		})
	}

	if profile.HasConstraint(models.ConstraintFamily) {
		score -= cfg.ConstraintPenalty
		factors = append(factors, models.Factor{
			Name:        "Family Responsibilities",
			Impact:      ImpactCaution,
			Description: "Family commitments require careful timeline planning",
		})
	}
	if profile.HasConstraint(models.ConstraintLocation) {
		score -= cfg.ConstraintPenalty
		factors = append(factors, models.Factor{
			Name:        "Location Constraint",
			Impact:      ImpactCaution,
			Description: "Geographic limitations may reduce opportunities",
		})
	}

	if matcher.SameCategory(current, target) {
		score += cfg.SameCategoryBonus
		factors = append(factors, models.Factor{
			Name:        "Industry Knowledge",
			Impact:      ImpactPositive,
			Description: "Staying in same industry leverages your domain expertise",
		})
	}

	final := clamp(int(math.Round(score)), cfg.MinScore, cfg.MaxScore)

	return models.Feasibility{
		Score:   final,
		Rating:  Rate(final),
		Factors: factors,
		Summary: summarize(final, profile.DreamRole),
	}
}

// Rate maps a feasibility score onto its display band.
func Rate(score int) models.Rating {
	switch {
	case score >= 80:
		return models.Rating{Label: "Highly Feasible", Color: "emerald"}
	case score >= 60:
		return models.Rating{Label: "Achievable", Color: "gold"}
	case score >= 40:
		return models.Rating{Label: "Challenging", Color: "orange"}
	default:
		return models.Rating{Label: "Difficult", Color: "rose"}
	}
}

func summarize(score int, dreamRole string) string {
	target := dreamRole
	if target == "" {
		target = "your target role"
	}
	switch {
	case score >= 80:
		return fmt.Sprintf("Your transition to %s is highly achievable. Your background provides a strong foundation, and with focused effort, you can make this transition successfully.", target)
	case score >= 60:
		return fmt.Sprintf("Transitioning to %s is definitely possible but will require dedicated effort. Focus on bridging skill gaps and building relevant experience.", target)
	case score >= 40:
		return fmt.Sprintf("This transition to %s is challenging but not impossible. Consider intermediate roles or extended timelines to build necessary credentials.", target)
	}
	return fmt.Sprintf("The path to %s is difficult from your current position. Consider alternative roles that bridge the gap, or be prepared for a longer journey.", target)
}

func formatHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%d", int(h))
	}
	return fmt.Sprintf("%.1f", h)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(hi, v))
}
