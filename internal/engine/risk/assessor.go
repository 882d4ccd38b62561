// internal/engine/risk/assessor.go
package risk

import (
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

const (
	LevelHigh   = "High"
	LevelMedium = "Medium"

	mitigationPriority = "Address before transitioning"
)

type Assessor struct {
	config *Config
}

func NewAssessor(config *Config) *Assessor {
	if config == nil {
		config = LoadConfig()
	}
	return &Assessor{config: config}
}

// Assess folds the earlier results into a composite risk score. Feasibility is
// accepted for completeness of the contract but does not move the score.
func (a *Assessor) Assess(profile models.UserProfile, _ models.Feasibility, gap models.SkillGap, fin models.FinancialAnalysis, target *knowledge.RoleProfile) models.RiskAssessment {
	cfg := a.config
	score := cfg.BaseScore
	var risks []models.Risk

	add := func(points int, r models.Risk) {
		score += points
		risks = append(risks, r)
	}

	if fin.CurrentRunway < cfg.CriticalRunway {
		add(cfg.CriticalRunwayPoints, models.Risk{
			Category:    "Financial",
			Level:       LevelHigh,
			Description: "Limited financial runway increases pressure and reduces flexibility",
			Mitigation:  "Build 6+ months emergency fund before transitioning",
		})
	} else if fin.CurrentRunway < cfg.ShortRunway {
		add(cfg.ShortRunwayPoints, models.Risk{
			Category:    "Financial",
			Level:       LevelMedium,
			Description: "Moderate runway - transition is possible but needs careful planning",
			Mitigation:  "Continue saving while upskilling to extend runway",
		})
	}

	if gap.GapPercentage > cfg.WideGap {
		add(cfg.WideGapPoints, models.Risk{
			Category:    "Skills",
			Level:       LevelHigh,
			Description: "Significant skill gaps will require extensive learning time",
			Mitigation:  "Consider bootcamp or intensive courses to accelerate learning",
		})
	} else if gap.GapPercentage > cfg.ModerateGap {
		add(cfg.ModerateGapPoints, models.Risk{
			Category:    "Skills",
			Level:       LevelMedium,
			Description: "Moderate skill gaps that are addressable with consistent effort",
			Mitigation:  "Create structured learning plan with weekly goals",
		})
	}

	if target != nil && a.weakDemand(target.DemandLevel) {
		add(cfg.MarketPoints, models.Risk{
			Category:    "Market",
			Level:       LevelMedium,
			Description: "Target role has limited or stable job market",
			Mitigation:  "Focus on niche specializations or high-growth sectors within the field",
		})
	}

	if profile.HasConstraint(models.ConstraintAge) {
		add(cfg.AgePoints, models.Risk{
			Category:    "Perception",
			Level:       LevelMedium,
			Description: "Some employers may have unconscious bias toward younger candidates",
			Mitigation:  "Emphasize experience, wisdom, and stability as advantages; target mature companies",
		})
	}

	if profile.HasConstraint(models.ConstraintLocation) {
		add(cfg.LocationPoints, models.Risk{
			Category:    "Opportunity",
			Level:       LevelMedium,
			Description: "Geographic constraints limit job opportunities",
			Mitigation:  "Focus on remote-friendly roles or companies with local offices",
		})
	}

	if profile.WeeklyLearningHours < cfg.LowHours {
		add(cfg.TimePoints, models.Risk{
			Category:    "Timeline",
			Level:       LevelHigh,
			Description: "Limited upskilling time significantly extends transition timeline",
			Mitigation:  "Find ways to free up more time or adjust expectations on timeline",
		})
	}

	score = min(cfg.MaxScore, score)

	return models.RiskAssessment{
		OverallScore:   score,
		Level:          Level(score),
		Risks:          risks,
		MitigationPlan: mitigationPlan(risks),
	}
}

func (a *Assessor) weakDemand(level string) bool {
	for _, d := range a.config.WeakDemand {
		if d == level {
			return true
		}
	}
	return false
}

// Level maps a risk score onto its display band.
func Level(score int) models.RiskLevel {
	switch {
	case score >= 70:
		return models.RiskLevel{Label: "High Risk", Color: "rose", Advice: "Proceed with caution and strong preparation"}
	case score >= 50:
		return models.RiskLevel{Label: "Moderate Risk", Color: "orange", Advice: "Manageable with good planning"}
	case score >= 30:
		return models.RiskLevel{Label: "Low-Moderate Risk", Color: "gold", Advice: "Favorable conditions for transition"}
	default:
		return models.RiskLevel{Label: "Low Risk", Color: "emerald", Advice: "Excellent position to make this transition"}
	}
}

func mitigationPlan(risks []models.Risk) []models.Mitigation {
	plan := make([]models.Mitigation, 0, len(risks))
	for _, r := range risks {
		if r.Level != LevelHigh {
			continue
		}
		plan = append(plan, models.Mitigation{
			Priority: mitigationPriority,
			Risk:     r.Description,
			Action:   r.Mitigation,
		})
	}
	return plan
}
