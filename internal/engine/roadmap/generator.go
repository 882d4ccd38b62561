// internal/engine/roadmap/generator.go
package roadmap

import (
	"fmt"
	"math"
	"sort"
	"time"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

const (
	StatusUpcoming = "upcoming"
	StatusFuture   = "future"

	MilestonePhaseStart  = "phase-start"
	MilestoneDeliverable = "deliverable"
)

// Inputs carries the earlier pipeline results the roadmap depends on.
type Inputs struct {
	SkillGap models.SkillGap
}

type Generator struct {
	config *Config
	kb     *knowledge.KnowledgeBase
	now    func() time.Time
}

func NewGenerator(config *Config, kb *knowledge.KnowledgeBase) *Generator {
	if config == nil {
		config = LoadConfig()
	}
	return &Generator{config: config, kb: kb, now: time.Now}
}

// WithClock replaces the wall clock used for start and target dates.
func (g *Generator) WithClock(now func() time.Time) *Generator {
	g.now = now
	return g
}

func (g *Generator) Generate(profile models.UserProfile, in Inputs) models.Roadmap {
	var pattern *knowledge.TransitionPattern
	if p, ok := g.kb.Pattern(matcher.Normalize(profile.CurrentTitle), matcher.Normalize(profile.DreamRole)); ok {
		pattern = &p
	}

	total := g.TotalMonths(profile, in.SkillGap.GapPercentage, pattern)
	phases := g.phases(total, in.SkillGap, pattern)
	start := g.now().UTC()

	return models.Roadmap{
		TotalMonths:      total,
		StartDate:        start,
		TargetDate:       start.AddDate(0, 0, total*g.config.DaysPerMonth),
		Phases:           phases,
		WeeklyCommitment: profile.WeeklyLearningHours,
		KeyMilestones:    milestones(phases),
		SuccessMetrics:   successMetrics(),
	}
}

// TotalMonths applies the hours, gap and risk multipliers in that order to the
// base duration, rounding once at the end.
func (g *Generator) TotalMonths(profile models.UserProfile, gap int, pattern *knowledge.TransitionPattern) int {
	cfg := g.config

	months := float64(cfg.BaseMonths)
	if pattern != nil && pattern.TimelineMonths > 0 {
		months = float64(pattern.TimelineMonths)
	}

	if profile.WeeklyLearningHours >= cfg.FastHours {
		months *= cfg.FastHoursFactor
	} else if profile.WeeklyLearningHours < cfg.SlowHours {
		months *= cfg.SlowHoursFactor
	}

	if gap > cfg.WideGap {
		months *= cfg.WideGapFactor
	} else if gap < cfg.NarrowGap {
		months *= cfg.NarrowGapFactor
	}

	if profile.RiskTolerance >= cfg.BoldRisk {
		months *= cfg.BoldRiskFactor
	} else if profile.RiskTolerance <= cfg.CautiousRisk {
		months *= cfg.CautiousRiskFactor
	}

	return max(cfg.MinMonths, min(cfg.MaxMonths, int(math.Round(months))))
}

func (g *Generator) phases(total int, gap models.SkillGap, pattern *knowledge.TransitionPattern) []models.Phase {
	cfg := g.config

	phases := []models.Phase{
		foundation(pattern),
		g.skillBuilding(gap),
		experience(),
		jobSearch(),
	}

	month := 1
	for i := range phases {
		d := max(cfg.PhaseFloors[i], int(math.Round(float64(total)*cfg.PhaseShares[i])))
		phases[i].ID = i + 1
		phases[i].Duration = d
		phases[i].StartMonth = month
		phases[i].EndMonth = month + d - 1
		phases[i].Status = StatusUpcoming
		month += d
	}

	onboarding := firstNinetyDays()
	onboarding.ID = len(phases) + 1
	onboarding.Duration = cfg.OnboardingMonths
	onboarding.StartMonth = month
	onboarding.EndMonth = month + cfg.OnboardingMonths - 1
	onboarding.Status = StatusFuture

	return append(phases, onboarding)
}

func foundation(pattern *knowledge.TransitionPattern) models.Phase {
	tips := []string{"Talk to people already in the role", "Understand the real challenges"}
	if pattern != nil && len(pattern.Tips) > 0 {
		tips = append([]string(nil), pattern.Tips[:min(2, len(pattern.Tips))]...)
	}

	return models.Phase{
		Name: "Foundation & Research",
		Objectives: []string{
			"Deep dive into target role requirements and day-to-day responsibilities",
			"Connect with 5+ professionals currently in the target role",
			"Join relevant online communities and follow thought leaders",
			"Assess and document your transferable skills",
		},
		Tasks: []models.Task{
			{Task: "Conduct 5 informational interviews", Priority: "high", EstimatedTime: "2 weeks"},
			{Task: "Research top companies hiring for this role", Priority: "high", EstimatedTime: "1 week"},
			{Task: "Join 3 relevant LinkedIn groups or Slack communities", Priority: "medium", EstimatedTime: "1 week"},
			{Task: "Create skills inventory mapping current to required skills", Priority: "high", EstimatedTime: "1 week"},
		},
		Deliverables: []string{"Career transition document", "Network of 5+ industry contacts", "Learning plan"},
		Tips:         tips,
	}
}

func (g *Generator) skillBuilding(gap models.SkillGap) models.Phase {
	high := filterPriority(gap.SkillsToAcquire, "High", g.config.HighSkillTasks)
	medium := filterPriority(gap.SkillsToAcquire, "Medium", g.config.MediumSkillTasks)

	tasks := make([]models.Task, 0, len(high)+len(medium))
	for _, s := range high {
		tasks = append(tasks, learnTask(s, "high"))
	}
	for _, s := range medium {
		tasks = append(tasks, learnTask(s, "medium"))
	}

	return models.Phase{
		Name: "Intensive Skill Building",
		Objectives: []string{
			fmt.Sprintf("Master %d critical skills for the role", len(high)),
			"Build 2-3 portfolio projects demonstrating new capabilities",
			"Earn relevant certifications or complete key courses",
			"Start contributing to industry conversations",
		},
		Tasks: tasks,
		Deliverables: []string{
			"Completed courses/certifications",
			"2-3 portfolio projects",
			"Blog posts or content demonstrating expertise",
		},
		Tips: []string{"Focus on projects, not just courses", "Document everything you learn", "Build in public when possible"},
	}
}

func experience() models.Phase {
	return models.Phase{
		Name: "Experience Building",
		Objectives: []string{
			"Gain practical experience through side projects or freelancing",
			"Take on stretch assignments at current job that align with target role",
			"Build and refine portfolio with real-world examples",
			"Strengthen professional network in target field",
		},
		Tasks: []models.Task{
			{Task: "Complete 1-2 freelance/volunteer projects in new field", Priority: "high", EstimatedTime: "6-8 weeks"},
			{Task: "Propose and lead a relevant initiative at current job", Priority: "high", EstimatedTime: "4 weeks"},
			{Task: "Attend 2-3 industry events or meetups", Priority: "medium", EstimatedTime: "ongoing"},
			{Task: "Get testimonials/recommendations from project work", Priority: "medium", EstimatedTime: "2 weeks"},
		},
		Deliverables: []string{"Real-world project experience", "Updated portfolio", "3+ recommendations"},
		Tips:         []string{"Freelance platforms like Upwork/Toptal for experience", "Volunteer for nonprofits", "Internal transfers can be stepping stones"},
	}
}

func jobSearch() models.Phase {
	return models.Phase{
		Name: "Job Search & Transition",
		Objectives: []string{
			"Optimize resume and LinkedIn for target role",
			"Apply strategically to well-matched positions",
			"Ace interviews with thorough preparation",
			"Negotiate and transition successfully",
		},
		Tasks: []models.Task{
			{Task: "Rewrite resume highlighting transferable skills and new expertise", Priority: "high", EstimatedTime: "1 week"},
			{Task: "Optimize LinkedIn with target role keywords", Priority: "high", EstimatedTime: "1 week"},
			{Task: "Apply to 10-15 carefully selected positions per week", Priority: "high", EstimatedTime: "ongoing"},
			{Task: "Conduct 20+ mock interviews", Priority: "high", EstimatedTime: "3 weeks"},
			{Task: "Research salary benchmarks for negotiation", Priority: "medium", EstimatedTime: "1 week"},
		},
		Deliverables: []string{"Optimized resume", "Active job applications", "Job offer(s)"},
		Tips:         []string{"Quality over quantity in applications", "Customize each application", "Leverage network for referrals"},
	}
}

func firstNinetyDays() models.Phase {
	return models.Phase{
		Name: "First 90 Days in New Role",
		Objectives: []string{
			"Establish yourself as a capable team member",
			"Build key relationships and understand team dynamics",
			"Deliver early wins to build credibility",
			"Identify areas for continued growth",
		},
		Tasks: []models.Task{
			{Task: "Schedule 1:1s with all key stakeholders", Priority: "high", EstimatedTime: "2 weeks"},
			{Task: "Document learnings and create personal onboarding plan", Priority: "high", EstimatedTime: "ongoing"},
			{Task: "Identify and deliver 1-2 quick wins", Priority: "high", EstimatedTime: "4-6 weeks"},
			{Task: "Find a mentor within the organization", Priority: "medium", EstimatedTime: "4 weeks"},
		},
		Deliverables: []string{"Strong relationships", "Early wins documented", "Clear development plan"},
		Tips:         []string{"Listen more than you speak initially", "Ask lots of questions", "Document everything"},
	}
}

func learnTask(s models.SkillAcquire, priority string) models.Task {
	return models.Task{
		Task:          "Learn " + s.Name,
		Priority:      priority,
		EstimatedTime: fmt.Sprintf("%d weeks", s.LearnTimeWeeks),
		Resources:     s.Resources,
	}
}

func filterPriority(skills []models.SkillAcquire, priority string, limit int) []models.SkillAcquire {
	var out []models.SkillAcquire
	for _, s := range skills {
		if len(out) == limit {
			break
		}
		if s.Priority == priority {
			out = append(out, s)
		}
	}
	return out
}

func milestones(phases []models.Phase) []models.Milestone {
	var out []models.Milestone
	for _, p := range phases {
		out = append(out, models.Milestone{
			Month: p.StartMonth,
			Title: "Start: " + p.Name,
			Type:  MilestonePhaseStart,
		})
		if len(p.Deliverables) > 0 {
			out = append(out, models.Milestone{
				Month: p.EndMonth,
				Title: p.Deliverables[0],
				Type:  MilestoneDeliverable,
			})
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Month < out[j].Month })
	return out
}

func successMetrics() []models.SuccessMetric {
	return []models.SuccessMetric{
		{Metric: "Skills Acquired", Target: "Complete 80%+ of identified skill gaps", Measurable: true},
		{Metric: "Portfolio Projects", Target: "Build 3+ demonstrable projects", Measurable: true},
		{Metric: "Network Growth", Target: "Connect with 20+ professionals in target field", Measurable: true},
		{Metric: "Interview Readiness", Target: "Complete 10+ mock interviews", Measurable: true},
		{Metric: "Job Applications", Target: "Apply to 50+ relevant positions", Measurable: true},
	}
}
