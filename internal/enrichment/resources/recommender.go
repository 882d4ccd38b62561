// internal/enrichment/resources/recommender.go
package resources

import (
	"context"
	"fmt"
	"strings"

	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
)

// Recommender turns a skill gap into courses, books, tools and guides drawn
// from the knowledge base catalogs.
type Recommender struct {
	config *Config
	kb     *knowledge.KnowledgeBase
}

func NewRecommender(config *Config, kb *knowledge.KnowledgeBase) *Recommender {
	if config == nil {
		config = LoadConfig()
	}
	return &Recommender{config: config, kb: kb}
}

func (r *Recommender) Recommend(_ context.Context, profile models.UserProfile, gap models.SkillGap) (*models.ResourcePlan, error) {
	plan := r.Plan(profile, gap)
	return &plan, nil
}

func (r *Recommender) Plan(profile models.UserProfile, gap models.SkillGap) models.ResourcePlan {
	plan := models.ResourcePlan{
		Courses:     []models.Course{},
		Books:       []models.Book{},
		Tools:       []models.Tool{},
		Guides:      r.kb.Guides(),
		Communities: r.communities(profile.DreamRole),
	}
	if path, ok := r.kb.LearningPath(matcher.Normalize(profile.DreamRole)); ok {
		plan.LearningPath = &path
	}

	seenCourse := map[string]bool{}
	seenBook := map[string]bool{}
	seenTool := map[string]bool{}

	addCourses := func(skill, level string, courses []models.Course) {
		for _, c := range courses {
			if seenCourse[c.Name] {
				continue
			}
			seenCourse[c.Name] = true
			c.Skill = skill
			c.Level = level
			plan.Courses = append(plan.Courses, c)
		}
	}

	for _, s := range gap.SkillsToAcquire {
		cat, ok := r.kb.Catalog(s.Name)
		if !ok {
			continue
		}
		addCourses(s.Name, LevelBeginner, cat.Beginner)
		addCourses(s.Name, LevelIntermediate, cat.Intermediate)

		for _, b := range cat.Books {
			if seenBook[b.Name] {
				continue
			}
			seenBook[b.Name] = true
			b.Skill = s.Name
			plan.Books = append(plan.Books, b)
		}
		for _, t := range cat.Tools {
			if seenTool[t.Name] {
				continue
			}
			seenTool[t.Name] = true
			plan.Tools = append(plan.Tools, t)
		}
	}

	if len(plan.Courses) > r.config.MaxCourses {
		plan.Courses = plan.Courses[:r.config.MaxCourses]
	}
	if len(plan.Books) > r.config.MaxBooks {
		plan.Books = plan.Books[:r.config.MaxBooks]
	}
	return plan
}

func (r *Recommender) communities(dreamRole string) []models.Community {
	role := dreamRole
	if role == "" {
		role = "your target role"
	}
	out := make([]models.Community, len(r.config.Communities))
	copy(out, r.config.Communities)
	if len(out) > 0 {
		out[0].Description = fmt.Sprintf(out[0].Description, role)
	}
	return out
}

// GuideForTask finds the step-by-step guide a roadmap task refers to. A task
// matches when it mentions the guide id, or when its first word appears in it.
func (r *Recommender) GuideForTask(task string) (models.Guide, bool) {
	t := strings.ToLower(strings.TrimSpace(task))
	if t == "" {
		return models.Guide{}, false
	}
	first := strings.Fields(t)[0]
	for _, g := range r.kb.Guides() {
		if strings.Contains(t, g.ID) || strings.Contains(g.ID, first) {
			return g, true
		}
	}
	return models.Guide{}, false
}

// CoursesForSkill returns the full catalog for one skill.
func (r *Recommender) CoursesForSkill(skill string) (knowledge.SkillCatalog, bool) {
	return r.kb.Catalog(skill)
}
