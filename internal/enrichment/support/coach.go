// internal/enrichment/support/coach.go
package support

import (
	"context"
	"fmt"
	"math"
	"strings"

	"career-pivot/internal/engine/financial"
	"career-pivot/internal/engine/matcher"
	"career-pivot/internal/knowledge"
	"career-pivot/internal/models"
)

// CourseSource supplies the first course a learner should start with.
type CourseSource interface {
	Plan(profile models.UserProfile, gap models.SkillGap) models.ResourcePlan
}

// Coach builds the motivational and practical content that accompanies an
// analysis. It only reads the finished core results.
type Coach struct {
	config  *Config
	kb      *knowledge.KnowledgeBase
	courses CourseSource
}

func NewCoach(config *Config, kb *knowledge.KnowledgeBase, courses CourseSource) *Coach {
	if config == nil {
		config = LoadConfig()
	}
	return &Coach{config: config, kb: kb, courses: courses}
}

func (c *Coach) Support(_ context.Context, profile models.UserProfile, analysis models.Analysis) (*models.SupportContent, error) {
	return &models.SupportContent{
		PersonalizedMessage: c.personalMessage(profile, analysis),
		WeeklyPlan:          c.weeklyPlan(profile, analysis),
		SuccessStories:      stories(profile.CurrentTitle, profile.DreamRole),
		DailyHabits:         c.dailyHabits(profile),
		Motivation:          c.motivation(profile),
		BackupPlans:         c.backupPlans(profile, analysis),
		ProgressTracker:     progressTracker(),
		QuickWins:           quickWins(profile, analysis),
		InterviewPrep:       prepFor(profile.DreamRole),
		NetworkingTemplates: networkingTemplates(profile),
		SalaryTips:          salaryTips(),
		CommonMistakes:      commonMistakes(),
	}, nil
}

func (c *Coach) personalMessage(p models.UserProfile, a models.Analysis) models.PersonalMessage {
	role := orDefault(p.DreamRole, "your dream role")

	switch score := a.Feasibility.Score; {
	case score >= c.config.ExcellentScore:
		skill := "technical"
		if len(p.Skills) > 0 {
			skill = p.Skills[0]
		}
		months := a.Roadmap.TotalMonths
		if months == 0 {
			months = 12
		}
		return models.PersonalMessage{
			Emoji:    "🚀",
			Headline: fmt.Sprintf("You're in an excellent position to become a %s!", role),
			Message: fmt.Sprintf("With %d years of experience and your existing skills, you're ahead of most career changers. "+
				"Your %s background is highly valued in %s roles. Focus on bridging the specific skill gaps, "+
				"and you'll be landing interviews within %d months.", p.YearsExperience, skill, role, months),
			Encouragement: fmt.Sprintf("Remember: Many successful %ss started exactly where you are now.", role),
		}
	case score >= c.config.AchievableScore:
		return models.PersonalMessage{
			Emoji:    "💪",
			Headline: "This transition is absolutely achievable!",
			Message: fmt.Sprintf("Your path to %s requires focused effort, but you have solid foundations. "+
				"Your experience in %s gives you unique insights that pure %ss don't have. "+
				"This is your competitive advantage - use it!", role, orDefault(p.Industry, "your field"), role),
			Encouragement: "The best time to start was yesterday. The second best time is today.",
		}
	default:
		return models.PersonalMessage{
			Emoji:    "🌱",
			Headline: "Every expert was once a beginner",
			Message: "This is a significant career shift, which means more growth opportunity. Consider this a marathon, not a sprint. " +
				"Break it into smaller milestones, celebrate each win, and you'll look back in 2 years amazed at how far you've come.",
			Encouragement: "The gap between where you are and where you want to be is called growth.",
		}
	}
}

func (c *Coach) weeklyPlan(p models.UserProfile, a models.Analysis) models.WeeklyPlan {
	hours := p.WeeklyLearningHours

	firstCourse := "First recommended course"
	if c.courses != nil {
		if plan := c.courses.Plan(p, a.SkillGap); len(plan.Courses) > 0 {
			firstCourse = plan.Courses[0].Name
		}
	}

	days := make([]models.DayPlan, 0, len(weekDays))
	for i, d := range weekDays {
		share := 0.0
		if i < len(c.config.DayShares) {
			share = c.config.DayShares[i]
		}
		details := d.details
		if details == nil {
			details = []string{
				"Start course: " + firstCourse,
				"Take notes using the Cornell method",
				"Complete first module or chapter",
			}
		}
		days = append(days, models.DayPlan{
			Day:     d.day,
			Time:    fmt.Sprintf("%dh", int(math.Round(hours*share))),
			Task:    d.task,
			Details: details,
		})
	}

	interviews := min(c.config.MaxInterviews, int(math.Round(hours/c.config.HoursPerInterview)))
	applications := min(c.config.MaxApplications, int(math.Round(float64(a.Feasibility.Score)/10)))

	return models.WeeklyPlan{
		Title:      "🎯 Your Actions for This Week",
		TotalHours: hours,
		Days:       days,
		MonthlyGoals: []string{
			"Complete 1 certification or course module",
			fmt.Sprintf("Have %d informational interviews", interviews),
			"Build 1 portfolio piece or case study",
			fmt.Sprintf("Apply to %d relevant positions", applications),
		},
	}
}

func stories(current, target string) []models.SuccessStory {
	key := matcher.Normalize(current) + "->" + matcher.Normalize(target)
	if s, ok := successStories[key]; ok {
		return s
	}
	return successStories[defaultKey]
}

func prepFor(target string) *models.InterviewPrep {
	prep, ok := interviewPrep[matcher.Normalize(target)]
	if !ok {
		prep = interviewPrep[defaultKey]
	}
	return &prep
}

func networkingTemplates(p models.UserProfile) []models.MessageTemplate {
	years := "several"
	if p.YearsExperience > 0 {
		years = fmt.Sprint(p.YearsExperience)
	}
	learning := "new skills"
	if p.DreamRole != "" {
		learning = "what it takes to become a " + p.DreamRole
	}

	return []models.MessageTemplate{
		{
			Title: "LinkedIn Connection Request",
			Template: fmt.Sprintf("Hi [Name],\n\nI noticed you transitioned from %s to %s - that's exactly the path I'm exploring.\n\n"+
				"I'm currently a %s with %s years of experience, actively learning %s.\n\n"+
				"Would love to connect and learn from your journey!\n\nBest,\n[Your Name]",
				orDefault(p.CurrentTitle, "[similar role]"), orDefault(p.DreamRole, "[target role]"),
				orDefault(p.CurrentTitle, "[current role]"), years, learning),
			Tips: []string{
				"Keep it under 300 characters for mobile",
				"Mention something specific about them",
				"Make it easy to say yes",
			},
		},
		{
			Title: "Informational Interview Request",
			Template: fmt.Sprintf("Hi [Name],\n\nI hope this message finds you well! I came across your profile and was inspired by your journey from %s to %s.\n\n"+
				"I'm currently navigating a similar transition and would be incredibly grateful for 20 minutes of your time to learn from your experience. "+
				"I have specific questions about [skill gap/company type/transition challenge].\n\n"+
				"I'm happy to work around your schedule - early mornings, lunch, or evenings all work for me.\n\n"+
				"Thank you for considering this!\n\nBest regards,\n[Your Name]",
				orDefault(p.CurrentTitle, "[similar background]"), orDefault(p.DreamRole, "[their current role]")),
			Tips: []string{
				"Be specific about what you want to learn",
				"Offer flexibility on timing",
				"Follow up once after 5-7 days if no response",
			},
		},
		{
			Title: "Thank You Message",
			Template: "Hi [Name],\n\nThank you so much for taking the time to chat today! Your insights on [specific thing discussed] were incredibly valuable.\n\n" +
				"I especially appreciated your advice about [key takeaway]. I'm going to [specific action] based on our conversation.\n\n" +
				"I'll keep you updated on my progress. If there's ever anything I can help you with, please don't hesitate to reach out.\n\n" +
				"Gratefully,\n[Your Name]",
			Tips: []string{
				"Send within 24 hours",
				"Reference something specific",
				"Commit to a follow-up action",
			},
		},
	}
}

func (c *Coach) dailyHabits(p models.UserProfile) models.DailyHabits {
	daily := int(math.Round(p.WeeklyLearningHours * 60 / 7))
	practice := max(daily-c.config.RoutineMinutes, c.config.MinPracticeMinutes)

	return models.DailyHabits{
		DailyMinutes: daily,
		Morning: []models.Habit{
			{
				Habit:       "🌅 Career Reflection (5 min)",
				Description: "Before checking phone, visualize yourself in your dream role. How does it feel?",
				Science:     "Visualization activates the same neural pathways as actually performing the task.",
			},
			{
				Habit:       "📚 Learning Block (20-30 min)",
				Description: "Tackle the hardest learning material when your brain is fresh.",
				Science:     "Willpower is highest in the morning. Use it for challenging new skills.",
			},
		},
		Commute: []models.Habit{
			{
				Habit:       "🎧 Industry Podcasts",
				Description: "Listen to podcasts about " + orDefault(p.DreamRole, "your target field"),
				Recommendations: []string{
					"Lenny's Podcast (Product)",
					"Acquired (Business)",
					"Data Skeptic (Data Science)",
				},
			},
		},
		Lunch: []models.Habit{
			{
				Habit:       "🤝 Networking (15 min)",
				Description: "Send 1 connection request, comment on 2 posts, engage meaningfully",
				Science:     "Small daily networking compounds. 1/day = 365 new connections/year.",
			},
		},
		Evening: []models.Habit{
			{
				Habit:       fmt.Sprintf("📖 Skill Practice (%d min)", practice),
				Description: "Apply what you learned - do exercises, build projects, practice frameworks",
				Rule:        "30% learning, 70% doing. This is where real growth happens.",
			},
			{
				Habit:       "✍️ Daily Log (5 min)",
				Description: "Write 3 things you learned today. This 10x's retention.",
				Template:    "Today I learned...\nI'm proud that I...\nTomorrow I will...",
			},
		},
		Weekly: []models.Habit{
			{
				Habit:       "📊 Weekly Review (30 min Sunday)",
				Description: "Track progress, adjust plans, celebrate wins",
				Questions: []string{
					"What did I accomplish this week?",
					"What blocked me?",
					"What will I prioritize next week?",
				},
			},
		},
	}
}

func (c *Coach) motivation(p models.UserProfile) models.Motivation {
	m := models.Motivation{
		Affirmations:   affirmations,
		WhenStuckTitle: "Feeling Stuck? Try This:",
		WhenStuck:      stuckTips,
		Milestones:     celebrations,
	}
	if ind, ok := c.kb.Industry(p.Industry); ok {
		m.IndustryOutlook = fmt.Sprintf("%s is growing about %d%% a year. Hot roles: %s.",
			ind.Name, ind.GrowthRate, strings.Join(ind.HotRoles, ", "))
	}
	return m
}

func (c *Coach) backupPlans(p models.UserProfile, a models.Analysis) models.BackupPlans {
	stepping := "related roles"
	if len(a.Alternatives) > 0 {
		stepping = a.Alternatives[0].Role
	}
	expenses := p.MonthlyExpenses
	if expenses == 0 {
		expenses = c.config.DefaultExpenses
	}

	pivots := make([]models.PivotOption, 0, c.config.PivotOptions)
	for i, alt := range a.Alternatives {
		if i == c.config.PivotOptions {
			break
		}
		pivots = append(pivots, models.PivotOption{
			Role:       alt.Role,
			MatchScore: alt.MatchScore,
			Timeline:   alt.Timeline,
			Why:        alt.WhyConsider,
		})
	}

	return models.BackupPlans{
		IfTimeTakesLonger: models.ActionList{
			Title: "If transition takes longer than expected",
			Actions: []string{
				fmt.Sprintf("Consider %s as a stepping stone", stepping),
				"Look for hybrid roles at current company",
				"Take contract/freelance work in target field for experience",
				"Extend timeline but don't give up - persistence wins",
			},
		},
		IfRejectedRepeatedly: models.ActionList{
			Title: "If facing multiple rejections",
			Actions: []string{
				"Get feedback from interviewers when possible",
				"Practice with mock interviews more",
				"Review portfolio - is it demonstrating right skills?",
				"Consider a different company size/stage",
				"Look at adjacent roles that build toward goal",
			},
		},
		FinancialBackup: models.ActionList{
			Title: "Financial safety nets",
			Actions: []string{
				"Build 6-month runway before making big moves",
				"Consider part-time/consulting work during transition",
				"Reduce discretionary expenses temporarily",
				"Target bridge fund: ₹" + financial.FormatCurrency(expenses*c.config.BridgeMonths),
			},
		},
		PivotOptions: pivots,
	}
}

func quickWins(p models.UserProfile, a models.Analysis) []models.QuickWin {
	learning := "New Skills"
	if len(a.SkillGap.SkillsToAcquire) > 0 {
		learning = a.SkillGap.SkillsToAcquire[0].Name
	}
	target := orDefault(p.DreamRole, "target role")

	return []models.QuickWin{
		{
			Win:    "Update LinkedIn headline",
			Time:   "5 min",
			Action: fmt.Sprintf("Change to: %q", fmt.Sprintf("%s → Aspiring %s | Learning %s", orDefault(p.CurrentTitle, "Professional"), orDefault(p.DreamRole, "New Role"), learning)),
			Impact: "Signals intent to recruiters",
		},
		{
			Win:    "Join 3 relevant communities",
			Time:   "10 min",
			Action: "Join LinkedIn groups, Slack communities, subreddits for your target role",
			Impact: "Immerse yourself in the conversation",
		},
		{
			Win:    "Set up Google Alerts",
			Time:   "5 min",
			Action: fmt.Sprintf("Create alerts for %q, %q", target+" trends", "hiring "+target),
			Impact: "Stay informed without effort",
		},
		{
			Win:    "Schedule learning blocks",
			Time:   "10 min",
			Action: "Block recurring time in your calendar for upskilling",
			Impact: "Protected time = consistent progress",
		},
		{
			Win:    "Connect with 5 people in target role",
			Time:   "15 min",
			Action: "Send personalized connection requests (use template)",
			Impact: "Start building your network today",
		},
	}
}

func orDefault(s, def string) string {
	if strings.TrimSpace(s) == "" {
		return def
	}
	return s
}
