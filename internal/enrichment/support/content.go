// internal/enrichment/support/content.go
package support

import "career-pivot/internal/models"

const defaultKey = "default"

var weekDays = []struct {
	day     string
	task    string
	details []string
}{
	{"Monday", "Research & Planning", []string{
		"Identify 5 people on LinkedIn in your target role",
		"Draft connection request message (use template below)",
		"Set up a learning tracker (Notion, Spreadsheet)",
	}},
	{"Tuesday", "Skill Building", nil},
	{"Wednesday", "Networking", []string{
		"Send 3 LinkedIn connection requests",
		"Comment thoughtfully on 2 industry posts",
		"Join 1 relevant community or group",
	}},
	{"Thursday", "Skill Building", []string{
		"Continue course work",
		"Practice what you learned with hands-on exercise",
		"Document insights for your portfolio",
	}},
	{"Friday", "Reflection & Planning", []string{
		"Review what you learned this week",
		"Update your progress tracker",
		"Plan next week's priorities",
	}},
}

var successStories = map[string][]models.SuccessStory{
	"software engineer->product manager": {
		{
			Name:     "Priya S.",
			Timeline: "8 months",
			Story:    "I was a backend engineer at a startup for 4 years. I started by volunteering to write PRDs for features I was building. Within 6 months, I was leading product discussions. Got my PM role at a fintech company with a 40% salary increase.",
			KeyTip:   "Use your technical background as leverage - you can spot feasibility issues that non-technical PMs miss.",
		},
		{
			Name:     "Rahul M.",
			Timeline: "12 months",
			Story:    "Took the Product School certification, built 2 case studies, and had 15+ informational interviews. The connections I made led to my PM role at a Series B startup. It was hard but worth every hour.",
			KeyTip:   "Document everything. Your transition story becomes your interview narrative.",
		},
	},
	"marketing->product manager": {
		{
			Name:     "Ananya K.",
			Timeline: "10 months",
			Story:    "My marketing analytics skills directly transferred. I focused on learning SQL and understanding product metrics. My ability to connect user needs to business goals was my differentiator.",
			KeyTip:   "Marketers understand users - that's 50% of product management right there.",
		},
	},
	defaultKey: {
		{
			Name:     "Amit R.",
			Timeline: "14 months",
			Story:    "I switched from a completely unrelated field. The key was treating it like a part-time job - dedicated learning every evening and weekend. Now I'm doing work I love.",
			KeyTip:   "Consistency beats intensity. 1 hour daily > 7 hours once a week.",
		},
		{
			Name:     "Sneha P.",
			Timeline: "9 months",
			Story:    "I was terrified at first. But breaking it into small weekly goals made it manageable. Every small win built my confidence. You can do this too!",
			KeyTip:   "Imposter syndrome is normal. Everyone feels it. Do it scared if you have to.",
		},
	},
}

var interviewPrep = map[string]models.InterviewPrep{
	"product manager": {
		CommonQuestions: []models.InterviewQuestion{
			{
				Question:     "Tell me about a product you love and how you'd improve it.",
				Framework:    "Use the CIRCLES method: Comprehend, Identify users, Report needs, Cut through prioritization, List solutions, Evaluate tradeoffs, Summarize",
				SampleAnswer: "I love Spotify's Discover Weekly. One improvement: Add 'mood filters' so users can discover music matching their current energy. I'd validate this with user research, start with a simple prototype, and measure success by playlist save rates.",
				Mistakes:     []string{"Don't just list features", "Always tie back to user needs", "Show structured thinking"},
			},
			{
				Question:     "How do you prioritize features?",
				Framework:    "RICE (Reach, Impact, Confidence, Effort) or ICE (Impact, Confidence, Ease)",
				SampleAnswer: "I use a combination of quantitative (RICE scoring) and qualitative (user feedback, strategic alignment) methods. For example, at my last company...",
				Mistakes:     []string{"Don't say 'gut feeling'", "Always have a framework", "Show data-driven thinking"},
			},
			{
				Question:     "Tell me about a time you failed.",
				Framework:    "STAR + Growth: Situation, Task, Action, Result, What you learned",
				SampleAnswer: "I once launched a feature without proper user research. Usage was 70% below expectations. I learned to always validate assumptions. Now I include user testing in every sprint.",
				Mistakes:     []string{"Don't blame others", "Show self-awareness", "Focus on the learning"},
			},
		},
		BehavioralTips: []string{
			"Prepare 8-10 STAR stories covering different themes",
			"Practice with a friend or record yourself",
			"Have questions ready for your interviewer",
			"Research the company's product deeply",
		},
		TechnicalTips: []string{
			"Know basic SQL for data analysis questions",
			"Understand A/B testing and statistical significance",
			"Be ready to do back-of-envelope calculations",
			"Practice case studies out loud",
		},
	},
	"data scientist": {
		CommonQuestions: []models.InterviewQuestion{
			{
				Question:     "Explain a complex ML concept to a non-technical person.",
				Framework:    "Use analogies, avoid jargon, tie to business value",
				SampleAnswer: "Gradient descent is like finding the lowest point in a valley when you're blindfolded. You feel the ground, take a step downhill, and repeat until you can't go lower.",
				Mistakes:     []string{"Don't use jargon", "Don't oversimplify to the point of inaccuracy"},
			},
			{
				Question:     "Walk me through a data science project you led.",
				Framework:    "PCAR: Problem, Approach, Results, Learnings",
				SampleAnswer: "We had a 15% customer churn rate. I built a prediction model using gradient boosting, identified top churn indicators, and we reduced churn by 4% through targeted interventions.",
				Mistakes:     []string{"Don't just describe the tech", "Focus on business impact"},
			},
		},
		BehavioralTips: []string{
			"Practice explaining models to non-technical people",
			"Have impact metrics for each project you discuss",
			"Be honest about what you don't know",
		},
	},
	defaultKey: {
		CommonQuestions: []models.InterviewQuestion{
			{
				Question:     "Why do you want to make this transition?",
				Framework:    "Connect past → present → future. Show intentionality.",
				SampleAnswer: "In my current role, I discovered I'm most energized when [doing X]. I've been actively building skills in [Y]. This role combines my experience with my passion for [Z].",
				Mistakes:     []string{"Don't badmouth current job", "Show genuine enthusiasm", "Highlight transferable skills"},
			},
			{
				Question:     "What's your biggest weakness?",
				Framework:    "Real weakness + What you're doing about it",
				SampleAnswer: "I sometimes focus too much on details. I've learned to set time limits and ask 'Is this level of detail necessary for the outcome?'",
				Mistakes:     []string{"Don't say 'I work too hard'", "Don't say 'I have no weaknesses'"},
			},
		},
		BehavioralTips: []string{
			"Research the company thoroughly",
			"Prepare specific examples from your experience",
			"Have thoughtful questions ready",
		},
	},
}

var affirmations = []string{
	"I am capable of learning anything I set my mind to",
	"Every expert was once a beginner",
	"My past experience is an asset, not a limitation",
	"Progress over perfection",
	"I am worthy of the career I'm building",
}

var stuckTips = []models.StuckTip{
	{
		Feeling:  "Overwhelmed",
		Action:   "Pick ONE tiny task. Complete it. Celebrate. Repeat.",
		Exercise: "Write down everything on your mind. Circle the ONE thing that would make tomorrow easier. Do only that.",
	},
	{
		Feeling:  "Imposter Syndrome",
		Action:   "Read your past accomplishments. You've done hard things before.",
		Exercise: "List 10 things you've achieved that once seemed impossible. You'll achieve this too.",
	},
	{
		Feeling:  "Discouraged by rejection",
		Action:   "Rejection is redirection. Each 'no' brings you closer to 'yes'.",
		Exercise: "Reframe: What can you learn from this rejection? How can you improve?",
	},
	{
		Feeling:  "Burned out",
		Action:   "Take a guilt-free break. Rest is part of the process.",
		Exercise: "Schedule 1 full day off this week. Do something that brings you joy.",
	},
}

var celebrations = []models.Celebration{
	{At: "Week 1", Celebration: "🎉 You started! 90% never make it this far."},
	{At: "Month 1", Celebration: "🏆 One month in! You're building real momentum."},
	{At: "First Interview", Celebration: "🚀 Someone sees your potential! You belong here."},
	{At: "First Offer", Celebration: "🎊 YOU DID IT! All the hard work paid off."},
}

func salaryTips() *models.SalaryTips {
	return &models.SalaryTips{
		ResearchSources: []string{
			"Glassdoor salary data for your city",
			"levels.fyi (tech roles)",
			"LinkedIn Salary Insights",
			"AngelList for startup salaries",
		},
		ResearchTip: "Know the range BEFORE you interview. Never give a number first.",
		Scripts: []models.NegotiationScript{
			{
				Scenario: "When asked about salary expectations early",
				Script:   "I'm focused on finding the right opportunity. I'd love to learn more about the role and responsibilities before discussing numbers. What's the range you have budgeted for this position?",
				Why:      "Lets them anchor first. Information is power.",
			},
			{
				Scenario: "When you receive an offer",
				Script:   "Thank you so much for this offer! I'm really excited about this opportunity. I've done some research on market rates for this role, and based on my experience in [X], I was hoping for something closer to [Y]. Is there flexibility?",
				Why:      "Shows enthusiasm while advocating for yourself.",
			},
			{
				Scenario: "If they can't budge on salary",
				Script:   "I understand salary has limits. Could we discuss other elements - signing bonus, additional PTO, remote flexibility, or a performance review at 6 months?",
				Why:      "Total compensation isn't just salary. Get creative.",
			},
		},
		Mistakes: []string{
			"Accepting immediately - always ask for time to consider",
			"Apologizing for negotiating - it's expected and respected",
			"Not getting the offer in writing before negotiating",
			"Negotiating on multiple fronts at once - go one by one",
		},
		Statistics: []string{
			"Candidates who negotiate earn 7% more on average",
			"84% of employers expect candidates to negotiate",
			"Only 37% of people actually negotiate - be in that group!",
		},
	}
}

func commonMistakes() *models.CommonMistakes {
	return &models.CommonMistakes{
		DuringTransition: []models.Mistake{
			{
				Mistake: "Trying to learn everything at once",
				Fix:     "Focus on 1-2 core skills. Master them. Then expand.",
				Example: "For PM: Start with user research + prioritization. Not metrics + SQL + design + strategy all at once.",
			},
			{
				Mistake: "Not networking because you're 'not ready'",
				Fix:     "Network while learning. People hire potential, not perfection.",
				Example: "Reach out saying 'I'm learning about PM. Can I learn from your journey?' - people love helping.",
			},
			{
				Mistake: "Quitting your job too early",
				Fix:     "Transition while employed if possible. Income = time = less desperation.",
				Example: "Use evenings/weekends. Takes longer but way safer.",
			},
			{
				Mistake: "Only applying online",
				Fix:     "80% of jobs are filled through referrals. Network > apply.",
				Example: "1 warm referral = 10 cold applications in effectiveness.",
			},
			{
				Mistake: "Not building in public",
				Fix:     "Share your journey on LinkedIn. Recruiters notice engaged learners.",
				Example: "Post about what you're learning weekly. Build an audience.",
			},
		},
		DuringInterviews: []models.Mistake{
			{Mistake: "Not researching the company product", Fix: "Use the product. Form opinions. Be ready to discuss improvements."},
			{Mistake: "Saying 'I don't have direct experience'", Fix: "Frame as 'In a similar situation, I...' and connect to transferable skills."},
			{Mistake: "Asking about salary in round 1", Fix: "Wait until they bring it up or until you have an offer."},
		},
		RedFlagsInCompanies: []string{
			"Role is 'hybrid' of too many things",
			"No clear manager or reporting structure",
			"They rush you to decide on offer",
			"High turnover (check Glassdoor)",
			"Vague job description",
		},
	}
}

func progressTracker() models.ProgressTracker {
	return models.ProgressTracker{
		Title: "Weekly Progress Tracker Template",
		Categories: []models.TrackerCategory{
			{Category: "🎓 Learning", Metrics: []string{"Hours studied", "Courses/modules completed", "Books read", "Notes taken"}},
			{Category: "🤝 Networking", Metrics: []string{"New connections", "Informational interviews", "Events attended", "Follow-ups sent"}},
			{Category: "💼 Portfolio", Metrics: []string{"Projects completed", "Case studies written", "Skills practiced"}},
			{Category: "📝 Job Search", Metrics: []string{"Applications sent", "Responses received", "Interviews scheduled"}},
			{Category: "🧘 Wellbeing", Metrics: []string{"Energy level (1-10)", "Confidence level (1-10)", "Stress level (1-10)"}},
		},
		Tools: []models.TrackerTool{
			{Name: "Notion", URL: "notion.so", Best: "Visual progress tracking"},
			{Name: "Google Sheets", URL: "sheets.google.com", Best: "Data-driven tracking"},
			{Name: "Trello", URL: "trello.com", Best: "Kanban-style task management"},
		},
	}
}
