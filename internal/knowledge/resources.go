// internal/knowledge/resources.go
package knowledge

import "career-pivot/internal/models"

func course(name, provider, url, duration, cost string, rating float64, certificate bool) models.Course {
	return models.Course{
		Name:        name,
		Provider:    provider,
		URL:         url,
		Duration:    duration,
		Cost:        cost,
		Rating:      rating,
		Certificate: certificate,
	}
}

func book(name, author, url, cost string) models.Book {
	return models.Book{Name: name, Author: author, URL: url, Cost: cost}
}

func tool(name, url, kind, cost string) models.Tool {
	return models.Tool{Name: name, URL: url, Type: kind, Cost: cost}
}

func defaultCourses() []SkillCatalog {
	return []SkillCatalog{
		{
			Skill: "product strategy",
			Beginner: []models.Course{
				course("Product Management Fundamentals", "Coursera (University of Virginia)", "https://www.coursera.org/learn/uva-darden-digital-product-management", "4 weeks", "Free to audit", 4.7, true),
				course("Become a Product Manager", "Udemy", "https://www.udemy.com/course/become-a-product-manager-learn-the-skills-get-a-job/", "12 hours", "₹499", 4.6, true),
				course("Product Management 101", "Product School (YouTube)", "https://www.youtube.com/playlist?list=PLNvWIUcprGPLYvF4ZqAYH-CYAVYm5xJGV", "5 hours", "Free", 4.5, false),
			},
			Intermediate: []models.Course{
				course("Digital Product Management", "Coursera (UVA Darden)", "https://www.coursera.org/specializations/uva-darden-digital-product-management", "4 months", "₹3,500/mo", 4.7, true),
				course("Product Management Certificate", "Product School", "https://productschool.com/product-management-certification", "8 weeks", "$4,000", 4.8, true),
			},
			Advanced: []models.Course{
				course("Reforge Growth Series", "Reforge", "https://www.reforge.com/growth-series", "6 weeks", "$1,995", 4.9, true),
				course("Advanced Product Management", "Product School", "https://productschool.com/", "8 weeks", "$4,500", 4.8, true),
			},
			Books: []models.Book{
				book("Inspired: How to Create Tech Products Customers Love", "Marty Cagan", "https://www.amazon.in/dp/1119387507", "₹500"),
				book("The Lean Product Playbook", "Dan Olsen", "https://www.amazon.in/dp/1118960874", "₹450"),
				book("Escaping the Build Trap", "Melissa Perri", "https://www.amazon.in/dp/149197379X", "₹400"),
			},
		},
		{
			Skill: "user research",
			Beginner: []models.Course{
				course("User Research Methods and Best Practices", "Coursera", "https://www.coursera.org/learn/user-research", "4 weeks", "Free to audit", 4.6, true),
				course("UX Research for Beginners", "Udemy", "https://www.udemy.com/course/ux-research-for-beginners/", "6 hours", "₹499", 4.5, true),
				course("Intro to User Research", "Google (YouTube)", "https://www.youtube.com/watch?v=WpzmOH0hrEM", "1 hour", "Free", 4.4, false),
			},
			Intermediate: []models.Course{
				course("User Research and Design", "University of Michigan (Coursera)", "https://www.coursera.org/learn/user-research", "5 weeks", "₹3,000/mo", 4.7, true),
				course("Advanced User Research", "Interaction Design Foundation", "https://www.interaction-design.org/courses/user-research-methods-and-best-practices", "6 weeks", "$15/mo", 4.6, true),
			},
			Books: []models.Book{
				book("Just Enough Research", "Erika Hall", "https://www.amazon.in/dp/1937557103", "₹350"),
				book("Interviewing Users", "Steve Portigal", "https://www.amazon.in/dp/193382011X", "₹400"),
			},
		},
		{
			Skill: "roadmapping",
			Beginner: []models.Course{
				course("Product Roadmaps Micro-Learning", "LinkedIn Learning", "https://www.linkedin.com/learning/product-management-building-a-product-roadmap", "1 hour", "₹1,000/mo", 4.5, true),
				course("How to Create a Product Roadmap", "Productboard (YouTube)", "https://www.youtube.com/watch?v=z4JKmvQqOKM", "30 min", "Free", 4.3, false),
			},
			Intermediate: []models.Course{
				course("Advanced Product Roadmapping", "Pragmatic Institute", "https://www.pragmaticinstitute.com/course/focus", "2 days", "$2,500", 4.7, true),
				course("Strategic Roadmapping", "Product School", "https://productschool.com/", "4 weeks", "$2,000", 4.6, true),
			},
			Tools: []models.Tool{
				tool("Productboard", "https://www.productboard.com/", "Roadmap Tool", "Free tier available"),
				tool("Aha!", "https://www.aha.io/", "Roadmap Tool", "$59/mo"),
				tool("Notion", "https://www.notion.so/", "All-in-one", "Free tier available"),
			},
		},
		{
			Skill: "stakeholder management",
			Beginner: []models.Course{
				course("Stakeholder Management", "Coursera", "https://www.coursera.org/learn/stakeholder-management", "3 weeks", "Free to audit", 4.5, true),
				course("Influence Without Authority", "LinkedIn Learning", "https://www.linkedin.com/learning/influencing-others", "1 hour", "₹1,000/mo", 4.6, true),
			},
			Intermediate: []models.Course{
				course("Strategic Communication", "edX (Purdue)", "https://www.edx.org/course/strategic-communication", "6 weeks", "Free to audit", 4.5, true),
			},
			Books: []models.Book{
				book("Crucial Conversations", "Patterson, Grenny, et al.", "https://www.amazon.in/dp/1260474186", "₹450"),
				book("Influence: The Psychology of Persuasion", "Robert Cialdini", "https://www.amazon.in/dp/006124189X", "₹400"),
			},
		},
		{
			Skill: "agile",
			Beginner: []models.Course{
				course("Agile with Atlassian Jira", "Coursera (Atlassian)", "https://www.coursera.org/learn/agile-atlassian-jira", "4 weeks", "Free to audit", 4.7, true),
				course("Scrum Master Certification Prep", "Udemy", "https://www.udemy.com/course/scrum-master-certification/", "8 hours", "₹499", 4.6, true),
				course("Agile Crash Course", "freeCodeCamp (YouTube)", "https://www.youtube.com/watch?v=1evfn3qTYGM", "2 hours", "Free", 4.5, false),
			},
			Intermediate: []models.Course{
				course("Professional Scrum Master I", "Scrum.org", "https://www.scrum.org/professional-scrum-master-i-certification", "Self-paced", "$150", 4.8, true),
				course("SAFe Agilist Certification", "Scaled Agile", "https://scaledagile.com/training/leading-safe/", "2 days", "$995", 4.6, true),
			},
			Books: []models.Book{
				book("Scrum: The Art of Doing Twice the Work in Half the Time", "Jeff Sutherland", "https://www.amazon.in/dp/038534645X", "₹350"),
				book("The Lean Startup", "Eric Ries", "https://www.amazon.in/dp/0307887898", "₹400"),
			},
		},
		{
			Skill: "data analysis",
			Beginner: []models.Course{
				course("Google Data Analytics Certificate", "Coursera (Google)", "https://www.coursera.org/professional-certificates/google-data-analytics", "6 months", "₹3,500/mo", 4.8, true),
				course("Data Analysis with Python", "freeCodeCamp", "https://www.freecodecamp.org/learn/data-analysis-with-python/", "300 hours", "Free", 4.7, true),
				course("Excel for Data Analysis", "Coursera (Macquarie)", "https://www.coursera.org/learn/excel-data-analysis", "4 weeks", "Free to audit", 4.6, true),
			},
			Intermediate: []models.Course{
				course("SQL for Data Science", "Coursera (UC Davis)", "https://www.coursera.org/learn/sql-for-data-science", "4 weeks", "Free to audit", 4.6, true),
				course("Data Analysis with Pandas", "DataCamp", "https://www.datacamp.com/courses/data-manipulation-with-pandas", "4 hours", "$25/mo", 4.7, true),
			},
			Advanced: []models.Course{
				course("Business Analytics Specialization", "Wharton (Coursera)", "https://www.coursera.org/specializations/business-analytics", "6 months", "₹4,000/mo", 4.7, true),
			},
			Tools: []models.Tool{
				tool("SQL Practice", "https://sqlzoo.net/", "Interactive SQL", "Free"),
				tool("Kaggle", "https://www.kaggle.com/learn", "Data Science Practice", "Free"),
				tool("Mode Analytics", "https://mode.com/sql-tutorial/", "SQL Tutorial", "Free"),
			},
		},
		{
			Skill: "sql",
			Beginner: []models.Course{
				course("SQL for Beginners", "Codecademy", "https://www.codecademy.com/learn/learn-sql", "8 hours", "Free", 4.6, false),
				course("SQLZoo Interactive Tutorial", "SQLZoo", "https://sqlzoo.net/", "Self-paced", "Free", 4.7, false),
				course("SQL Tutorial", "W3Schools", "https://www.w3schools.com/sql/", "Self-paced", "Free", 4.5, false),
			},
			Intermediate: []models.Course{
				course("SQL for Data Science", "Coursera", "https://www.coursera.org/learn/sql-for-data-science", "4 weeks", "Free to audit", 4.6, true),
				course("Advanced SQL", "Mode Analytics", "https://mode.com/sql-tutorial/intro-to-advanced-sql/", "10 hours", "Free", 4.5, false),
			},
		},
		{
			Skill: "python",
			Beginner: []models.Course{
				course("Python for Everybody", "Coursera (University of Michigan)", "https://www.coursera.org/specializations/python", "8 months", "Free to audit", 4.8, true),
				course("Automate the Boring Stuff", "Udemy / Free Book", "https://automatetheboringstuff.com/", "Self-paced", "Free", 4.9, false),
				course("Python Crash Course", "freeCodeCamp (YouTube)", "https://www.youtube.com/watch?v=rfscVS0vtbw", "4.5 hours", "Free", 4.7, false),
			},
			Intermediate: []models.Course{
				course("Python Data Structures", "Coursera", "https://www.coursera.org/learn/python-data", "7 weeks", "Free to audit", 4.7, true),
				course("100 Days of Code", "Udemy", "https://www.udemy.com/course/100-days-of-code/", "60 hours", "₹499", 4.7, true),
			},
		},
		{
			Skill: "machine learning",
			Beginner: []models.Course{
				course("Machine Learning by Andrew Ng", "Coursera (Stanford)", "https://www.coursera.org/learn/machine-learning", "11 weeks", "Free to audit", 4.9, true),
				course("ML Crash Course", "Google", "https://developers.google.com/machine-learning/crash-course", "15 hours", "Free", 4.8, false),
				course("Practical Deep Learning", "Fast.ai", "https://course.fast.ai/", "7 weeks", "Free", 4.9, false),
			},
			Intermediate: []models.Course{
				course("Deep Learning Specialization", "Coursera (deeplearning.ai)", "https://www.coursera.org/specializations/deep-learning", "5 months", "₹3,500/mo", 4.9, true),
				course("Applied ML", "Kaggle", "https://www.kaggle.com/learn", "30 hours", "Free", 4.7, true),
			},
		},
		{
			Skill: "communication",
			Beginner: []models.Course{
				course("Business Communication", "Coursera (University of Colorado)", "https://www.coursera.org/learn/business-writing", "4 weeks", "Free to audit", 4.6, true),
				course("Public Speaking", "Coursera (University of Washington)", "https://www.coursera.org/learn/public-speaking", "5 weeks", "Free to audit", 4.7, true),
			},
			Practice: []models.Tool{
				tool("Toastmasters International", "https://www.toastmasters.org/", "Speaking Club", "~₹500/mo"),
				tool("Daily Writing Practice", "https://750words.com/", "Writing Practice", "Free"),
			},
			Books: []models.Book{
				book("Made to Stick", "Chip & Dan Heath", "https://www.amazon.in/dp/1400064287", "₹400"),
				book("Talk Like TED", "Carmine Gallo", "https://www.amazon.in/dp/1250041120", "₹350"),
			},
		},
		{
			Skill: "figma",
			Beginner: []models.Course{
				course("Figma UI Design Tutorial", "Figma (Official)", "https://www.figma.com/resources/learn-design/", "5 hours", "Free", 4.8, false),
				course("Figma for Beginners", "YouTube (DesignCourse)", "https://www.youtube.com/watch?v=Cx2dkpBxst8", "3 hours", "Free", 4.7, false),
				course("Complete Figma Course", "Udemy", "https://www.udemy.com/course/learn-figma/", "10 hours", "₹499", 4.6, true),
			},
			Intermediate: []models.Course{
				course("Advanced Figma Techniques", "DesignLab", "https://designlab.com/figma-101-course/", "4 weeks", "$499", 4.7, true),
			},
		},
		{
			Skill: "leadership",
			Beginner: []models.Course{
				course("Leadership Principles", "Harvard (edX)", "https://www.edx.org/course/exercising-leadership-foundational-principles", "4 weeks", "Free to audit", 4.7, true),
				course("Inspiring Leadership", "Coursera (Case Western)", "https://www.coursera.org/learn/inspirational-leadership", "8 weeks", "Free to audit", 4.6, true),
			},
			Books: []models.Book{
				book("Leaders Eat Last", "Simon Sinek", "https://www.amazon.in/dp/1591848016", "₹400"),
				book("The Five Dysfunctions of a Team", "Patrick Lencioni", "https://www.amazon.in/dp/0787960756", "₹350"),
				book("Radical Candor", "Kim Scott", "https://www.amazon.in/dp/1250235375", "₹450"),
			},
		},
	}
}

func defaultGuides() []models.Guide {
	return []models.Guide{
		{
			ID:           "informational interviews",
			Title:        "How to Conduct Informational Interviews",
			Difficulty:   "Easy",
			TimeRequired: "30 min prep + 30 min call each",
			Steps: []models.GuideStep{
				{
					Step:        1,
					Title:       "Identify Target People",
					Description: "Find 10-15 people on LinkedIn who are in your target role",
					Actions: []string{
						"Search LinkedIn for your target job title",
						"Filter by 2nd-degree connections (easier to reach)",
						"Look for people who made similar transitions",
						"Note their career path and current company",
					},
					Tips: []string{
						"Alumni from your college are 3x more likely to respond",
						"Look for people who post content - they usually enjoy sharing",
					},
				},
				{
					Step:        2,
					Title:       "Craft Your Outreach Message",
					Description: "Write a personalized, brief connection request",
					Actions: []string{
						"Mention something specific about their background",
						"Explain your situation in 2 sentences",
						"Ask for just 20 minutes of their time",
						"Make it easy to say yes",
					},
					Template: "Hi [Name],\n\nI noticed you transitioned from [their old role] to [current role] at [company]. I'm currently a [your role] exploring a similar path.\n\nWould you have 20 minutes for a quick call? I'd love to learn about your journey and any advice you'd share.\n\nThanks!\n[Your name]",
				},
				{
					Step:        3,
					Title:       "Prepare Your Questions",
					Description: "Have 5-7 thoughtful questions ready",
					Actions: []string{
						"Research them first - don't ask what's on LinkedIn",
						"Focus on their personal experience",
						"Ask about challenges and surprises",
						`End with "who else should I talk to?"`,
					},
					Examples: []string{
						"What does a typical day look like in your role?",
						"What was the biggest surprise when you made the transition?",
						"What skills were most important in landing your first PM role?",
						"If you were me, what would you focus on in the next 6 months?",
						"Is there anyone else you think I should talk to?",
					},
				},
				{
					Step:        4,
					Title:       "Follow Up Properly",
					Description: "Build lasting relationships, not just one-time asks",
					Actions: []string{
						"Send thank you within 24 hours",
						"Connect on LinkedIn if not already",
						"Share something valuable (article, resource)",
						"Update them on your progress in 2-3 months",
					},
				},
			},
		},
		{
			ID:           "portfolio projects",
			Title:        "Building PM Portfolio Projects",
			Difficulty:   "Medium",
			TimeRequired: "20-40 hours per project",
			Steps: []models.GuideStep{
				{
					Step:        1,
					Title:       "Choose the Right Project Type",
					Description: "Select a project that demonstrates PM skills",
					Examples: []string{
						"Feature Improvement: Redesign Spotify's playlist sharing experience",
						"New Product Concept: App to help remote workers manage work-life balance",
						"Product Teardown: Why Notion won: A product strategy analysis",
						"Market Analysis: The future of personal finance apps in India",
					},
				},
				{
					Step:        2,
					Title:       "Document Like a Real PM",
					Description: "Create professional PM artifacts",
					Actions: []string{
						"Problem Statement & User Research Summary",
						"User Personas (2-3 detailed personas)",
						"Competitive Analysis Matrix",
						"Product Requirements Document (PRD)",
						"User Journey Maps",
						"Wireframes or Mockups (use Figma)",
						"Success Metrics & KPIs",
						"Launch Plan",
					},
				},
				{
					Step:        3,
					Title:       "Add Credibility Boosters",
					Description: "Make your project stand out",
					Actions: []string{
						"Conduct 5+ real user interviews",
						"Run a small survey (use Typeform)",
						"Include data-driven insights",
						"Show iteration based on feedback",
						"Get feedback from actual PMs",
					},
				},
				{
					Step:        4,
					Title:       "Present Professionally",
					Description: "Create a polished case study",
					Actions: []string{
						"Personal website or Notion page",
						"Clear problem → process → solution flow",
						"Visual mockups and diagrams",
						"Lessons learned section",
						"Link to detailed documents",
					},
				},
			},
		},
		{
			ID:           "resume optimization",
			Title:        "Optimizing Resume for Career Transition",
			Difficulty:   "Medium",
			TimeRequired: "4-6 hours",
			Steps: []models.GuideStep{
				{
					Step:        1,
					Title:       "Research Target Role Keywords",
					Description: "Understand what hiring managers look for",
					Actions: []string{
						"Analyze 10+ job descriptions for your target role",
						"List common skills, tools, and requirements",
						"Note the language they use (metrics, verbs)",
						"Identify must-have vs nice-to-have",
					},
				},
				{
					Step:        2,
					Title:       "Reframe Your Experience",
					Description: "Translate past work to target role language",
					Examples: []string{
						"Led development team of 5 engineers → Owned roadmap and led cross-functional team of 5 to deliver product features",
						"Created marketing campaigns → Drove user acquisition through data-informed growth experiments, increasing signups 40%",
						"Analyzed business data → Identified product opportunities through SQL analysis, leading to 2 new feature launches",
					},
				},
				{
					Step:        3,
					Title:       "Add Transition Signals",
					Description: "Show intentional movement toward new role",
					Actions: []string{
						"Add coursework/certifications in a prominent section",
						"Include portfolio projects with results",
						"Highlight transferable achievements",
						"Add relevant volunteer/side work",
					},
				},
				{
					Step:        4,
					Title:       "Get Professional Feedback",
					Description: "Iterate based on expert input",
					Actions: []string{
						"Ask 2-3 people in target role to review",
						"Use free resume review services",
						"Run through ATS scanner tools",
						"A/B test with different versions",
					},
					Examples: []string{
						"Jobscan (https://www.jobscan.co/): ATS optimization",
						"Grammarly (https://www.grammarly.com/): Writing clarity",
						"Resume Worded (https://resumeworded.com/): AI feedback",
					},
				},
			},
		},
		{
			ID:           "networking strategy",
			Title:        "Strategic Networking for Career Changers",
			Difficulty:   "Easy-Medium",
			TimeRequired: "3-5 hours/week ongoing",
			Steps: []models.GuideStep{
				{
					Step:        1,
					Title:       "Build Your Target List",
					Description: "Identify who can help you",
					Examples: []string{
						"Gatekeepers: Recruiters at target companies",
						"Peers: People who made similar transitions",
						"Mentors: Senior people in target role",
						"Connectors: Well-networked people in the industry",
					},
				},
				{
					Step:        2,
					Title:       "Engage Before Asking",
					Description: "Build genuine relationships first",
					Actions: []string{
						"Comment thoughtfully on their posts for 2-4 weeks",
						"Share their content with your insights",
						"Offer help or value before asking for anything",
						"Find common ground (school, interests, background)",
					},
				},
				{
					Step:        3,
					Title:       "Attend Industry Events",
					Description: "Show up where target people gather",
					Examples: []string{
						"Product Management meetups (search Meetup.com)",
						"Industry conferences (even virtual)",
						"Webinars and Twitter Spaces",
						"Slack/Discord communities",
						"Company open houses and demo days",
					},
				},
				{
					Step:        4,
					Title:       "Nurture Your Network",
					Description: "Maintain relationships systematically",
					Actions: []string{
						"Use a CRM (Notion, Airtable) to track contacts",
						"Set reminders for quarterly check-ins",
						"Share relevant articles and opportunities",
						"Celebrate their wins publicly",
						"Make introductions between your contacts",
					},
				},
			},
		},
		{
			ID:           "mock interviews",
			Title:        "Preparing with Mock Interviews",
			Difficulty:   "Medium",
			TimeRequired: "2-3 hours per session",
			Steps: []models.GuideStep{
				{
					Step:        1,
					Title:       "Know the Interview Types",
					Description: "Prepare for different formats",
					Examples: []string{
						"Behavioral: Past experiences using STAR method (30-45 min)",
						"Product Design: Design a product for X users (45-60 min)",
						"Product Strategy: How would you grow X product (45 min)",
						"Technical: System design, metrics, SQL (30-45 min)",
						"Case Study: Analyze and present a business problem (60 min)",
					},
				},
				{
					Step:        2,
					Title:       "Build Your Story Bank",
					Description: "Prepare 8-10 versatile stories using the STAR Method",
					Examples: []string{
						"Led a difficult project to success",
						"Failed and learned from it",
						"Dealt with conflict in the team",
						"Influenced without authority",
						"Made decision with incomplete data",
						"Handled competing priorities",
						"Worked with difficult stakeholders",
						"Drove impact beyond your role",
					},
				},
				{
					Step:        3,
					Title:       "Practice with Real People",
					Description: "Simulate actual interview pressure",
					Examples: []string{
						"Pramp (https://www.pramp.com/): Free peer practice, Free",
						"Exponent (https://www.tryexponent.com/): PM interview prep, $99/mo",
						"IGotAnOffer (https://igotanoffer.com/): Expert mock interviews, $150+",
						"LinkedIn (https://linkedin.com): Find practice partners, Free",
					},
				},
				{
					Step:        4,
					Title:       "Review and Iterate",
					Description: "Learn from each practice session",
					Actions: []string{
						"Record yourself (with permission)",
						"Get specific feedback on each answer",
						"Track common weaknesses",
						"Practice weaker areas specifically",
						"Do 10-15 mocks minimum before real interviews",
					},
				},
			},
		},
	}
}

func defaultLearningPaths() map[string]models.LearningPath {
	return map[string]models.LearningPath{
		"product manager": {
			Duration:    "4-6 months",
			WeeklyHours: 10,
			Phases: []models.PathPhase{
				{
					Phase: "Foundation",
					Weeks: "1-4",
					Focus: "Core PM concepts",
					Courses: []models.PathCourse{
						{Name: "Product Management Fundamentals", Provider: "Coursera", Priority: "Required"},
						{Name: "Inspired by Marty Cagan", Type: "Book", Priority: "Required"},
					},
					Projects: []string{"Analyze 5 products you use daily", "Write PRD for a feature improvement"},
				},
				{
					Phase: "Technical Literacy",
					Weeks: "5-8",
					Focus: "Enough tech to be dangerous",
					Courses: []models.PathCourse{
						{Name: "SQL for Data Science", Provider: "Coursera", Priority: "Required"},
						{Name: "Agile with Jira", Provider: "Atlassian", Priority: "Required"},
					},
					Projects: []string{"Run SQL queries on a public dataset", "Set up a Kanban board for a personal project"},
				},
				{
					Phase: "User Research",
					Weeks: "9-12",
					Focus: "Understanding users",
					Courses: []models.PathCourse{
						{Name: "User Research Methods", Provider: "Coursera", Priority: "Required"},
						{Name: "Figma Basics", Provider: "Figma", Priority: "Recommended"},
					},
					Projects: []string{"Conduct 5 user interviews", "Create wireframes for a feature"},
				},
				{
					Phase:    "Portfolio Building",
					Weeks:    "13-18",
					Focus:    "Demonstrable work",
					Projects: []string{"Complete 2 full PM case studies", "Build personal PM portfolio website"},
				},
				{
					Phase:      "Interview Prep",
					Weeks:      "19-24",
					Focus:      "Landing the role",
					Activities: []string{"15+ mock interviews", "Resume optimization", "Apply to 50+ roles"},
				},
			},
		},
		"data scientist": {
			Duration:    "6-9 months",
			WeeklyHours: 15,
			Phases: []models.PathPhase{
				{
					Phase: "Python & Math Foundation",
					Weeks: "1-6",
					Courses: []models.PathCourse{
						{Name: "Python for Everybody", Provider: "Coursera", Priority: "Required"},
						{Name: "Mathematics for Machine Learning", Provider: "Coursera", Priority: "Required"},
					},
				},
				{
					Phase: "Data Analysis",
					Weeks: "7-12",
					Courses: []models.PathCourse{
						{Name: "Google Data Analytics", Provider: "Coursera", Priority: "Required"},
						{Name: "SQL for Data Science", Provider: "Coursera", Priority: "Required"},
					},
				},
				{
					Phase: "Machine Learning",
					Weeks: "13-20",
					Courses: []models.PathCourse{
						{Name: "Machine Learning by Andrew Ng", Provider: "Coursera", Priority: "Required"},
						{Name: "Practical Deep Learning", Provider: "Fast.ai", Priority: "Recommended"},
					},
				},
				{
					Phase:      "Portfolio & Kaggle",
					Weeks:      "21-28",
					Activities: []string{"Complete 3 Kaggle competitions", "Build 2 end-to-end ML projects"},
				},
			},
		},
	}
}
