// internal/knowledge/roles.go
package knowledge

func defaultRoles() []RoleProfile {
	return []RoleProfile{
		{
			Name:              "software engineer",
			Category:          "Technology",
			SalaryRange:       SalaryRange{Min: 600000, Max: 4000000, Median: 1500000},
			RequiredSkills:    []string{"programming", "problem solving", "algorithms", "system design", "debugging", "version control", "testing"},
			GrowthRate:        22,
			DemandLevel:       DemandVeryHigh,
			RemoteFlexibility: "high",
			TransitionsTo:     []string{"engineering manager", "product manager", "tech lead", "solutions architect", "devops engineer", "data engineer", "startup founder"},
			EducationRequired: "bachelors preferred",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 6, Lead: 10},
		},
		{
			Name:              "product manager",
			Category:          "Technology",
			SalaryRange:       SalaryRange{Min: 1000000, Max: 5000000, Median: 2200000},
			RequiredSkills:    []string{"product strategy", "user research", "data analysis", "roadmapping", "stakeholder management", "agile", "communication", "prioritization"},
			GrowthRate:        18,
			DemandLevel:       DemandHigh,
			RemoteFlexibility: "medium",
			TransitionsTo:     []string{"director of product", "vp product", "startup founder", "consultant", "general manager"},
			EducationRequired: "bachelors required, mba preferred",
			ExperienceYears:   ExperienceBands{Entry: 2, Mid: 5, Senior: 8, Lead: 12},
		},
		{
			Name:              "data scientist",
			Category:          "Technology",
			SalaryRange:       SalaryRange{Min: 800000, Max: 4500000, Median: 1800000},
			RequiredSkills:    []string{"python", "machine learning", "statistics", "sql", "data visualization", "deep learning", "communication"},
			GrowthRate:        28,
			DemandLevel:       DemandVeryHigh,
			RemoteFlexibility: "high",
			TransitionsTo:     []string{"ml engineer", "data science manager", "ai researcher", "analytics director", "consultant"},
			EducationRequired: "masters preferred",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 5, Lead: 8},
		},
		{
			Name:              "ux designer",
			Category:          "Design",
			SalaryRange:       SalaryRange{Min: 500000, Max: 3000000, Median: 1200000},
			RequiredSkills:    []string{"user research", "wireframing", "prototyping", "figma", "visual design", "usability testing", "interaction design"},
			GrowthRate:        15,
			DemandLevel:       DemandHigh,
			RemoteFlexibility: "high",
			TransitionsTo:     []string{"ux lead", "product designer", "design manager", "product manager", "ux researcher"},
			EducationRequired: "portfolio > degree",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 5, Lead: 8},
		},
		{
			Name:              "marketing manager",
			Category:          "Marketing",
			SalaryRange:       SalaryRange{Min: 600000, Max: 2500000, Median: 1100000},
			RequiredSkills:    []string{"digital marketing", "content strategy", "seo", "analytics", "campaign management", "brand strategy", "communication"},
			GrowthRate:        10,
			DemandLevel:       DemandMedium,
			RemoteFlexibility: "medium",
			TransitionsTo:     []string{"head of marketing", "cmo", "brand manager", "growth manager", "consultant", "startup founder"},
			EducationRequired: "bachelors required",
			ExperienceYears:   ExperienceBands{Entry: 2, Mid: 5, Senior: 8, Lead: 12},
		},
		{
			Name:              "business analyst",
			Category:          "Business",
			SalaryRange:       SalaryRange{Min: 500000, Max: 2000000, Median: 900000},
			RequiredSkills:    []string{"data analysis", "sql", "excel", "requirements gathering", "documentation", "stakeholder management", "process improvement"},
			GrowthRate:        12,
			DemandLevel:       DemandMedium,
			RemoteFlexibility: "medium",
			TransitionsTo:     []string{"product manager", "project manager", "data analyst", "consultant", "operations manager"},
			EducationRequired: "bachelors required",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 6, Lead: 10},
		},
		{
			Name:              "consultant",
			Category:          "Consulting",
			SalaryRange:       SalaryRange{Min: 800000, Max: 5000000, Median: 1800000},
			RequiredSkills:    []string{"problem solving", "communication", "presentation", "data analysis", "client management", "strategy", "research"},
			GrowthRate:        8,
			DemandLevel:       DemandMedium,
			RemoteFlexibility: "low",
			TransitionsTo:     []string{"senior consultant", "manager", "director", "startup founder", "corporate strategy", "product manager"},
			EducationRequired: "mba preferred",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 6, Lead: 10},
		},
		{
			Name:              "financial analyst",
			Category:          "Finance",
			SalaryRange:       SalaryRange{Min: 500000, Max: 2500000, Median: 1000000},
			RequiredSkills:    []string{"financial modeling", "excel", "valuation", "accounting", "data analysis", "presentation", "research"},
			GrowthRate:        6,
			DemandLevel:       DemandMedium,
			RemoteFlexibility: "low",
			TransitionsTo:     []string{"senior analyst", "investment banker", "corporate finance", "fp&a manager", "consultant", "fintech pm"},
			EducationRequired: "bachelors required, cfa preferred",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 6, Lead: 10},
		},
		{
			Name:              "hr manager",
			Category:          "Human Resources",
			SalaryRange:       SalaryRange{Min: 500000, Max: 2000000, Median: 900000},
			RequiredSkills:    []string{"recruitment", "employee relations", "hr policies", "compensation", "training", "communication", "conflict resolution"},
			GrowthRate:        7,
			DemandLevel:       DemandMedium,
			RemoteFlexibility: "medium",
			TransitionsTo:     []string{"hr director", "chro", "talent acquisition lead", "hr consultant", "organization development"},
			EducationRequired: "bachelors required",
			ExperienceYears:   ExperienceBands{Entry: 2, Mid: 5, Senior: 8, Lead: 12},
		},
		{
			Name:              "operations manager",
			Category:          "Operations",
			SalaryRange:       SalaryRange{Min: 600000, Max: 2500000, Median: 1100000},
			RequiredSkills:    []string{"process optimization", "project management", "team leadership", "data analysis", "vendor management", "budgeting"},
			GrowthRate:        8,
			DemandLevel:       DemandMedium,
			RemoteFlexibility: "low",
			TransitionsTo:     []string{"director of operations", "coo", "general manager", "consultant", "supply chain director"},
			EducationRequired: "bachelors required",
			ExperienceYears:   ExperienceBands{Entry: 3, Mid: 6, Senior: 10, Lead: 15},
		},
		{
			Name:              "teacher",
			Category:          "Education",
			SalaryRange:       SalaryRange{Min: 300000, Max: 1200000, Median: 500000},
			RequiredSkills:    []string{"teaching", "curriculum development", "communication", "patience", "classroom management", "assessment"},
			GrowthRate:        4,
			DemandLevel:       DemandStable,
			RemoteFlexibility: "low",
			TransitionsTo:     []string{"principal", "curriculum designer", "education consultant", "corporate trainer", "edtech pm", "content creator"},
			EducationRequired: "bachelors + teaching certification",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 5, Senior: 10, Lead: 15},
		},
		{
			Name:              "sales manager",
			Category:          "Sales",
			SalaryRange:       SalaryRange{Min: 600000, Max: 3000000, Median: 1200000},
			RequiredSkills:    []string{"sales strategy", "negotiation", "client relationship", "team management", "crm", "communication", "target achievement"},
			GrowthRate:        9,
			DemandLevel:       DemandHigh,
			RemoteFlexibility: "medium",
			TransitionsTo:     []string{"sales director", "vp sales", "business development", "account management", "startup founder"},
			EducationRequired: "bachelors preferred",
			ExperienceYears:   ExperienceBands{Entry: 2, Mid: 5, Senior: 8, Lead: 12},
		},
		{
			// Founder income is variable, so the median is left at zero.
			Name:              "startup founder",
			Category:          "Entrepreneurship",
			SalaryRange:       SalaryRange{Min: 0, Max: 10000000, Median: 0},
			RequiredSkills:    []string{"leadership", "fundraising", "product vision", "sales", "hiring", "resilience", "decision making", "networking"},
			GrowthRate:        50,
			DemandLevel:       DemandSelfCreated,
			RemoteFlexibility: "variable",
			TransitionsTo:     []string{"serial entrepreneur", "investor", "advisor", "ceo at large company", "board member"},
			EducationRequired: "not required",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 3, Senior: 7, Lead: 10},
		},
		{
			Name:              "content creator",
			Category:          "Media",
			SalaryRange:       SalaryRange{Min: 200000, Max: 5000000, Median: 600000},
			RequiredSkills:    []string{"content creation", "video editing", "social media", "audience building", "storytelling", "branding", "marketing"},
			GrowthRate:        30,
			DemandLevel:       DemandGrowing,
			RemoteFlexibility: "very high",
			TransitionsTo:     []string{"influencer", "media entrepreneur", "marketing consultant", "brand manager", "course creator"},
			EducationRequired: "not required",
			ExperienceYears:   ExperienceBands{Entry: 0, Mid: 2, Senior: 5, Lead: 8},
		},
		{
			Name:              "devops engineer",
			Category:          "Technology",
			SalaryRange:       SalaryRange{Min: 800000, Max: 4000000, Median: 1800000},
			RequiredSkills:    []string{"cloud platforms", "ci/cd", "docker", "kubernetes", "linux", "scripting", "monitoring", "infrastructure as code"},
			GrowthRate:        25,
			DemandLevel:       DemandVeryHigh,
			RemoteFlexibility: "high",
			TransitionsTo:     []string{"site reliability engineer", "platform engineer", "cloud architect", "devops manager", "consultant"},
			EducationRequired: "bachelors preferred",
			ExperienceYears:   ExperienceBands{Entry: 1, Mid: 3, Senior: 6, Lead: 10},
		},
	}
}

func defaultSkills() []SkillProfile {
	return []SkillProfile{
		// technical
		{Name: "programming", Category: "Technical", LearnTimeMonths: 6, Difficulty: "high", Resources: []string{"freeCodeCamp", "Codecademy", "CS50", "The Odin Project"}},
		{Name: "python", Category: "Technical", LearnTimeMonths: 3, Difficulty: "medium", Resources: []string{"Python.org Tutorial", "Automate the Boring Stuff", "Codecademy Python"}},
		{Name: "javascript", Category: "Technical", LearnTimeMonths: 4, Difficulty: "medium", Resources: []string{"JavaScript.info", "freeCodeCamp", "Eloquent JavaScript"}},
		{Name: "sql", Category: "Technical", LearnTimeMonths: 2, Difficulty: "low", Resources: []string{"SQLZoo", "Mode SQL Tutorial", "W3Schools SQL"}},
		{Name: "machine learning", Category: "Technical", LearnTimeMonths: 6, Difficulty: "high", Resources: []string{"Coursera ML Course", "Fast.ai", "Google ML Crash Course"}},
		{Name: "data analysis", Category: "Technical", LearnTimeMonths: 3, Difficulty: "medium", Resources: []string{"Google Data Analytics Cert", "DataCamp", "Kaggle Learn"}},
		{Name: "cloud platforms", Category: "Technical", LearnTimeMonths: 4, Difficulty: "medium", Resources: []string{"AWS Training", "Google Cloud Skills", "Azure Learn"}},
		{Name: "excel", Category: "Technical", LearnTimeMonths: 1, Difficulty: "low", Resources: []string{"Excel Easy", "Chandoo", "LinkedIn Learning"}},

		// business
		{Name: "product strategy", Category: "Business", LearnTimeMonths: 4, Difficulty: "medium", Resources: []string{"Reforge", "Product School", "Inspired by Marty Cagan"}},
		{Name: "stakeholder management", Category: "Business", LearnTimeMonths: 2, Difficulty: "medium", Resources: []string{"Coursera", "LinkedIn Learning", "Practice"}},
		{Name: "agile", Category: "Business", LearnTimeMonths: 1, Difficulty: "low", Resources: []string{"Scrum.org", "Atlassian Agile Coach", "Scrum Guide"}},
		{Name: "financial modeling", Category: "Business", LearnTimeMonths: 3, Difficulty: "medium", Resources: []string{"Wall Street Prep", "Corporate Finance Institute", "Breaking Into Wall Street"}},

		// soft
		{Name: "communication", Category: "Soft", LearnTimeMonths: 3, Difficulty: "medium", Resources: []string{"Toastmasters", "Dale Carnegie", "Practice"}},
		{Name: "leadership", Category: "Soft", LearnTimeMonths: 4, Difficulty: "high", Resources: []string{"HBR Articles", "Leadership Books", "Mentorship"}},
		{Name: "problem solving", Category: "Soft", LearnTimeMonths: 3, Difficulty: "medium", Resources: []string{"Case Studies", "LeetCode", "Critical Thinking Courses"}},
		{Name: "negotiation", Category: "Soft", LearnTimeMonths: 2, Difficulty: "medium", Resources: []string{"Never Split the Difference", "Coursera Negotiation", "Practice"}},

		// design
		{Name: "figma", Category: "Design", LearnTimeMonths: 2, Difficulty: "low", Resources: []string{"Figma Learn", "YouTube Tutorials", "DesignLab"}},
		{Name: "user research", Category: "Design", LearnTimeMonths: 3, Difficulty: "medium", Resources: []string{"IDEO U", "Nielsen Norman Group", "User Interviews"}},
		{Name: "wireframing", Category: "Design", LearnTimeMonths: 1, Difficulty: "low", Resources: []string{"Balsamiq Academy", "Figma", "Sketch Tutorials"}},
	}
}

func defaultIndustries() []Industry {
	return []Industry{
		{Key: "tech", Name: "Technology / IT", GrowthRate: 15, AvgSalaryMultiplier: 1.3, HotRoles: []string{"software engineer", "data scientist", "product manager"}},
		{Key: "finance", Name: "Finance / Banking", GrowthRate: 5, AvgSalaryMultiplier: 1.2, HotRoles: []string{"financial analyst", "fintech pm", "data analyst"}},
		{Key: "healthcare", Name: "Healthcare", GrowthRate: 12, AvgSalaryMultiplier: 1.0, HotRoles: []string{"healthcare admin", "health tech pm", "medical data analyst"}},
		{Key: "education", Name: "Education", GrowthRate: 3, AvgSalaryMultiplier: 0.7, HotRoles: []string{"edtech pm", "curriculum designer", "education consultant"}},
		{Key: "consulting", Name: "Consulting", GrowthRate: 6, AvgSalaryMultiplier: 1.4, HotRoles: []string{"consultant", "strategy analyst", "manager"}},
		{Key: "retail", Name: "Retail / E-commerce", GrowthRate: 8, AvgSalaryMultiplier: 0.9, HotRoles: []string{"ecommerce manager", "product manager", "data analyst"}},
		{Key: "manufacturing", Name: "Manufacturing", GrowthRate: 2, AvgSalaryMultiplier: 0.85, HotRoles: []string{"operations manager", "supply chain", "automation engineer"}},
		{Key: "media", Name: "Media / Entertainment", GrowthRate: 7, AvgSalaryMultiplier: 0.95, HotRoles: []string{"content creator", "product manager", "marketing manager"}},
	}
}

func defaultPatterns() []TransitionPattern {
	return []TransitionPattern{
		{
			From: "software engineer", To: "product manager",
			Difficulty:         "medium",
			TimelineMonths:     12,
			SalaryChange:       "+15%",
			KeySkillsToAcquire: []string{"product strategy", "user research", "roadmapping", "stakeholder management"},
			BridgeRoles:        []string{"technical product manager", "associate product manager"},
			SuccessRate:        72,
			CommonChallenges:   []string{"Letting go of coding", "Building business acumen", "Stakeholder politics"},
			Tips:               []string{"Lead cross-functional projects", "Talk to customers regularly", "Get PM certification", "Build side projects as PM"},
		},
		{
			From: "software engineer", To: "data scientist",
			Difficulty:         "medium",
			TimelineMonths:     9,
			SalaryChange:       "+10%",
			KeySkillsToAcquire: []string{"statistics", "machine learning", "python for data science"},
			BridgeRoles:        []string{"data engineer", "ml engineer"},
			SuccessRate:        78,
			CommonChallenges:   []string{"Statistics fundamentals", "Business problem framing"},
			Tips:               []string{"Take ML courses", "Do Kaggle competitions", "Build portfolio projects"},
		},
		{
			From: "software engineer", To: "startup founder",
			Difficulty:         "high",
			TimelineMonths:     6,
			SalaryChange:       "variable (-50% to +500%)",
			KeySkillsToAcquire: []string{"fundraising", "sales", "hiring", "product vision"},
			BridgeRoles:        []string{"technical co-founder", "side project"},
			SuccessRate:        15,
			CommonChallenges:   []string{"Finding co-founder", "Idea validation", "Fundraising", "Loneliness"},
			Tips:               []string{"Start with side project", "Build in public", "Network actively", "Have 12+ months runway"},
		},
		{
			From: "marketing manager", To: "product manager",
			Difficulty:         "medium",
			TimelineMonths:     12,
			SalaryChange:       "+25%",
			KeySkillsToAcquire: []string{"technical literacy", "data analysis", "agile", "product strategy"},
			BridgeRoles:        []string{"growth product manager", "marketing technologist"},
			SuccessRate:        65,
			CommonChallenges:   []string{"Building technical credibility", "Learning agile", "Working with engineers"},
			Tips:               []string{"Learn SQL basics", "Understand technical concepts", "Lead growth experiments"},
		},
		{
			From: "business analyst", To: "product manager",
			Difficulty:         "low",
			TimelineMonths:     8,
			SalaryChange:       "+30%",
			KeySkillsToAcquire: []string{"product strategy", "user research", "roadmapping"},
			BridgeRoles:        []string{"associate product manager", "product analyst"},
			SuccessRate:        80,
			CommonChallenges:   []string{"Shifting from documentation to decision making"},
			Tips:               []string{"Take product ownership", "Shadow PMs", "Lead small features end-to-end"},
		},
		{
			From: "teacher", To: "corporate trainer",
			Difficulty:         "low",
			TimelineMonths:     6,
			SalaryChange:       "+40%",
			KeySkillsToAcquire: []string{"corporate culture", "adult learning principles", "presentation skills"},
			BridgeRoles:        []string{"training coordinator", "instructional designer"},
			SuccessRate:        85,
			CommonChallenges:   []string{"Adapting to corporate environment", "Learning business context"},
			Tips:               []string{"Get corporate training certification", "Build business vocabulary", "Network in L&D community"},
		},
		{
			From: "teacher", To: "ux researcher",
			Difficulty:         "medium",
			TimelineMonths:     12,
			SalaryChange:       "+60%",
			KeySkillsToAcquire: []string{"user research methods", "usability testing", "data analysis", "figma basics"},
			BridgeRoles:        []string{"research assistant", "junior ux researcher"},
			SuccessRate:        60,
			CommonChallenges:   []string{"Breaking into tech", "Building portfolio"},
			Tips:               []string{"Leverage observation skills", "Build research portfolio", "Take UX bootcamp"},
		},
		{
			From: "financial analyst", To: "data scientist",
			Difficulty:         "medium",
			TimelineMonths:     10,
			SalaryChange:       "+35%",
			KeySkillsToAcquire: []string{"python", "machine learning", "statistics"},
			BridgeRoles:        []string{"quantitative analyst", "financial data analyst"},
			SuccessRate:        70,
			CommonChallenges:   []string{"Learning programming", "Statistical rigor"},
			Tips:               []string{"Leverage financial domain expertise", "Focus on fintech", "Build quantitative projects"},
		},
		{
			From: "consultant", To: "product manager",
			Difficulty:         "low",
			TimelineMonths:     8,
			SalaryChange:       "+10%",
			KeySkillsToAcquire: []string{"agile", "user research", "technical concepts"},
			BridgeRoles:        []string{"strategy pm", "transformation pm"},
			SuccessRate:        75,
			CommonChallenges:   []string{"Adapting to ownership vs advisory", "Learning technical depth"},
			Tips:               []string{"Leverage analytical skills", "Join product-focused firms first", "Build side projects"},
		},
	}
}
