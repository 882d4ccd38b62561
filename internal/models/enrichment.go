// internal/models/enrichment.go
package models

// ==========================
// Companies
// ==========================

type Company struct {
	Name string   `json:"name"`
	Tier string   `json:"tier"`
	Tags []string `json:"tags"`
	URL  string   `json:"url"`
}

// CompanyMatch is the directory answer for a location and target role.
// IsGeneric is set when no company could be found for the pair.
type CompanyMatch struct {
	City         string    `json:"city"`
	RoleCategory string    `json:"roleCategory"`
	Companies    []Company `json:"companies"`
	IsGeneric    bool      `json:"isGeneric"`
}

// ==========================
// Learning resources
// ==========================

type Course struct {
	Name        string  `json:"name"`
	Provider    string  `json:"provider"`
	URL         string  `json:"url"`
	Duration    string  `json:"duration"`
	Cost        string  `json:"cost"`
	Rating      float64 `json:"rating"`
	Certificate bool    `json:"certificate"`
	Skill       string  `json:"skill,omitempty"`
	Level       string  `json:"level,omitempty"`
}

type Book struct {
	Name   string `json:"name"`
	Author string `json:"author"`
	URL    string `json:"url"`
	Cost   string `json:"cost"`
	Skill  string `json:"skill,omitempty"`
}

type Tool struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Type string `json:"type"`
	Cost string `json:"cost"`
}

type GuideStep struct {
	Step        int      `json:"step"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Actions     []string `json:"actions,omitempty"`
	Tips        []string `json:"tips,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	Template    string   `json:"template,omitempty"`
}

type Guide struct {
	ID           string      `json:"id"`
	Title        string      `json:"title"`
	Difficulty   string      `json:"difficulty"`
	TimeRequired string      `json:"timeRequired"`
	Steps        []GuideStep `json:"steps"`
}

type PathCourse struct {
	Name     string `json:"name"`
	Provider string `json:"provider,omitempty"`
	Type     string `json:"type,omitempty"`
	Priority string `json:"priority"`
}

type PathPhase struct {
	Phase      string       `json:"phase"`
	Weeks      string       `json:"weeks"`
	Focus      string       `json:"focus,omitempty"`
	Courses    []PathCourse `json:"courses,omitempty"`
	Projects   []string     `json:"projects,omitempty"`
	Activities []string     `json:"activities,omitempty"`
}

type LearningPath struct {
	Duration    string      `json:"duration"`
	WeeklyHours int         `json:"weeklyHours"`
	Phases      []PathPhase `json:"phases"`
}

type Community struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	URL         string `json:"url"`
}

type ResourcePlan struct {
	Courses      []Course      `json:"courses"`
	Books        []Book        `json:"books"`
	Tools        []Tool        `json:"tools"`
	Guides       []Guide       `json:"guides"`
	Communities  []Community   `json:"communities"`
	LearningPath *LearningPath `json:"learningPath,omitempty"`
}

// ==========================
// Coaching content
// ==========================

type PersonalMessage struct {
	Emoji         string `json:"emoji"`
	Headline      string `json:"headline"`
	Message       string `json:"message"`
	Encouragement string `json:"encouragement"`
}

type DayPlan struct {
	Day     string   `json:"day"`
	Time    string   `json:"time"`
	Task    string   `json:"task"`
	Details []string `json:"details"`
}

type WeeklyPlan struct {
	Title        string    `json:"title"`
	TotalHours   float64   `json:"totalHours"`
	Days         []DayPlan `json:"days"`
	MonthlyGoals []string  `json:"monthlyGoals"`
}

type SuccessStory struct {
	Name     string `json:"name"`
	Timeline string `json:"timeline"`
	Story    string `json:"story"`
	KeyTip   string `json:"keyTip"`
}

type InterviewQuestion struct {
	Question     string   `json:"question"`
	Framework    string   `json:"framework"`
	SampleAnswer string   `json:"sampleAnswer"`
	Mistakes     []string `json:"mistakes"`
}

type InterviewPrep struct {
	CommonQuestions []InterviewQuestion `json:"commonQuestions"`
	BehavioralTips  []string            `json:"behavioralTips"`
	TechnicalTips   []string            `json:"technicalTips,omitempty"`
}

type MessageTemplate struct {
	Title    string   `json:"title"`
	Template string   `json:"template"`
	Tips     []string `json:"tips"`
}

type Habit struct {
	Habit           string   `json:"habit"`
	Description     string   `json:"description"`
	Science         string   `json:"science,omitempty"`
	Rule            string   `json:"rule,omitempty"`
	Template        string   `json:"template,omitempty"`
	Recommendations []string `json:"recommendations,omitempty"`
	Questions       []string `json:"questions,omitempty"`
}

type DailyHabits struct {
	DailyMinutes int     `json:"dailyMinutes"`
	Morning      []Habit `json:"morning"`
	Commute      []Habit `json:"commute"`
	Lunch        []Habit `json:"lunch"`
	Evening      []Habit `json:"evening"`
	Weekly       []Habit `json:"weekly"`
}

type StuckTip struct {
	Feeling  string `json:"feeling"`
	Action   string `json:"action"`
	Exercise string `json:"exercise"`
}

type Celebration struct {
	At          string `json:"at"`
	Celebration string `json:"celebration"`
}

type Motivation struct {
	Affirmations    []string      `json:"affirmations"`
	WhenStuckTitle  string        `json:"whenStuckTitle"`
	WhenStuck       []StuckTip    `json:"whenStuck"`
	Milestones      []Celebration `json:"milestones"`
	IndustryOutlook string        `json:"industryOutlook,omitempty"`
}

type NegotiationScript struct {
	Scenario string `json:"scenario"`
	Script   string `json:"script"`
	Why      string `json:"why"`
}

type SalaryTips struct {
	ResearchSources []string            `json:"researchSources"`
	ResearchTip     string              `json:"researchTip"`
	Scripts         []NegotiationScript `json:"scripts"`
	Mistakes        []string            `json:"mistakes"`
	Statistics      []string            `json:"statistics"`
}

type Mistake struct {
	Mistake string `json:"mistake"`
	Fix     string `json:"fix"`
	Example string `json:"example,omitempty"`
}

type CommonMistakes struct {
	DuringTransition    []Mistake `json:"duringTransition"`
	DuringInterviews    []Mistake `json:"duringInterviews"`
	RedFlagsInCompanies []string  `json:"redFlagsInCompanies"`
}

type ActionList struct {
	Title   string   `json:"title"`
	Actions []string `json:"actions"`
}

type PivotOption struct {
	Role       string `json:"role"`
	MatchScore int    `json:"matchScore"`
	Timeline   string `json:"timeline"`
	Why        string `json:"why"`
}

type BackupPlans struct {
	IfTimeTakesLonger    ActionList    `json:"ifTimeTakesLonger"`
	IfRejectedRepeatedly ActionList    `json:"ifRejectedRepeatedly"`
	FinancialBackup      ActionList    `json:"financialBackup"`
	PivotOptions         []PivotOption `json:"pivotOptions"`
}

type TrackerCategory struct {
	Category string   `json:"category"`
	Metrics  []string `json:"metrics"`
}

type TrackerTool struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Best string `json:"best"`
}

type ProgressTracker struct {
	Title      string            `json:"title"`
	Categories []TrackerCategory `json:"categories"`
	Tools      []TrackerTool     `json:"tools"`
}

type QuickWin struct {
	Win    string `json:"win"`
	Time   string `json:"time"`
	Action string `json:"action"`
	Impact string `json:"impact"`
}

// SupportContent is the coaching bundle attached to an analysis. The pointer
// and slice sections at the bottom are plan-gated and may be stripped.
type SupportContent struct {
	PersonalizedMessage PersonalMessage   `json:"personalizedMessage"`
	WeeklyPlan          WeeklyPlan        `json:"weeklyPlan"`
	SuccessStories      []SuccessStory    `json:"successStories"`
	DailyHabits         DailyHabits       `json:"dailyHabits"`
	Motivation          Motivation        `json:"motivation"`
	BackupPlans         BackupPlans       `json:"backupPlans"`
	ProgressTracker     ProgressTracker   `json:"progressTracker"`
	QuickWins           []QuickWin        `json:"quickWins"`
	InterviewPrep       *InterviewPrep    `json:"interviewPrep,omitempty"`
	NetworkingTemplates []MessageTemplate `json:"networkingTemplates,omitempty"`
	SalaryTips          *SalaryTips       `json:"salaryTips,omitempty"`
	CommonMistakes      *CommonMistakes   `json:"commonMistakes,omitempty"`
}
