// internal/models/analysis.go
package models

import "time"

// Rating is a labelled band with a display color token.
type Rating struct {
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

type Factor struct {
	Name        string `json:"factor"`
	Impact      string `json:"impact"` // positive | negative | neutral | caution
	Description string `json:"description"`
}

type Feasibility struct {
	Score   int      `json:"score"`
	Rating  Rating   `json:"rating"`
	Factors []Factor `json:"factors"`
	Summary string   `json:"summary"`
}

type SkillHave struct {
	Name        string `json:"name"`
	Proficiency int    `json:"proficiency"`
	Category    string `json:"category"`
}

type SkillAcquire struct {
	Name           string   `json:"name"`
	Importance     string   `json:"importance"` // Required | Recommended
	LearnTimeWeeks int      `json:"learnTimeWeeks"`
	Difficulty     string   `json:"difficulty"`
	Resources      []string `json:"resources"`
	Priority       string   `json:"priority"` // High | Medium | Low
}

type SkillGap struct {
	SkillsYouHave           []SkillHave    `json:"skillsYouHave"`
	SkillsToAcquire         []SkillAcquire `json:"skillsToAcquire"`
	GapPercentage           int            `json:"gapPercentage"`
	EstimatedLearningMonths int            `json:"estimatedLearningMonths"`
	Summary                 string         `json:"summary"`
}

type SalaryPoint struct {
	Period string  `json:"period"`
	Amount float64 `json:"amount"`
}

type Recommendation struct {
	Priority string `json:"priority"`
	Action   string `json:"action"`
	Detail   string `json:"detail"`
	Timeline string `json:"timeline"`
}

type FinancialAnalysis struct {
	CurrentRunway         int              `json:"currentRunway"`
	MonthlyBurn           float64          `json:"monthlyBurn"`
	MonthlySavings        float64          `json:"monthlySavings"`
	BridgeFundNeeded      float64          `json:"bridgeFundNeeded"`
	SalaryTrajectory      []SalaryPoint    `json:"salaryTrajectory"`
	HealthScore           int              `json:"healthScore"`
	HealthRating          Rating           `json:"healthRating"`
	Recommendations       []Recommendation `json:"recommendations"`
	ProjectedSalaryChange string           `json:"projectedSalaryChange"`
}

type Task struct {
	Task          string   `json:"task"`
	Priority      string   `json:"priority"`
	EstimatedTime string   `json:"estimatedTime"`
	Resources     []string `json:"resources,omitempty"`
}

type Phase struct {
	ID           int      `json:"id"`
	Name         string   `json:"name"`
	Duration     int      `json:"duration"`
	StartMonth   int      `json:"startMonth"`
	EndMonth     int      `json:"endMonth"`
	Status       string   `json:"status"`
	Objectives   []string `json:"objectives"`
	Tasks        []Task   `json:"tasks"`
	Deliverables []string `json:"deliverables"`
	Tips         []string `json:"tips"`
}

type Milestone struct {
	Month int    `json:"month"`
	Title string `json:"milestone"`
	Type  string `json:"type"` // phase-start | deliverable
}

type SuccessMetric struct {
	Metric     string `json:"metric"`
	Target     string `json:"target"`
	Measurable bool   `json:"measurable"`
}

type Roadmap struct {
	TotalMonths      int             `json:"totalMonths"`
	StartDate        time.Time       `json:"startDate"`
	TargetDate       time.Time       `json:"targetDate"`
	Phases           []Phase         `json:"phases"`
	WeeklyCommitment float64         `json:"weeklyCommitment"`
	KeyMilestones    []Milestone     `json:"keyMilestones"`
	SuccessMetrics   []SuccessMetric `json:"successMetrics"`
}

type Alternative struct {
	Role         string `json:"role"`
	MatchScore   int    `json:"matchScore"`
	Timeline     string `json:"timeline"`
	SalaryChange string `json:"salaryChange"`
	Difficulty   string `json:"difficulty"`
	WhyConsider  string `json:"whyConsider"`
	DemandLevel  string `json:"demandLevel"`
}

type Risk struct {
	Category    string `json:"category"`
	Level       string `json:"level"` // High | Medium
	Description string `json:"description"`
	Mitigation  string `json:"mitigation"`
}

type Mitigation struct {
	Priority string `json:"priority"`
	Risk     string `json:"risk"`
	Action   string `json:"action"`
}

type RiskLevel struct {
	Label  string `json:"label"`
	Color  string `json:"color"`
	Advice string `json:"advice"`
}

type RiskAssessment struct {
	OverallScore   int          `json:"overallScore"`
	Level          RiskLevel    `json:"level"`
	Risks          []Risk       `json:"risks"`
	MitigationPlan []Mitigation `json:"mitigationPlan"`
}

// Analysis is produced once per run and not modified afterwards. Sub-results
// hold no reference back to Profile.
type Analysis struct {
	ID                   string            `json:"id"`
	GeneratedAt          time.Time         `json:"generatedAt"`
	Profile              UserProfile       `json:"profile"`
	Feasibility          Feasibility       `json:"feasibility"`
	SkillGap             SkillGap          `json:"skillGap"`
	FinancialAnalysis    FinancialAnalysis `json:"financialAnalysis"`
	Roadmap              Roadmap           `json:"roadmap"`
	Alternatives         []Alternative     `json:"alternatives"`
	RiskAssessment       RiskAssessment    `json:"riskAssessment"`
	RecommendedCompanies *CompanyMatch     `json:"recommendedCompanies,omitempty"`
	Resources            *ResourcePlan     `json:"resources,omitempty"`
	Support              *SupportContent   `json:"support,omitempty"`
}
