// internal/models/user.go
package models

import "fmt"

const (
	PlanStarter = "starter"
	PlanPro     = "pro"

	// Unlimited marks a plan without an analysis cap.
	Unlimited = -1
)

// Permissions granted by a plan.
const (
	PermissionCareerAnalysis      = "career-analysis"
	PermissionRoadmap             = "roadmap"
	PermissionCompanies           = "company-recommendations"
	PermissionResources           = "learning-resources"
	PermissionInterviewPrep       = "interview-prep"
	PermissionNetworkingTemplates = "networking-templates"
	PermissionCommonMistakes      = "common-mistakes"
	PermissionSalaryTips          = "salary-tips"
)

// UserPlan is a user's entitlement row, cached as JSON under PlanCacheKey.
type UserPlan struct {
	UserID       string `json:"userId"`
	Plan         string `json:"plan"`
	AnalysesUsed int    `json:"analysesUsed"`
}

// Entitlement describes what a plan allows.
type Entitlement struct {
	AnalysisLimit int      `json:"analysisLimit"`
	Permissions   []string `json:"permissions"`
}

func PlanCacheKey(userID string) string {
	return fmt.Sprintf("plan:%s", userID)
}

// Entitlements returns the allowances for plan. Unknown plans get starter terms.
func Entitlements(plan string) Entitlement {
	base := []string{
		PermissionCareerAnalysis,
		PermissionRoadmap,
		PermissionCompanies,
		PermissionResources,
	}
	if plan == PlanPro {
		return Entitlement{
			AnalysisLimit: Unlimited,
			Permissions: append(base,
				PermissionInterviewPrep,
				PermissionNetworkingTemplates,
				PermissionCommonMistakes,
				PermissionSalaryTips,
			),
		}
	}
	return Entitlement{AnalysisLimit: 3, Permissions: base}
}
