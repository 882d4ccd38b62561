// internal/enrichment/support/restrict.go
package support

import "career-pivot/internal/models"

// GatedPermissions lists every permission Restrict checks.
var GatedPermissions = []string{
	models.PermissionInterviewPrep,
	models.PermissionNetworkingTemplates,
	models.PermissionCommonMistakes,
	models.PermissionSalaryTips,
}

// Restrict returns a copy of c without the sections permissions do not grant.
func Restrict(c *models.SupportContent, permissions []string) *models.SupportContent {
	if c == nil {
		return nil
	}
	granted := make(map[string]bool, len(permissions))
	for _, p := range permissions {
		granted[p] = true
	}

	out := *c
	if !granted[models.PermissionInterviewPrep] {
		out.InterviewPrep = nil
	}
	if !granted[models.PermissionNetworkingTemplates] {
		out.NetworkingTemplates = nil
	}
	if !granted[models.PermissionCommonMistakes] {
		out.CommonMistakes = nil
	}
	if !granted[models.PermissionSalaryTips] {
		out.SalaryTips = nil
	}
	return &out
}
