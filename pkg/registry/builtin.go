// pkg/registry/builtin.go
package registry

import (
	apperrors "career-pivot/internal/common/errors"
	"career-pivot/internal/common/validation"
	"career-pivot/internal/models"

	act "career-pivot/internal/workers/career/analyze-career-transition"
	caq "career-pivot/internal/workers/career/check-analysis-quota"
	rau "career-pivot/internal/workers/career/record-analysis-usage"
)

const (
	registryVersion = "1.0.0"
	categoryCareer  = "career"
	workflowPivot   = "career-pivot-analysis"
)

func object(required []string, props map[string]interface{}) map[string]interface{} {
	schema := map[string]interface{}{
		"type":       "object",
		"properties": props,
	}
	if len(required) > 0 {
		req := make([]interface{}, len(required))
		for i, r := range required {
			req[i] = r
		}
		schema["required"] = req
	}
	return schema
}

func typed(t string) map[string]interface{} {
	return map[string]interface{}{"type": t}
}

// embedded copies a schema definition for nesting, dropping the root-only $schema key.
func embedded(def map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(def))
	for k, v := range def {
		if k != "$schema" {
			out[k] = v
		}
	}
	return out
}

func codes(cs ...apperrors.ErrorCode) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = string(c)
	}
	return out
}

// Builtin describes the job workers this service deploys.
func Builtin() *ActivityRegistry {
	stringList := map[string]interface{}{"type": "array", "items": typed("string")}
	quota, analyze, usage := caq.LoadConfig(), act.LoadConfig(), rau.LoadConfig()

	return &ActivityRegistry{
		Version:     registryVersion,
		LastUpdated: "2026-03-01T00:00:00Z",
		Activities: []Activity{
			{
				ID:                   "check-analysis-quota",
				DisplayName:          "Check Analysis Quota",
				Description:          "Reads the user's plan and rejects the request when the analysis allowance is used up",
				Category:             categoryCareer,
				Version:              registryVersion,
				TaskType:             caq.TaskType,
				ImplementationStatus: StatusCompleted,
				InputSchema: object([]string{"userId"}, map[string]interface{}{
					"userId": typed("string"),
				}),
				OutputSchema: object(nil, map[string]interface{}{
					"allowed":           typed("boolean"),
					"plan":              typed("string"),
					"analysesUsed":      typed("integer"),
					"analysesRemaining": typed("integer"),
					"permissions":       stringList,
				}),
				ErrorCodes: codes(apperrors.ErrCodeAnalysisQuotaExceeded, apperrors.ErrCodeQuotaCheckFailed),
				Timeout:    quota.Timeout.String(),
				Retries:    apperrors.GetRetryCount(apperrors.ErrCodeQuotaCheckFailed),
				Cache:      &CachePolicy{KeyPattern: models.PlanCacheKey("{userId}"), TTL: quota.CacheTTL.String()},
				Workflows:  []string{workflowPivot},
				Tags:       []string{"entitlement", "postgres", "redis"},
			},
			{
				ID:                   "analyze-career-transition",
				DisplayName:          "Analyze Career Transition",
				Description:          "Scores a career pivot and builds the roadmap, alternatives, risk and enrichment sections",
				Category:             categoryCareer,
				Version:              registryVersion,
				TaskType:             act.TaskType,
				ImplementationStatus: StatusCompleted,
				InputSchema: object([]string{"profile"}, map[string]interface{}{
					"userId":      typed("string"),
					"profile":     embedded(validation.ProfileSchema.Definition()),
					"permissions": stringList,
				}),
				OutputSchema: object(nil, map[string]interface{}{
					"analysis": typed("object"),
					"cached":   typed("boolean"),
				}),
				ErrorCodes: codes(apperrors.ErrCodeProfileValidationFailed),
				Timeout:    analyze.Timeout.String(),
				Retries:    apperrors.GetRetryCount(apperrors.ErrCodeTimeout),
				Cache:      &CachePolicy{KeyPattern: "analysis:{sha256(profile)}", TTL: analyze.CacheTTL.String()},
				Workflows:  []string{workflowPivot},
				Tags:       []string{"engine", "redis", "elasticsearch"},
			},
			{
				ID:                   "record-analysis-usage",
				DisplayName:          "Record Analysis Usage",
				Description:          "Stores the usage row and increments the user's analysis count in one transaction",
				Category:             categoryCareer,
				Version:              registryVersion,
				TaskType:             rau.TaskType,
				ImplementationStatus: StatusCompleted,
				InputSchema: object([]string{"userId", "analysisId"}, map[string]interface{}{
					"userId":           typed("string"),
					"analysisId":       typed("string"),
					"feasibilityScore": typed("integer"),
				}),
				OutputSchema: object(nil, map[string]interface{}{
					"recorded":     typed("boolean"),
					"analysesUsed": typed("integer"),
				}),
				ErrorCodes: codes(apperrors.ErrCodeUsageRecordFailed),
				Timeout:    usage.Timeout.String(),
				Retries:    apperrors.GetRetryCount(apperrors.ErrCodeUsageRecordFailed),
				Workflows:  []string{workflowPivot},
				Tags:       []string{"entitlement", "postgres", "redis"},
			},
		},
	}
}
